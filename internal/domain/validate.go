package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MinAge is the youngest age accepted for an intake booking.
const MinAge = 18

// MinPhoneLen is the minimum phone number length, counting formatting
// characters.
const MinPhoneLen = 10

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Candidate holds the raw textual form values for the five editable
// member fields, before any coercion or validation.
type Candidate struct {
	Title string
	Name  string
	Age   string
	Email string
	Phone string
}

// Fields is the normalized result of a successful validation: age
// coerced to an integer, title narrowed to the closed enumeration,
// name trimmed.
type Fields struct {
	Title Salutation
	Name  string
	Age   int
	Email string
	Phone string
}

// FieldErrors maps a field name to a single human-readable message for
// every field that failed validation. Fields that pass produce no entry.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// Validate checks a candidate against every field rule independently;
// one field's failure never suppresses evaluation of the others.
// On success it returns the normalized fields and a nil FieldErrors.
// Validate is pure: it gates create and update, and is never run for
// a stage move.
func Validate(c Candidate) (Fields, FieldErrors) {
	errs := FieldErrors{}

	if err := CheckTitle(c.Title); err != nil {
		errs["title"] = err.Error()
	}
	if err := CheckName(c.Name); err != nil {
		errs["name"] = err.Error()
	}
	if err := CheckAge(c.Age); err != nil {
		errs["age"] = err.Error()
	}
	if err := CheckEmail(c.Email); err != nil {
		errs["email"] = err.Error()
	}
	if err := CheckPhone(c.Phone); err != nil {
		errs["phone"] = err.Error()
	}

	if len(errs) > 0 {
		return Fields{}, errs
	}

	age, _ := strconv.Atoi(strings.TrimSpace(c.Age))
	return Fields{
		Title: Salutation(strings.TrimSpace(c.Title)),
		Name:  strings.TrimSpace(c.Name),
		Age:   age,
		Email: strings.TrimSpace(c.Email),
		Phone: c.Phone,
	}, nil
}

// CheckTitle requires a member of the closed salutation enumeration.
func CheckTitle(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("title is required")
	}
	if !ValidSalutations[Salutation(s)] {
		return fmt.Errorf("title must be one of %s", salutationList())
	}
	return nil
}

// CheckName requires a non-empty name after trimming.
func CheckName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// CheckAge requires an integer of at least MinAge. Non-numeric input is
// a validation failure, not a silent zero.
func CheckAge(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("age is required")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("age must be a number")
	}
	if v < MinAge {
		return fmt.Errorf("age must be at least %d", MinAge)
	}
	return nil
}

// CheckEmail requires a local@domain address with a dotted domain.
func CheckEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(s) {
		return fmt.Errorf("email must be a valid address")
	}
	return nil
}

// CheckPhone requires at least MinPhoneLen characters. No character
// class restriction beyond length: digits, spaces and punctuation all
// count.
func CheckPhone(s string) error {
	if len(s) < MinPhoneLen {
		return fmt.Errorf("phone must be at least %d characters", MinPhoneLen)
	}
	return nil
}

func salutationList() string {
	parts := make([]string, 0, len(SalutationOrder))
	for _, s := range SalutationOrder {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}
