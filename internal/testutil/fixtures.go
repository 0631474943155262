package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/intake/internal/domain"
)

var testPhoneCounter atomic.Int64

// CandidateOption mutates a test candidate before use.
type CandidateOption func(*domain.Candidate)

func WithTitle(t string) CandidateOption {
	return func(c *domain.Candidate) { c.Title = t }
}

func WithAge(age string) CandidateOption {
	return func(c *domain.Candidate) { c.Age = age }
}

func WithEmail(email string) CandidateOption {
	return func(c *domain.Candidate) { c.Email = email }
}

func WithPhone(phone string) CandidateOption {
	return func(c *domain.Candidate) { c.Phone = phone }
}

// NewTestCandidate builds a valid candidate for the given name. Email
// and phone are derived so that distinct names yield distinct records.
func NewTestCandidate(name string, opts ...CandidateOption) domain.Candidate {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	if local == "" {
		local = "member"
	}
	c := domain.Candidate{
		Title: "Mr",
		Name:  name,
		Age:   "25",
		Email: fmt.Sprintf("%s@example.com", local),
		Phone: fmt.Sprintf("04%08d", testPhoneCounter.Add(1)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
