package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/intake/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// intakeHuhTheme returns a custom huh theme using the Gruvbox palette.
func intakeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(colorFg).Background(colorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(colorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(colorDim)

	return t
}

// memberForm is the create/edit form overlay on the board.
// Field inputs validate inline with the same domain rules the board
// store applies on submit, so the store's Validator stays the single
// gate and the form just surfaces errors earlier.
type memberForm struct {
	form    *huh.Form
	heading string
	editID  string // empty for create

	title string
	name  string
	age   string
	email string
	phone string
}

func salutationOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.SalutationOrder))
	for _, s := range domain.SalutationOrder {
		options = append(options, huh.NewOption(string(s), string(s)))
	}
	return options
}

func (f *memberForm) build() {
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Title").
				Options(salutationOptions()...).
				Value(&f.title),
			huh.NewInput().
				Title("Name").
				Placeholder("Alex Tan").
				Value(&f.name).
				Validate(domain.CheckName),
			huh.NewInput().
				Title("Age").
				Placeholder("25").
				Value(&f.age).
				Validate(domain.CheckAge),
			huh.NewInput().
				Title("Email").
				Placeholder("alex@example.com").
				Value(&f.email).
				Validate(domain.CheckEmail),
			huh.NewInput().
				Title("Phone").
				Placeholder("0412345678").
				Value(&f.phone).
				Validate(domain.CheckPhone),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}

// newCreateForm builds an empty form for a new member.
func newCreateForm() *memberForm {
	f := &memberForm{
		heading: "Add Member",
		title:   string(domain.SalutationMr),
	}
	f.build()
	return f
}

// newEditForm builds a form pre-populated from the member's current values.
func newEditForm(m *domain.Member) *memberForm {
	f := &memberForm{
		heading: "Edit Member",
		editID:  m.ID,
		title:   string(m.Title),
		name:    m.Name,
		age:     strconv.Itoa(m.Age),
		email:   m.Email,
		phone:   m.Phone,
	}
	f.build()
	return f
}

func (f *memberForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *memberForm) Update(msg tea.Msg) tea.Cmd {
	updated, cmd := f.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		f.form = form
	}
	return cmd
}

func (f *memberForm) Completed() bool {
	return f.form.State == huh.StateCompleted
}

func (f *memberForm) View() string {
	return styleHeader.Render(f.heading) + "\n\n" + f.form.View()
}

// candidate assembles the raw form values for validation.
func (f *memberForm) candidate() domain.Candidate {
	return domain.Candidate{
		Title: f.title,
		Name:  f.name,
		Age:   f.age,
		Email: f.email,
		Phone: f.phone,
	}
}

// submit persists the form through the board store. Field errors and
// store errors both land in the status line via actionDoneMsg.
func (f *memberForm) submit(app *App) tea.Cmd {
	cand := f.candidate()
	editID := f.editID
	return func() tea.Msg {
		ctx := context.Background()

		if editID == "" {
			m, ferrs, err := app.Board.Create(ctx, cand)
			if err != nil {
				return actionDoneMsg{err: err}
			}
			if ferrs != nil {
				return actionDoneMsg{err: ferrs}
			}
			return actionDoneMsg{status: fmt.Sprintf("%s Added: %s",
				styleGreen.Render("✔"), bold(m.Name))}
		}

		m, ferrs, err := app.Board.Update(ctx, editID, cand)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if ferrs != nil {
			return actionDoneMsg{err: ferrs}
		}
		return actionDoneMsg{status: fmt.Sprintf("%s Updated: %s",
			styleGreen.Render("✔"), bold(m.Name))}
	}
}
