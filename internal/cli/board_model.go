package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// boardMode selects what the board model is currently showing.
type boardMode int

const (
	modeBoard boardMode = iota
	modeForm
	modeConfirmReset
)

// ── messages ─────────────────────────────────────────────────────────────────

// boardLoadedMsg signals that the member columns have been (re)loaded.
type boardLoadedMsg struct {
	columns [][]*domain.Member
}

// actionDoneMsg carries the outcome of a board mutation for the status line.
type actionDoneMsg struct {
	status string
	err    error
}

// ── key bindings ─────────────────────────────────────────────────────────────

type boardKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Reset     key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "card")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		MoveLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H/L", "move card")),
		MoveRight: key.NewBinding(key.WithKeys("shift+right", "L")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Reset:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp lists the bindings shown in the bottom bar.
func (k boardKeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.MoveLeft, k.Add, k.Edit, k.Delete, k.Reset, k.Quit}
}

// ── model ────────────────────────────────────────────────────────────────────

// boardModel is the root bubbletea Model for the kanban board.
// Columns follow domain.StageOrder; column contents are always reloaded
// from the board store after a mutation, never patched in place.
type boardModel struct {
	app  *App
	keys boardKeyMap

	columns [][]*domain.Member
	col     int // selected column (stage index)
	row     int // selected card within the column

	width  int
	height int

	mode     boardMode
	form     *memberForm
	confirm  *huh.Form
	confirmV bool

	// followID places the cursor on this card after the next reload.
	followID string

	status   string
	quitting bool
}

func newBoardModel(app *App) *boardModel {
	return &boardModel{
		app:     app,
		keys:    newBoardKeyMap(),
		columns: make([][]*domain.Member, len(domain.StageOrder)),
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.loadBoard()
}

// loadBoard rebuilds every column from the board store.
func (m *boardModel) loadBoard() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		columns := make([][]*domain.Member, len(domain.StageOrder))
		for i, stage := range domain.StageOrder {
			columns[i] = app.Board.ListByStage(ctx, stage)
		}
		return boardLoadedMsg{columns: columns}
	}
}

// selected returns the card under the cursor, or nil.
func (m *boardModel) selected() *domain.Member {
	if m.col >= len(m.columns) {
		return nil
	}
	col := m.columns[m.col]
	if m.row >= len(col) {
		return nil
	}
	return col[m.row]
}

// focusCard moves the cursor onto the card with the given id, if it is
// still on the board.
func (m *boardModel) focusCard(id string) {
	for c, col := range m.columns {
		for r, member := range col {
			if member.ID == id {
				m.col = c
				m.row = r
				return
			}
		}
	}
}

func (m *boardModel) clampCursor() {
	if m.col < 0 {
		m.col = 0
	}
	if m.col >= len(domain.StageOrder) {
		m.col = len(domain.StageOrder) - 1
	}
	rows := len(m.columns[m.col])
	if m.row >= rows {
		m.row = rows - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardLoadedMsg:
		m.columns = msg.columns
		if m.followID != "" {
			m.focusCard(m.followID)
			m.followID = ""
		}
		m.clampCursor()
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.status = styleRed.Render("✘ " + msg.err.Error())
		} else {
			m.status = msg.status
		}
		return m, m.loadBoard()
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmReset:
		return m.updateConfirm(msg)
	default:
		return m.updateBoard(msg)
	}
}

func (m *boardModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Left):
		m.col--
		m.clampCursor()

	case key.Matches(keyMsg, m.keys.Right):
		m.col++
		m.clampCursor()

	case key.Matches(keyMsg, m.keys.Up):
		m.row--
		m.clampCursor()

	case key.Matches(keyMsg, m.keys.Down):
		m.row++
		m.clampCursor()

	case key.Matches(keyMsg, m.keys.MoveLeft):
		return m, m.moveSelected(-1)

	case key.Matches(keyMsg, m.keys.MoveRight):
		return m, m.moveSelected(+1)

	case key.Matches(keyMsg, m.keys.Add):
		m.form = newCreateForm()
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Edit):
		if sel := m.selected(); sel != nil {
			m.form = newEditForm(sel)
			m.mode = modeForm
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if sel := m.selected(); sel != nil {
			return m, m.deleteMember(sel)
		}

	case key.Matches(keyMsg, m.keys.Reset):
		m.confirmV = false
		m.confirm = newResetConfirm(&m.confirmV)
		m.mode = modeConfirmReset
		return m, m.confirm.Init()

	case key.Matches(keyMsg, m.keys.Refresh):
		return m, m.loadBoard()
	}

	return m, nil
}

// moveSelected relocates the card under the cursor one column over.
// This is the keyboard analog of dragging a card to another stage.
func (m *boardModel) moveSelected(delta int) tea.Cmd {
	sel := m.selected()
	if sel == nil {
		return nil
	}
	target := m.col + delta
	if target < 0 || target >= len(domain.StageOrder) {
		return nil
	}

	app := m.app
	id := sel.ID
	name := sel.Name
	stage := domain.StageOrder[target]
	// Follow the card: columns keep store order, so its row in the
	// target column is only known after the reload.
	m.col = target
	m.followID = id

	return func() tea.Msg {
		if err := app.Board.Move(context.Background(), id, stage); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("%s Moved %s %s %s",
			styleGreen.Render("✔"), bold(name), dim("→"),
			stageStyle(stage).Render(stage.Label()))}
	}
}

func (m *boardModel) deleteMember(sel *domain.Member) tea.Cmd {
	app := m.app
	id := sel.ID
	name := sel.Name
	return func() tea.Msg {
		if err := app.Board.Delete(context.Background(), id); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("%s Deleted %s",
			styleGreen.Render("✔"), bold(name))}
	}
}

func (m *boardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modeBoard
		m.form = nil
		m.status = dim("Cancelled.")
		return m, nil
	}

	cmd := m.form.Update(msg)
	if m.form.Completed() {
		submit := m.form.submit(m.app)
		m.mode = modeBoard
		m.form = nil
		return m, submit
	}
	return m, cmd
}

func (m *boardModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modeBoard
		m.confirm = nil
		m.status = dim("Reset cancelled.")
		return m, nil
	}

	updated, cmd := m.confirm.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.confirm = f
	}
	if m.confirm.State == huh.StateCompleted {
		confirmed := m.confirmV
		m.mode = modeBoard
		m.confirm = nil
		if !confirmed {
			m.status = dim("Reset cancelled.")
			return m, nil
		}
		app := m.app
		return m, func() tea.Msg {
			if err := app.Board.Reset(context.Background()); err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: styleGreen.Render("✔") + " Board reset."}
		}
	}
	return m, cmd
}

// newResetConfirm builds the reset confirmation form.
func newResetConfirm(value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset the board?").
				Description("Deletes every member and the persisted snapshot.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(value),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}
