package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newBoardModel(app))
	d.DrainInit()
	d.Resize(120, 40)
	return d
}

func boardOf(d *teatest.Driver) *boardModel {
	return d.Model.(*boardModel)
}

func TestBoard_EmptyColumns(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "INTAKE BOARD")
	assert.Contains(t, view, "UNCLAIMED (0)")
	assert.Contains(t, view, "FIRST CONTACT (0)")
	assert.Contains(t, view, "PREPARING WORK OFFER (0)")
	assert.Contains(t, view, "SEND TO THERAPIST (0)")
	assert.Contains(t, view, "(empty)")
}

func TestBoard_HeaderCountsFollowStages(t *testing.T) {
	app := testApp(t)
	seedMember(t, app, "Alex Tan")
	b := seedMember(t, app, "Brook Lim")
	require.NoError(t, app.Board.Move(context.Background(), b.ID, domain.StageFirstContact))

	d := newBoardDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "UNCLAIMED (1)")
	assert.Contains(t, view, "FIRST CONTACT (1)")
	assert.Contains(t, view, "Alex Tan")
	assert.Contains(t, view, "Brook Lim")
}

func TestBoard_MoveCardRight(t *testing.T) {
	app := testApp(t)
	seedMember(t, app, "Alex Tan")
	d := newBoardDriver(t, app)

	d.PressKey('L')

	view := d.View()
	assert.Contains(t, view, "UNCLAIMED (0)")
	assert.Contains(t, view, "FIRST CONTACT (1)")
	assert.Equal(t, 1, app.Board.CountByStage(context.Background(), domain.StageFirstContact))
	assert.Equal(t, 1, boardOf(d).col, "cursor follows the moved card")
}

func TestBoard_MoveCursorStaysOnMovedCard(t *testing.T) {
	app := testApp(t)
	a := seedMember(t, app, "Alex Tan")
	b := seedMember(t, app, "Brook Lim")
	require.NoError(t, app.Board.Move(context.Background(), b.ID, domain.StageFirstContact))

	d := newBoardDriver(t, app)

	// Alex precedes Brook in store order, so moving Alex into the
	// first-contact column must land the cursor above Brook.
	d.PressKey('L')

	bm := boardOf(d)
	assert.Equal(t, 1, bm.col)
	assert.Equal(t, 0, bm.row)
	require.NotNil(t, bm.selected())
	assert.Equal(t, a.ID, bm.selected().ID)
}

func TestBoard_MoveCardWithShiftArrow(t *testing.T) {
	app := testApp(t)
	seedMember(t, app, "Alex Tan")
	d := newBoardDriver(t, app)

	d.PressShiftRight()
	assert.Contains(t, d.View(), "FIRST CONTACT (1)")

	d.PressShiftLeft()
	assert.Contains(t, d.View(), "UNCLAIMED (1)")
	assert.Equal(t, 0, boardOf(d).col)
}

func TestBoard_MoveLeftAtFirstColumnIsNoOp(t *testing.T) {
	app := testApp(t)
	seedMember(t, app, "Alex Tan")
	d := newBoardDriver(t, app)

	d.PressKey('H')

	assert.Contains(t, d.View(), "UNCLAIMED (1)")
	assert.Equal(t, 1, app.Board.CountByStage(context.Background(), domain.StageUnclaimed))
}

func TestBoard_MoveOnEmptyColumnIsNoOp(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('L')
	d.PressKey('x')

	assert.Contains(t, d.View(), "UNCLAIMED (0)")
}

func TestBoard_CursorNavigation(t *testing.T) {
	app := testApp(t)
	seedMember(t, app, "Alex Tan")
	seedMember(t, app, "Brook Lim")
	d := newBoardDriver(t, app)

	d.PressKey('j')
	assert.Equal(t, 1, boardOf(d).row)

	d.PressKey('j')
	assert.Equal(t, 1, boardOf(d).row, "cursor clamps at the last card")

	d.PressKey('l')
	assert.Equal(t, 1, boardOf(d).col)
	assert.Equal(t, 0, boardOf(d).row, "cursor clamps in the empty column")

	d.PressKey('h')
	assert.Equal(t, 0, boardOf(d).col)
}

func TestBoard_DeleteCard(t *testing.T) {
	app := testApp(t)
	seedMember(t, app, "Alex Tan")
	seedMember(t, app, "Brook Lim")
	d := newBoardDriver(t, app)

	d.PressKey('x')

	view := d.View()
	assert.Contains(t, view, "UNCLAIMED (1)")
	assert.NotContains(t, view, "Alex Tan")
	assert.Contains(t, view, "Brook Lim")
}

func TestBoard_QuitClearsView(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestBoard_AddFormOpenAndCancel(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('a')
	assert.Contains(t, d.View(), "Add Member")

	d.PressEsc()
	view := d.View()
	assert.Contains(t, view, "INTAKE BOARD")
	assert.Contains(t, view, "Cancelled.")
	assert.Empty(t, app.Board.List(context.Background()))
}

func TestBoard_AddFormCreatesMember(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('a')
	d.PressEnter() // accept default title
	d.Type("Alex Tan")
	d.PressEnter()
	d.Type("25")
	d.PressEnter()
	d.Type("alex@example.com")
	d.PressEnter()
	d.Type("0412345678")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "UNCLAIMED (1)")
	assert.Contains(t, view, "Alex Tan")

	members := app.Board.List(context.Background())
	require.Len(t, members, 1)
	assert.Equal(t, domain.StageUnclaimed, members[0].Stage)
	assert.Equal(t, 25, members[0].Age)
}

func TestBoard_EditFormOpensPrefilled(t *testing.T) {
	app := testApp(t)
	seedMember(t, app, "Alex Tan")
	d := newBoardDriver(t, app)

	d.PressKey('e')
	view := d.View()
	assert.Contains(t, view, "Edit Member")
	assert.Contains(t, view, "Alex Tan")

	d.PressEsc()
	assert.Contains(t, d.View(), "INTAKE BOARD")
}

func TestBoard_ResetConfirmCancel(t *testing.T) {
	app := testApp(t)
	seedMember(t, app, "Alex Tan")
	d := newBoardDriver(t, app)

	d.PressKey('R')
	assert.Contains(t, d.View(), "Reset the board?")

	d.PressEsc()
	assert.Contains(t, d.View(), "Reset cancelled.")
	assert.Len(t, app.Board.List(context.Background()), 1)
}

func TestBoard_ResetConfirmed(t *testing.T) {
	app := testApp(t)
	seedMember(t, app, "Alex Tan")
	d := newBoardDriver(t, app)

	d.PressKey('R')
	// Toggle from the default Cancel button onto Reset, then submit.
	d.Send(tea.KeyMsg{Type: tea.KeyLeft})
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "UNCLAIMED (0)")
	assert.Contains(t, view, "Board reset.")
	assert.Empty(t, app.Board.List(context.Background()))
}

func TestMemberForm_SubmitCreate(t *testing.T) {
	app := testApp(t)

	f := newCreateForm()
	f.name = "Alex Tan"
	f.age = "25"
	f.email = "alex@example.com"
	f.phone = "0412345678"

	msg := f.submit(app)()
	done, ok := msg.(actionDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Contains(t, done.status, "Alex Tan")

	require.Len(t, app.Board.List(context.Background()), 1)
}

func TestMemberForm_SubmitInvalidReturnsFieldErrors(t *testing.T) {
	app := testApp(t)

	f := newCreateForm()
	f.name = "Alex Tan"
	f.age = "15"
	f.email = "alex@example.com"
	f.phone = "0412345678"

	msg := f.submit(app)()
	done, ok := msg.(actionDoneMsg)
	require.True(t, ok)
	require.Error(t, done.err)

	var ferrs domain.FieldErrors
	require.ErrorAs(t, done.err, &ferrs)
	assert.Contains(t, ferrs, "age")
	assert.Empty(t, app.Board.List(context.Background()))
}

func TestMemberForm_SubmitEdit(t *testing.T) {
	app := testApp(t)
	m := seedMember(t, app, "Alex Tan")

	f := newEditForm(m)
	f.age = "30"

	msg := f.submit(app)()
	done, ok := msg.(actionDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	got, err := app.Board.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, "Alex Tan", got.Name)
}
