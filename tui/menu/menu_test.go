package menu

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/mygit/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	repos []github.Repo
	err   error
}

func (s *stubLister) ListRepos(ctx context.Context) ([]github.Repo, error) {
	return s.repos, s.err
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// apply sends a message and keeps the concrete model type.
func apply(t *testing.T, m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(*Model)
	require.True(t, ok)
	return model, cmd
}

func TestMenu_SelectList(t *testing.T) {
	m := New(&stubLister{})

	m, _ = apply(t, m, key("down"))
	m, _ = apply(t, m, key("down"))
	m, _ = apply(t, m, key("down"))
	m, _ = apply(t, m, key("enter"))

	assert.Equal(t, ActionList, m.Selection.Action)
}

func TestMenu_PullPromptsForRepo(t *testing.T) {
	m := New(&stubLister{})

	m, _ = apply(t, m, key("down"))
	m, _ = apply(t, m, key("enter"))
	m, _ = apply(t, m, key("acme/widgets"))
	m, _ = apply(t, m, key("enter"))

	assert.Equal(t, ActionPull, m.Selection.Action)
	assert.Equal(t, "acme/widgets", m.Selection.Repo)
}

func TestMenu_RunPromptsForRepoAndScript(t *testing.T) {
	m := New(&stubLister{})

	m, _ = apply(t, m, key("down"))
	m, _ = apply(t, m, key("down"))
	m, _ = apply(t, m, key("enter"))
	m, _ = apply(t, m, key("acme/widgets"))
	m, _ = apply(t, m, key("enter"))
	m, _ = apply(t, m, key("scripts/deploy.sh"))
	m, _ = apply(t, m, key("enter"))

	assert.Equal(t, ActionRun, m.Selection.Action)
	assert.Equal(t, "acme/widgets", m.Selection.Repo)
	assert.Equal(t, "scripts/deploy.sh", m.Selection.Script)
}

func TestMenu_ClonePickerSelectsRepo(t *testing.T) {
	lister := &stubLister{repos: []github.Repo{
		{FullName: "acme/widgets", Private: true},
		{FullName: "acme/tools"},
	}}
	m := New(lister)

	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, cmd := apply(t, m, key("enter"))
	require.NotNil(t, cmd)

	m, _ = apply(t, m, cmd())
	m, _ = apply(t, m, key("enter"))

	assert.Equal(t, ActionClone, m.Selection.Action)
	assert.Equal(t, "acme/widgets", m.Selection.Repo)
}

func TestMenu_CloneListingFailureSurfaces(t *testing.T) {
	lister := &stubLister{err: assert.AnError}
	m := New(lister)

	m, cmd := apply(t, m, key("enter"))
	require.NotNil(t, cmd)
	m, _ = apply(t, m, cmd())

	assert.Equal(t, assert.AnError, m.Err)
}

func TestMenu_EscReturnsToMenuFromInput(t *testing.T) {
	m := New(&stubLister{})

	m, _ = apply(t, m, key("down"))
	m, _ = apply(t, m, key("enter"))
	m, _ = apply(t, m, key("esc"))

	assert.Equal(t, stepMenu, m.step)
}
