// Package menu implements the interactive front end shown when mygit is
// invoked without a subcommand. It is pure glue: the selection made here is
// carried out by the caller after the program exits, using the same code
// paths as the non-interactive subcommands.
package menu

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/mygit/github"
	"github.com/grovetools/mygit/tui/theme"
)

// Action is the operation chosen from the main menu.
type Action int

const (
	ActionNone Action = iota
	ActionClone
	ActionPull
	ActionRun
	ActionList
	ActionConfig
)

// Selection is the outcome of a completed menu session, read by the caller
// from the final model.
type Selection struct {
	Action Action
	// Repo is the owner/name reference for clone, pull, and run.
	Repo string
	// Script is the in-repository script path for run.
	Script string
}

// RepoLister fetches the account's remote repositories for the clone picker.
type RepoLister interface {
	ListRepos(ctx context.Context) ([]github.Repo, error)
}

type step int

const (
	stepMenu step = iota
	stepLoadingRepos
	stepRepoPicker
	stepRepoInput
	stepScriptInput
)

type menuEntry struct {
	label  string
	action Action
}

var entries = []menuEntry{
	{"Clone a repository", ActionClone},
	{"Pull latest changes", ActionPull},
	{"Run a script", ActionRun},
	{"List cloned repositories", ActionList},
	{"Show configuration", ActionConfig},
}

// repoItem adapts a github.Repo to the bubbles list.
type repoItem struct {
	repo github.Repo
}

func (i repoItem) Title() string { return i.repo.FullName }
func (i repoItem) Description() string {
	visibility := "public"
	if i.repo.Private {
		visibility = "private"
	}
	if i.repo.Description == "" {
		return visibility
	}
	return visibility + " · " + i.repo.Description
}
func (i repoItem) FilterValue() string { return i.repo.FullName }

type reposLoadedMsg struct {
	repos []github.Repo
	err   error
}

// Model is the bubbletea model for the interactive menu.
type Model struct {
	Selection Selection
	Err       error

	lister      RepoLister
	step        step
	cursor      int
	pendingRun  bool
	repoPicker  list.Model
	input       textinput.Model
	width       int
	height      int
	theme       *theme.Theme
	quitting    bool
}

// New creates the menu model. The lister is only consulted when the clone
// action is chosen.
func New(lister RepoLister) *Model {
	input := textinput.New()
	input.Placeholder = "owner/repo"
	input.CharLimit = 200

	return &Model{
		lister: lister,
		step:   stepMenu,
		input:  input,
		theme:  theme.DefaultTheme,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) fetchRepos() tea.Msg {
	repos, err := m.lister.ListRepos(context.Background())
	return reposLoadedMsg{repos: repos, err: err}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.step == stepRepoPicker {
			m.repoPicker.SetSize(msg.Width, msg.Height-2)
		}
		return m, nil

	case reposLoadedMsg:
		if msg.err != nil {
			m.Err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.repos))
		for i, repo := range msg.repos {
			items[i] = repoItem{repo: repo}
		}
		picker := list.New(items, list.NewDefaultDelegate(), m.width, m.height-2)
		picker.Title = "Select a repository to clone"
		m.repoPicker = picker
		m.step = stepRepoPicker
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateChild(msg)
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.Selection = Selection{}
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case stepMenu:
		switch msg.String() {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(entries)-1 {
				m.cursor++
			}
		case "enter":
			return m.choose(entries[m.cursor].action)
		}
		return m, nil

	case stepRepoPicker:
		if msg.String() == "enter" && m.repoPicker.FilterState() != list.Filtering {
			if item, ok := m.repoPicker.SelectedItem().(repoItem); ok {
				m.Selection = Selection{Action: ActionClone, Repo: item.repo.FullName}
				m.quitting = true
				return m, tea.Quit
			}
		}
		if msg.String() == "esc" && m.repoPicker.FilterState() == list.Unfiltered {
			m.step = stepMenu
			return m, nil
		}

	case stepRepoInput:
		switch msg.Type {
		case tea.KeyEsc:
			m.step = stepMenu
			return m, nil
		case tea.KeyEnter:
			m.Selection.Repo = m.input.Value()
			if m.pendingRun {
				m.input = textinput.New()
				m.input.Placeholder = "path/to/script.sh"
				m.input.CharLimit = 500
				m.input.Focus()
				m.step = stepScriptInput
				return m, textinput.Blink
			}
			m.quitting = true
			return m, tea.Quit
		}

	case stepScriptInput:
		switch msg.Type {
		case tea.KeyEsc:
			m.step = stepMenu
			return m, nil
		case tea.KeyEnter:
			m.Selection.Script = m.input.Value()
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m.updateChild(msg)
}

func (m *Model) choose(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case ActionClone:
		m.Selection = Selection{Action: ActionClone}
		m.step = stepLoadingRepos
		return m, m.fetchRepos

	case ActionPull, ActionRun:
		m.Selection = Selection{Action: action}
		m.pendingRun = action == ActionRun
		m.input = textinput.New()
		m.input.Placeholder = "owner/repo"
		m.input.CharLimit = 200
		m.input.Focus()
		m.step = stepRepoInput
		return m, textinput.Blink

	default:
		m.Selection = Selection{Action: action}
		m.quitting = true
		return m, tea.Quit
	}
}

func (m *Model) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.step {
	case stepRepoPicker:
		m.repoPicker, cmd = m.repoPicker.Update(msg)
	case stepRepoInput, stepScriptInput:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.step {
	case stepMenu:
		s := m.theme.Title.Render("mygit") + "  " +
			m.theme.Muted.Render("private repository connector") + "\n\n"
		for i, entry := range entries {
			line := "  " + entry.label
			if i == m.cursor {
				line = m.theme.Selected.Render("> " + entry.label)
			}
			s += line + "\n"
		}
		s += "\n" + m.theme.Muted.Render("↑/↓ move · enter select · q quit")
		return s

	case stepLoadingRepos:
		return m.theme.Muted.Render("Fetching repositories…")

	case stepRepoPicker:
		return m.repoPicker.View()

	case stepRepoInput:
		prompt := "Repository to pull:"
		if m.pendingRun {
			prompt = "Repository containing the script:"
		}
		return m.theme.Accent.Render(prompt) + "\n\n" + m.input.View() +
			"\n\n" + m.theme.Muted.Render("enter confirm · esc back")

	case stepScriptInput:
		return m.theme.Accent.Render("Script path inside the repository:") +
			"\n\n" + m.input.View() +
			"\n\n" + m.theme.Muted.Render("enter confirm · esc back")
	}

	return ""
}
