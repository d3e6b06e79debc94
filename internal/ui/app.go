package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/config"
	"burrow/internal/explorer"
)

type appState int

const (
	stateBrowse appState = iota
	stateSearch
	stateNote
)

// editorFinishedMsg arrives after the external editor process returns
// control of the terminal.
type editorFinishedMsg struct {
	err error
}

// App is the Bubble Tea model: one directory listing, one cursor, and
// exactly one of the three input states active at a time.
type App struct {
	cfg *config.Config

	state  appState
	width  int
	height int

	dir      string
	items    []explorer.Entry
	filtered []explorer.Entry // meaningful only in stateSearch
	cursor   int

	searchInput textinput.Model
	searchQuery string
	noteInput   textinput.Model

	statusMsg     string
	statusIsError bool
}

func New(cfg *config.Config) *App {
	si := textinput.New()
	si.Prompt = "Search: "
	si.Placeholder = "type to filter"
	si.CharLimit = 200

	ni := textinput.New()
	ni.Prompt = "New note title: "
	ni.Placeholder = "my note"
	ni.CharLimit = 200

	a := &App{
		cfg:         cfg,
		searchInput: si,
		noteInput:   ni,
	}
	a.navigateTo(cfg.StartDir)
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// ── Update ────────────────────────────────────────────────────────────────────

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case editorFinishedMsg:
		if msg.err != nil {
			a.setStatus("editor: "+msg.err.Error(), true)
			return a, nil
		}
		// Opening a file ends the session: the editor had the terminal,
		// there is nothing to come back to.
		return a, tea.Quit

	case tea.KeyMsg:
		a.statusMsg = ""

		switch a.state {
		case stateBrowse:
			return a.updateBrowse(msg)
		case stateSearch:
			return a.updateSearch(msg)
		case stateNote:
			return a.updateNote(msg)
		}
	}

	return a, nil
}

// ── Browse ────────────────────────────────────────────────────────────────────

func (a *App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}

	case "enter":
		return a.openSelected(a.items)

	case "/":
		a.state = stateSearch
		a.searchQuery = ""
		a.searchInput.SetValue("")
		a.searchInput.Focus()
		a.filtered = explorer.Filter("", a.items)
		a.cursor = 0
		return a, textinput.Blink

	case "ctrl+n":
		a.state = stateNote
		a.noteInput.SetValue("")
		a.noteInput.Focus()
		return a, textinput.Blink

	case "ctrl+d":
		path, err := explorer.EnsureDailyNote(a.dir, time.Now())
		if err != nil {
			a.setStatus("daily note: "+err.Error(), true)
			return a, nil
		}
		return a, a.cmdOpenEditor(path)
	}

	return a, nil
}

// ── Search ────────────────────────────────────────────────────────────────────

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.leaveSearch()
		return a, nil

	case "enter":
		return a.openSelected(a.filtered)

	case "up", "ctrl+p":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "down", "ctrl+n":
		if a.cursor < len(a.filtered)-1 {
			a.cursor++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if q := a.searchInput.Value(); q != a.searchQuery {
		a.searchQuery = q
		a.filtered = explorer.Filter(q, a.items)
		a.cursor = 0
	}
	return a, cmd
}

func (a *App) leaveSearch() {
	a.state = stateBrowse
	a.searchQuery = ""
	a.searchInput.SetValue("")
	a.searchInput.Blur()
	a.filtered = nil
	a.cursor = 0
}

// ── Note entry ────────────────────────────────────────────────────────────────

func (a *App) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.leaveNote()
		return a, nil

	case "enter":
		// Enter always leaves note entry and clears the title; the note
		// is only created when something is left after trimming.
		title := strings.TrimSpace(a.noteInput.Value())
		a.leaveNote()
		if title == "" {
			return a, nil
		}
		path, err := explorer.CreateNote(a.dir, title)
		if err != nil {
			a.setStatus("create note: "+err.Error(), true)
			return a, nil
		}
		return a, a.cmdOpenEditor(path)
	}

	var cmd tea.Cmd
	a.noteInput, cmd = a.noteInput.Update(msg)
	return a, cmd
}

func (a *App) leaveNote() {
	a.state = stateBrowse
	a.noteInput.SetValue("")
	a.noteInput.Blur()
}

// ── Side effects ──────────────────────────────────────────────────────────────

func (a *App) openSelected(list []explorer.Entry) (tea.Model, tea.Cmd) {
	if len(list) == 0 || a.cursor >= len(list) {
		return a, nil
	}
	sel := list[a.cursor]
	if sel.IsDir {
		a.navigateTo(sel.Path)
		return a, nil
	}
	return a, a.cmdOpenEditor(sel.Path)
}

// navigateTo rescans into dir and resets every mode-specific field, so
// arriving in a directory always means Browse with the cursor on top.
// An unreadable directory still shows its parent entry, with the error
// on the status line.
func (a *App) navigateTo(dir string) {
	items, err := explorer.Scan(dir)
	a.dir = dir
	a.items = items
	a.cursor = 0
	a.state = stateBrowse
	a.searchQuery = ""
	a.searchInput.SetValue("")
	a.searchInput.Blur()
	a.noteInput.SetValue("")
	a.noteInput.Blur()
	a.filtered = nil
	if err != nil {
		a.setStatus("permission denied: "+dir, true)
	}
}

func (a *App) cmdOpenEditor(path string) tea.Cmd {
	cmd, err := a.cfg.EditorCommand(path)
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// ── View ──────────────────────────────────────────────────────────────────────

func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}
	var b strings.Builder
	w := a.width

	b.WriteString(stylePath.Render(truncateLeft(a.dir, w-1)) + "\n")

	switch a.state {
	case stateSearch:
		b.WriteString(truncate(a.searchInput.View(), w-1) + "\n")
	case stateNote:
		b.WriteString(truncate(a.noteInput.View(), w-1) + "\n")
	}
	b.WriteString("\n")

	list := a.activeList()
	listH := a.listHeight()

	if len(list) == 0 {
		b.WriteString(styleDim.Render("  no text files found") + "\n")
		for i := 1; i < listH; i++ {
			b.WriteString("\n")
		}
	} else {
		start, end := explorer.VisibleWindow(len(list), a.cursor, listH)
		for i := start; i < end; i++ {
			prefix := "├── "
			if i == len(list)-1 {
				prefix = "└── "
			}
			line := truncate(prefix+list[i].Name, w-3)
			switch {
			case i == a.cursor:
				b.WriteString(styleSelected.Render(line+" ◀") + "\n")
			case list[i].IsDir:
				b.WriteString(styleDir.Render(line) + "\n")
			default:
				b.WriteString(styleFile.Render(line) + "\n")
			}
		}
		for i := end - start; i < listH; i++ {
			b.WriteString("\n")
		}
	}

	b.WriteString(truncate(a.statusLine(), w-1))
	return b.String()
}

func (a *App) activeList() []explorer.Entry {
	if a.state == stateSearch {
		return a.filtered
	}
	return a.items
}

// listHeight is what remains after the path header, the blank spacer,
// the status line, and (in search or note entry) the input line.
func (a *App) listHeight() int {
	h := a.height - 3
	if a.state != stateBrowse {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (a *App) statusLine() string {
	if a.statusMsg != "" {
		if a.statusIsError {
			return styleError.Render("  " + a.statusMsg)
		}
		return styleSuccess.Render("  " + a.statusMsg)
	}

	switch a.state {
	case stateSearch:
		return styleHint.Render(fmt.Sprintf(
			"  [%d of %d items] · Enter open · Esc cancel", len(a.filtered), len(a.items)))
	case stateNote:
		return styleHint.Render("  Enter create · Esc cancel")
	default:
		return styleHint.Render(fmt.Sprintf(
			"  [%d items] · ↑↓ navigate · Enter open · / search · ^N note · ^D daily · q quit",
			len(a.items)))
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.statusMsg = msg
	a.statusIsError = isErr
}
