package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/legacy"
	"github.com/comalice/layoutfocus/internal/primitives"
)

const historySize = 6

// history keeps the most recent transitions for the status area. It is
// shared by copies of Model, which bubbletea makes on every Update.
type history struct {
	entries []core.Transition
}

func (h *history) add(t core.Transition) {
	h.entries = append(h.entries, t)
	if len(h.entries) > historySize {
		h.entries = h.entries[len(h.entries)-historySize:]
	}
}

// Model is the bubbletea model for the playground.
type Model struct {
	store   *core.Store
	legacy  *legacy.FocusStore
	keys    keyMap
	help    help.Model
	history *history
	cancel  func()

	cursor int
	width  int
	height int
	err    error
}

// New builds a model over a bridged store pair.
func New(store *core.Store, l *legacy.FocusStore) Model {
	h := &history{}
	return Model{
		store:   store,
		legacy:  l,
		keys:    defaultKeyMap(),
		help:    help.New(),
		history: h,
		cancel:  store.Subscribe(h.add),
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m Model) error {
	defer m.cancel()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	areas := primitives.Areas()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.cursor = (m.cursor + len(areas) - 1) % len(areas)
	case key.Matches(msg, m.keys.Right):
		m.cursor = (m.cursor + 1) % len(areas)
	case key.Matches(msg, m.keys.Next):
		m.err = m.store.Dispatch(primitives.SetLayoutFocus(m.cycle(1)))
	case key.Matches(msg, m.keys.Prev):
		m.err = m.store.Dispatch(primitives.SetLayoutFocus(m.cycle(-1)))
	case key.Matches(msg, m.keys.Preview):
		m.err = m.store.Dispatch(primitives.SetLayoutFocus(primitives.Preview))
	case key.Matches(msg, m.keys.Queue):
		m.err = m.store.Dispatch(primitives.SetNextLayoutFocus(areas[m.cursor]))
	case key.Matches(msg, m.keys.Activate):
		m.err = m.store.Dispatch(primitives.ActivateNextLayoutFocus())
	case key.Matches(msg, m.keys.Legacy):
		m.err = m.legacy.Set(areas[m.cursor])
	}
	return m, nil
}

// cycle returns the area step positions away from the current focus. Unset
// focus counts as content, as it does for legacy readers.
func (m Model) cycle(step int) primitives.Area {
	areas := primitives.Areas()
	current := core.CurrentLayoutFocus(m.store.State()).Or(primitives.DefaultArea)
	i := 0
	for j, a := range areas {
		if a == current {
			i = j
		}
	}
	return areas[(i+step+len(areas))%len(areas)]
}

// Highlighted returns the area under the cursor.
func (m Model) Highlighted() primitives.Area {
	return primitives.Areas()[m.cursor]
}

// Err returns the error from the last key press, if any.
func (m Model) Err() error {
	return m.err
}
