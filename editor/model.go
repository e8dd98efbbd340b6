package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/listtoggle/buffer"
	"github.com/iw2rmb/listtoggle/lists"
	"github.com/iw2rmb/listtoggle/syntax"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg     Config
	buf     *buffer.Buffer
	toggler *lists.Toggler

	focused bool

	viewport viewport.Model
	xOffset  int

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion uint64
	lastCursor     buffer.Pos
	lastText       string
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.Query == nil {
		cfg.Query = syntax.NewQuery()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		toggler:  lists.New(cfg.Query),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.lastText = m.buf.Text()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// ToggleBulletList toggles bullet markers on the selected lines. It is a
// no-op in read-only mode.
func (m Model) ToggleBulletList() Model {
	return m.toggle(lists.BulletList)
}

// ToggleOrderedList toggles numbered markers on the selected lines.
func (m Model) ToggleOrderedList() Model {
	return m.toggle(lists.OrderedList)
}

func (m Model) toggle(kind lists.Kind) Model {
	if m.cfg.ReadOnly || m.buf == nil {
		return m
	}
	m.toggler.Command(kind)(m.buf)
	m.syncFromBuffer()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Hosts may also mutate the buffer directly between updates.
	m.syncFromBuffer()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders after buffer changes and reports them to
// OnChange.
func (m *Model) syncFromBuffer() {
	if m.buf == nil {
		return
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return
	}
	ev := buildChangeEvent(m.buf, m.lastText)
	m.lastBufVersion = ver
	m.lastText = ev.Text

	cur := m.buf.Cursor()
	if cur != m.lastCursor {
		m.lastCursor = cur
		m.followCursor()
	} else {
		m.rebuildContent()
	}

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls both axes so the cursor is visible, then re-renders.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()

	if w := m.contentWidth(); w > 0 {
		cell := m.cellForCol(cur.Row, cur.Col)
		if cell < m.xOffset {
			m.xOffset = cell
		} else if cell >= m.xOffset+w {
			m.xOffset = cell - w + 1
		}
	} else {
		m.xOffset = 0
	}
	m.rebuildContent()

	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
