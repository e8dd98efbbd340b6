package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	flag "github.com/spf13/pflag"

	"github.com/iw2rmb/listtoggle"
	"github.com/iw2rmb/listtoggle/editor"
	"github.com/iw2rmb/listtoggle/internal/config"
	"github.com/iw2rmb/listtoggle/syntax"
)

const sample = `# listtoggle

Select some lines and press alt+l (or ctrl+l) for a bullet list,
alt+o (or ctrl+o) for a numbered list. Press again to remove it.

- [ ] click a checkbox to tick it
- [x] click again to clear it

ctrl+s saves, ctrl+q quits.`

type keyMap struct {
	Save, Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q", "esc"), key.WithHelp("ctrl+q", "quit")),
	}
}

type model struct {
	editor editor.Model
	keys   keyMap
	edKeys editor.KeyMap
	log    *slog.Logger

	path      string
	readOnly  bool
	savedText string
	status    string
	width     int

	statusStyle lipgloss.Style
}

func newModel(cfg config.Config, text string, logger *slog.Logger) model {
	edKeys := editor.DefaultKeyMap()
	ed := editor.New(editor.Config{
		Text:         text,
		ShowLineNums: cfg.LineNumbers,
		Style:        editor.DefaultStyle(),
		KeyMap:       edKeys,
		HistoryLimit: cfg.HistoryLimit,
		ReadOnly:     cfg.ReadOnly,
		Query:        syntax.NewQuery(),
		Extensions:   []editor.Extension{editor.TaskClickToggle()},
	})
	return model{
		editor:      ed,
		keys:        defaultKeyMap(),
		edKeys:      edKeys,
		log:         logger,
		path:        cfg.File,
		readOnly:    cfg.ReadOnly,
		savedText:   text,
		statusStyle: lipgloss.NewStyle().Reverse(true),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			m.status = m.save()
			return m, nil
		case key.Matches(msg, m.edKeys.ToggleBulletList):
			m.logToggle("bullet")
		case key.Matches(msg, m.edKeys.ToggleOrderedList):
			m.logToggle("ordered")
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.statusStyle.Width(m.width).Render(m.statusLine())
}

func (m model) statusLine() string {
	name := m.path
	if name == "" {
		name = "[scratch]"
	}
	if m.editor.Buffer().Text() != m.savedText {
		name += " *"
	}
	cur := m.editor.Buffer().Cursor()
	line := fmt.Sprintf(" %s  %d:%d", name, cur.Row+1, cur.Col+1)
	if m.status != "" {
		line += "  " + m.status
	}
	return line
}

func (m model) logToggle(kind string) {
	if m.readOnly {
		return
	}
	sel := m.editor.Buffer().Selection()
	m.log.Info("toggle list", "kind", kind, "ranges", len(sel.Ranges))
}

func (m *model) save() string {
	if m.path == "" {
		return "no file to save to"
	}
	text := m.editor.Buffer().Text()
	if err := saveFile(m.path, text); err != nil {
		m.log.Error("save failed", "path", m.path, "err", err)
		return err.Error()
	}
	m.savedText = text
	m.log.Info("saved", "path", m.path, "bytes", len(text))
	return "saved"
}

func loadFile(path string) (string, error) {
	if path == "" {
		return sample, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func saveFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func run(configPath, file string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if file != "" {
		cfg.File = file
	}

	logOut, err := tea.LogToFile(cfg.LogFile, "listtoggle")
	if err != nil {
		return fmt.Errorf("open log %s: %w", cfg.LogFile, err)
	}
	defer logOut.Close()
	logger := slog.New(slog.NewTextHandler(logOut, nil))
	logger.Info("starting", "version", listtoggle.Version(), "config", cfg)

	text, err := loadFile(cfg.File)
	if err != nil {
		return err
	}
	logger.Info("loaded", "path", cfg.File, "bytes", len(text))

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(newModel(cfg, text, logger), opts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	configPath := flag.StringP("config", "c", "", "config file (YAML, TOML or JSON)")
	flag.Parse()

	if err := run(*configPath, flag.Arg(0)); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
