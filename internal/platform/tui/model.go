package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

// statusRows is the number of terminal rows under the playfield.
const statusRows = 1

// Options configures a terminal frontend.
type Options struct {
	TickRate int // Frames per second (default 60)
	Width    int // Initial terminal width in cells
	Height   int // Initial terminal height in cells
	// HoldWindow is how long a key stays down after its last event.
	HoldWindow time.Duration
	// ScreenshotDir receives ctrl+s captures. Empty means ~/.arcade/screenshots.
	ScreenshotDir string
	// Embedded models leave esc handling to their parent instead of quitting.
	Embedded bool
}

func (o Options) withDefaults() Options {
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Width <= 0 {
		o.Width = 80
	}
	if o.Height <= 0 {
		o.Height = 24
	}
	if o.HoldWindow <= 0 {
		o.HoldWindow = DefaultHoldWindow
	}
	return o
}

// Model is the Bubble Tea model that drives a scene App in a terminal.
type Model struct {
	app       *scene.App
	screen    *core.Screen
	canvas    *ScreenCanvas
	keys      *KeyState
	keyMapper *KeyMapper
	pacer     *core.FramePacer
	opts      Options
	width     int
	quitting  *bool
	toMenu    *bool
}

// NewModel creates a model over an App. The App must already be started.
func NewModel(app *scene.App, opts Options) Model {
	opts = opts.withDefaults()
	screen := core.NewScreen(opts.Width, core.Max(opts.Height-statusRows, 1))
	return Model{
		app:       app,
		screen:    screen,
		canvas:    NewScreenCanvas(screen, app.Context().Runtime.Bounds()),
		keys:      NewKeyState(HoldFramesFor(opts.HoldWindow, opts.TickRate)),
		keyMapper: NewKeyMapper(),
		pacer:     core.NewFramePacer(opts.TickRate),
		opts:      opts,
		width:     opts.Width,
		quitting:  new(bool),
		toMenu:    new(bool),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pacer.Target())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.screen.Resize(msg.Width, core.Max(msg.Height-statusRows, 1))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if _, err := m.saveScreenshot(); err != nil {
			m.app.Context().Log.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	key, quit := m.keyMapper.MapKey(msg)
	switch {
	case quit:
		*m.quitting = true
		m.app.Stop()
		return m, tea.Quit
	case key == core.KeyEscape:
		*m.toMenu = true
		m.app.Stop()
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	m.keys.Touch(key)
	return m, nil
}

// handleTick runs one frame of the App.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if *m.quitting || *m.toMenu {
		return m, nil
	}
	dt := m.pacer.Tick(now)
	m.app.Frame(m.keys, dt)
	m.keys.Advance()
	return m, tickCmd(m.pacer.Target())
}

// saveScreenshot writes the current playfield as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	m.draw()
	id := "arcade"
	if cur := m.app.Active(); cur != nil {
		id = cur.ID()
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", id, time.Now().Format("20060102_150405")))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m Model) draw() {
	m.screen.Clear()
	m.app.Render(m.canvas)
}

// View renders the playfield and the status bar.
func (m Model) View() string {
	if *m.quitting || *m.toMenu {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + RenderStatus(statusFrom(m.app, m.pacer.FPS()), m.width)
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return *m.quitting
}

// BackToMenu reports whether the player left with esc.
func (m Model) BackToMenu() bool {
	return *m.toMenu
}

// Run plays app in the terminal until the player quits or presses esc.
// It reports whether esc was used, so callers can return to a menu.
func Run(app *scene.App, opts Options) (backToMenu bool, err error) {
	model := NewModel(app, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return false, err
	}
	return model.BackToMenu(), nil
}
