// Package window runs a scene App in a desktop window using Ebiten.
package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

// statusHeight is the strip under the world reserved for the status line.
const statusHeight = 20

// keyBindings maps scene keys to the physical keys that drive them.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyW:     {ebiten.KeyW},
	core.KeyA:     {ebiten.KeyA},
	core.KeyS:     {ebiten.KeyS},
	core.KeyD:     {ebiten.KeyD},
	core.KeyUp:    {ebiten.KeyArrowUp},
	core.KeyDown:  {ebiten.KeyArrowDown},
	core.KeyLeft:  {ebiten.KeyArrowLeft},
	core.KeyRight: {ebiten.KeyArrowRight},
	core.KeySpace: {ebiten.KeySpace},
	core.KeyEnter: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.KeyT:     {ebiten.KeyT},
	core.KeyR:     {ebiten.KeyR},
	core.KeyE:     {ebiten.KeyE},
	core.KeyP:     {ebiten.KeyP},
	core.Key1:     {ebiten.KeyDigit1, ebiten.KeyNumpad1},
	core.Key2:     {ebiten.KeyDigit2, ebiten.KeyNumpad2},
	core.Key3:     {ebiten.KeyDigit3, ebiten.KeyNumpad3},
	core.Key4:     {ebiten.KeyDigit4, ebiten.KeyNumpad4},
	core.Key5:     {ebiten.KeyDigit5, ebiten.KeyNumpad5},
	core.Key6:     {ebiten.KeyDigit6, ebiten.KeyNumpad6},
	core.Key7:     {ebiten.KeyDigit7, ebiten.KeyNumpad7},
	core.Key8:     {ebiten.KeyDigit8, ebiten.KeyNumpad8},
	core.Key9:     {ebiten.KeyDigit9, ebiten.KeyNumpad9},
}

// Game adapts a scene App to ebiten.Game.
type Game struct {
	app   *scene.App
	world core.Bounds
	input core.InputFrame
	face  text.Face
}

// NewGame wraps an App that has already been started.
func NewGame(app *scene.App) *Game {
	return &Game{
		app:   app,
		world: app.Context().Runtime.Bounds(),
		input: core.NewInputFrame(),
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// pollInput rebuilds the input frame from the keyboard.
func (g *Game) pollInput() {
	g.input.Clear()
	for k, physical := range keyBindings {
		for _, pk := range physical {
			if ebiten.IsKeyPressed(pk) {
				g.input.Hold(k)
			}
			if inpututil.IsKeyJustPressed(pk) {
				g.input.Press(k)
			}
		}
	}
}

// Update implements ebiten.Game. Escape closes the window.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollInput()
	g.app.Frame(g.input, 1/float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	c := imageCanvas{dst: screen, face: g.face}
	g.app.Render(c)

	strip := core.Box{Y: g.world.H, W: g.world.W, H: statusHeight}
	c.DrawRect(strip, core.ColorBlack)
	c.DrawText(4, g.world.H+4, g.statusLine(), core.ColorBrightWhite)
}

// statusLine lists the digit-bound buttons, labels and score.
func (g *Game) statusLine() string {
	ui := g.app.UI()
	parts := make([]string, 0, len(ui.Buttons())+len(ui.Labels())+2)
	for i, label := range ui.Buttons() {
		if i < 9 {
			parts = append(parts, fmt.Sprintf("%d:%s", i+1, label))
		}
	}
	parts = append(parts, ui.Labels()...)

	st := g.app.State()
	if st.Score > 0 {
		parts = append(parts, fmt.Sprintf("Score %d", st.Score))
	}
	if st.Paused {
		parts = append(parts, "PAUSED")
	}
	parts = append(parts, fmt.Sprintf("%.0f tps", ebiten.ActualTPS()))
	return strings.Join(parts, "  ")
}

// Layout implements ebiten.Game. The logical screen is the world plus the
// status strip; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.world.W), int(g.world.H) + statusHeight
}

// Options configures the window.
type Options struct {
	Title    string
	TickRate int
}

// Run opens a window and plays app until it is closed or escape is pressed.
// The App is stopped on return so the active scene saves its state.
func Run(app *scene.App, opts Options) error {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Title == "" {
		opts.Title = "Arcade"
	}
	defer app.Stop()

	g := NewGame(app)
	ebiten.SetWindowSize(int(g.world.W), int(g.world.H)+statusHeight)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
