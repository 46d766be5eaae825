package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

const stubID = "tui-stub"

func init() {
	registry.Register("title", func() scene.Scene { return &stubScene{id: "title"} })
	registry.RegisterScored(stubID, func() scene.Scene { return &stubScene{id: stubID} })
}

// stubScene counts the input it sees and scores 10 per Bump click.
type stubScene struct {
	id       string
	downW    int
	pressedW int
	score    int
}

func (s *stubScene) ID() string             { return s.id }
func (s *stubScene) Title() string          { return s.id }
func (s *stubScene) OnEnter(*scene.Context) { s.score = 0 }
func (s *stubScene) OnExit(*scene.Context)  {}
func (s *stubScene) State() core.GameState  { return core.GameState{Score: s.score} }
func (s *stubScene) Render(dst core.Canvas) { dst.DrawRect(core.Box{W: 64, H: 64}, core.ColorGreen) }
func (s *stubScene) Update(ctx *scene.Context, dt float64) {
	if ctx.Input.IsKeyDown(core.KeyW) {
		s.downW++
	}
	if ctx.Input.IsKeyPressed(core.KeyW) {
		s.pressedW++
	}
}

func (s *stubScene) OnGui(ctx *scene.Context, ui scene.UI) {
	if ui.Button("Bump") {
		s.score += 10
	}
	ui.Label("stub label")
}

type memScores map[string][]int

func (m memScores) SaveScore(id string, score int) (int64, error) {
	m[id] = append(m[id], score)
	return int64(len(m[id])), nil
}

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, opts Options) (Model, *stubScene, *scene.App, memScores) {
	t.Helper()
	stub := &stubScene{id: "stub"}
	app := scene.NewApp(scene.NewContext(core.DefaultConfig(), nil, nil, nil), stub)
	scores := memScores{}
	app.SetScoreSink(scores)
	if err := app.Start("stub"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return NewModel(app, opts), stub, app, scores
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return mm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelHeldKeyReachesScene(t *testing.T) {
	m, stub, _, _ := newTestModel(t, Options{Width: 32, Height: 25})
	now := time.Now()

	m, _ = send(t, m, runes("w"))
	m, _ = send(t, m, TickMsg(now))
	m, _ = send(t, m, TickMsg(now.Add(16*time.Millisecond)))

	if stub.downW != 2 {
		t.Errorf("downW = %d, expected 2", stub.downW)
	}
	if stub.pressedW != 1 {
		t.Errorf("pressedW = %d, expected 1", stub.pressedW)
	}
}

func TestModelButtonAndQuitSavesScore(t *testing.T) {
	m, stub, app, scores := newTestModel(t, Options{Width: 32, Height: 25})

	m, _ = send(t, m, runes("1"))
	m, _ = send(t, m, TickMsg(time.Now()))
	if stub.score != 10 {
		t.Fatalf("score = %d, expected 10 after Bump", stub.score)
	}

	m, cmd := send(t, m, runes("q"))
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("q should quit the program")
	}
	if app.Active() != nil {
		t.Error("quitting should stop the app")
	}
	if got := scores["stub"]; len(got) != 1 || got[0] != 10 {
		t.Errorf("scores = %v, expected [10]", got)
	}
}

func TestModelEscape(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		wantQuit bool
	}{
		{"standalone quits to the menu", false, true},
		{"embedded leaves it to the parent", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, app, _ := newTestModel(t, Options{Embedded: tt.embedded})
			m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

			if isQuit(cmd) != tt.wantQuit {
				t.Errorf("quit = %v, expected %v", isQuit(cmd), tt.wantQuit)
			}
			if !m.BackToMenu() {
				t.Error("BackToMenu() should be true")
			}
			if app.Active() != nil {
				t.Error("esc should stop the app")
			}
			if _, cmd := send(t, m, TickMsg(time.Now())); cmd != nil {
				t.Error("ticks should stop after esc")
			}
		})
	}
}

func TestModelViewDrawsSceneAndStatus(t *testing.T) {
	m, _, _, _ := newTestModel(t, Options{Width: 32, Height: 25})
	m, _ = send(t, m, TickMsg(time.Now()))

	lines := strings.Split(stripANSI(m.View()), "\n")
	if len(lines) != 25 {
		t.Fatalf("view has %d lines, expected 25", len(lines))
	}
	if !strings.HasPrefix(lines[0], "██") {
		t.Errorf("first row = %q, expected the scene's rect", lines[0])
	}
	status := lines[24]
	for _, want := range []string{"stub", "1:Bump", "stub label"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}
}

func TestModelResize(t *testing.T) {
	m, _, _, _ := newTestModel(t, Options{Width: 32, Height: 25})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 64, Height: 41})

	if m.screen.Width() != 64 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 64x40", m.screen.Width(), m.screen.Height())
	}
}

func TestRenderStatus(t *testing.T) {
	info := StatusInfo{
		Title:   "Asteroids",
		Buttons: []string{"Title", "Tint"},
		Labels:  []string{"Throttle 0.500"},
		State:   core.GameState{Score: 80, Paused: true},
		FPS:     60,
	}
	got := stripANSI(RenderStatus(info, 200))

	for _, want := range []string{"Asteroids", "1:Title", "2:Tint", "Throttle 0.500", "Score 80", "PAUSED", "60 fps"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderStatus() = %q, missing %q", got, want)
		}
	}
}

func TestMenuSkipsTitleScene(t *testing.T) {
	m := NewMenuModel(80, 24)
	for _, it := range m.items {
		if it.SceneID == titleSceneID {
			t.Error("menu should not list the title scene")
		}
	}
	found := false
	for _, it := range m.items {
		if it.SceneID == stubID {
			found = it.Scored
		}
	}
	if !found {
		t.Errorf("menu items = %v, expected scored %q", m.items, stubID)
	}
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want MenuResult
	}{
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, MenuResult{SceneID: stubID, Width: 80, Height: 24}},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, MenuResult{WantsScoreboard: true, Width: 80, Height: 24}},
		{"q quits", runes("q"), MenuResult{Quit: true, Width: 80, Height: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(80, 24)
			next, _ := m.Update(tt.key)
			if got := next.(MenuModel).result(); got != tt.want {
				t.Errorf("result() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestSessionMenuToSceneAndBack(t *testing.T) {
	app := registry.NewApp(scene.NewContext(core.DefaultConfig(), nil, nil, nil))
	var sm tea.Model = NewSessionModel(app, Options{Width: 40, Height: 20})

	sm, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.Active() == nil || app.Active().ID() != stubID {
		t.Fatalf("enter should start %q", stubID)
	}
	if sm.(SessionModel).play == nil {
		t.Fatal("session should be playing")
	}

	sm, _ = sm.Update(TickMsg(time.Now()))
	sm, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if sm.(SessionModel).play != nil {
		t.Error("esc should return to the menu")
	}
	if app.Active() != nil {
		t.Error("esc should stop the scene")
	}

	// A stray tick in the menu is ignored.
	sm, cmd := sm.Update(TickMsg(time.Now()))
	if cmd != nil {
		t.Error("menu should ignore ticks")
	}

	_, cmd = sm.Update(runes("q"))
	if !isQuit(cmd) {
		t.Error("q in the menu should end the session")
	}
}

func TestSanitizeUser(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"bob.smith", "bob_smith"},
		{"../etc", "___etc"},
		{"", "anonymous"},
		{"...", "anonymous"},
	}

	for _, tt := range tests {
		if got := SanitizeUser(tt.in); got != tt.want {
			t.Errorf("SanitizeUser(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
