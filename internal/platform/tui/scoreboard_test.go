package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-sim/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardLoadsScoresAndStats(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{30, 90, 60} {
		if _, err := store.ForPlayer("ann").SaveScore(stubID, s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scenes) != 1 || m.scenes[0].ID != stubID {
		t.Fatalf("scenes = %v, expected only %q", m.scenes, stubID)
	}

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, expected 3", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "ann" || rows[0][2] != "90" {
		t.Errorf("first row = %v, expected #1 ann 90", rows[0])
	}
	if m.stats == nil || m.stats.RunsCount != 3 || m.stats.HighScore != 90 {
		t.Errorf("stats = %+v, expected 3 runs with best 90", m.stats)
	}

	view := stripANSI(m.View())
	for _, want := range []string{"HIGH SCORES - " + stubID, "Runs 3", "Best 90"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.scores) != 0 || m.stats != nil {
		t.Error("nil store should show an empty board")
	}
	if !strings.Contains(stripANSI(m.View()), "No scores recorded yet.") {
		t.Error("empty board should say so")
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		wantBack bool
		wantQuit bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"q quits", runes("q"), false, true},
		{"tab stays", tea.KeyMsg{Type: tea.KeyTab}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := NewScoreboardModel(nil, 80, 24).Update(tt.key)
			m := next.(ScoreboardModel)
			if m.IsGoingBack() != tt.wantBack || m.IsQuitting() != tt.wantQuit {
				t.Errorf("back=%v quit=%v, expected back=%v quit=%v",
					m.IsGoingBack(), m.IsQuitting(), tt.wantBack, tt.wantQuit)
			}
			if m.cursor != 0 {
				t.Errorf("cursor = %d, expected wrap to 0 with one scene", m.cursor)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Asteroids", 10, "Asteroids"},
		{"Bouncing Ships", 10, "Bouncing ."},
		{"Sound Board", 1, "Sound Board"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.n, got, tt.want)
		}
	}
}
