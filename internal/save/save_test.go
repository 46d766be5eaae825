package save

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShipRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "saves"))

	if _, ok, err := store.LoadShip(); ok || err != nil {
		t.Fatalf("LoadShip() on empty store = %v, %v; expected not found", ok, err)
	}

	want := ShipSave{X: 120.5, Y: 300, W: 50, H: 50, Speed: 250}
	if err := store.SaveShip(want); err != nil {
		t.Fatalf("SaveShip() error = %v", err)
	}

	got, ok, err := store.LoadShip()
	if err != nil || !ok {
		t.Fatalf("LoadShip() = %v, %v", ok, err)
	}
	if got != want {
		t.Errorf("LoadShip() = %+v, expected %+v", got, want)
	}
}

func TestTurretsRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	lab := TurretLab{Turrets: []TurretSave{
		{X: 10, Y: 20, W: 100, H: 100, Kills: 3, Cooldown: 0.25},
		{X: 400, Y: 500, W: 100, H: 100},
	}}
	if err := store.SaveTurrets(lab); err != nil {
		t.Fatalf("SaveTurrets() error = %v", err)
	}

	got, ok, err := store.LoadTurrets()
	if err != nil || !ok {
		t.Fatalf("LoadTurrets() = %v, %v", ok, err)
	}
	if len(got.Turrets) != 2 || got.Turrets[0] != lab.Turrets[0] || got.Turrets[1] != lab.Turrets[1] {
		t.Errorf("LoadTurrets() = %+v, expected %+v", got, lab)
	}

	// Saving again replaces the file
	if err := store.SaveTurrets(TurretLab{}); err != nil {
		t.Fatal(err)
	}
	got, _, _ = store.LoadTurrets()
	if len(got.Turrets) != 0 {
		t.Errorf("expected empty lab after overwrite, got %d turrets", len(got.Turrets))
	}
}

func TestSaveWritesYAML(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	store.SaveShip(ShipSave{X: 1, Y: 2, W: 3, H: 4, Speed: 5})

	data, err := os.ReadFile(filepath.Join(dir, "ship.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "speed: 5") {
		t.Errorf("ship.yaml = %q, expected YAML keys", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "ship.yaml.tmp")); !os.IsNotExist(err) {
		t.Error("temp file should not remain after save")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "ship.yaml"), []byte("x: [unterminated"), 0o600)

	_, ok, err := NewStore(dir).LoadShip()
	if err == nil || ok {
		t.Errorf("LoadShip() on corrupt file = %v, %v; expected error", ok, err)
	}
}
