// Package save persists scene attributes as YAML files between runs.
package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ShipSave holds the free-flight ship's attributes.
type ShipSave struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Speed float64 `yaml:"speed"`
}

// TurretSave holds one turret of the turret lab.
type TurretSave struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Kills    int     `yaml:"kills"`
	Cooldown float64 `yaml:"cooldown"`
}

// TurretLab is the saved state of the turret lab.
type TurretLab struct {
	Turrets []TurretSave `yaml:"turrets"`
}

// Store reads and writes save files inside one directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the save files.
func (s *Store) Dir() string {
	return s.dir
}

// Load decodes name into v. It reports false without error if the file does
// not exist, leaving v untouched.
func (s *Store) Load(name string, v any) (bool, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("save: cannot read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("save: cannot parse %s: %w", path, err)
	}
	return true, nil
}

// Save encodes v into name, replacing any previous file.
func (s *Store) Save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("save: cannot create directory %s: %w", s.dir, err)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("save: cannot encode %s: %w", name, err)
	}

	// Write to a temp file first so a crash never leaves a half-written save.
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("save: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save: cannot replace %s: %w", path, err)
	}
	return nil
}

// LoadShip reads the free-flight ship save.
func (s *Store) LoadShip() (ShipSave, bool, error) {
	var ship ShipSave
	ok, err := s.Load("ship.yaml", &ship)
	return ship, ok, err
}

// SaveShip writes the free-flight ship save.
func (s *Store) SaveShip(ship ShipSave) error {
	return s.Save("ship.yaml", ship)
}

// LoadTurrets reads the turret lab save.
func (s *Store) LoadTurrets() (TurretLab, bool, error) {
	var lab TurretLab
	ok, err := s.Load("turrets.yaml", &lab)
	return lab, ok, err
}

// SaveTurrets writes the turret lab save.
func (s *Store) SaveTurrets(lab TurretLab) error {
	return s.Save("turrets.yaml", lab)
}
