package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML view of the gameplay tuning. Any subset of fields may be
// present in a file; missing fields keep their current values.
type Tuning struct {
	Player     PlayerConfig     `yaml:"player"`
	Chaser     EnemyTypeConfig  `yaml:"chaser"`
	Lobber     EnemyTypeConfig  `yaml:"lobber"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Camera     CameraConfig     `yaml:"camera"`
	Level      LevelConfig      `yaml:"level"`
	Editor     EditorConfig     `yaml:"editor"`
}

// CurrentTuning snapshots the global tuning.
func CurrentTuning() Tuning {
	return Tuning{
		Player:     Player,
		Chaser:     Chaser,
		Lobber:     Lobber,
		Bullet:     Bullet,
		Projectile: Projectile,
		Camera:     Camera,
		Level:      Level,
		Editor:     Editor,
	}
}

// Apply installs t as the global tuning.
func (t Tuning) Apply() {
	Player = t.Player
	Chaser = t.Chaser
	Lobber = t.Lobber
	Bullet = t.Bullet
	Projectile = t.Projectile
	Camera = t.Camera
	Level = t.Level
	Editor = t.Editor
}

// ApplyTuning overlays YAML data onto the global tuning. Globals are left
// untouched when the data does not parse.
func ApplyTuning(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return err
	}
	t.Apply()
	return nil
}

// LoadTuning overlays a tuning file onto the defaults.
// Search order: customPath -> ~/.onionrun/tuning.yaml -> ./tuning.yaml.
// It returns the path that was applied, or "" when only defaults are in use.
func LoadTuning(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		if err := ApplyTuning(data); err != nil {
			return "", fmt.Errorf("failed to parse tuning %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userTuningPath(), "tuning.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := ApplyTuning(data); err != nil {
			return "", fmt.Errorf("failed to parse tuning %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

func userTuningPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".onionrun", "tuning.yaml")
}
