package dronelbl

// Dataset config for the detector.

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DatasetConfig is the YAML dataset description read by the detector's trainer.
type DatasetConfig struct {
	Path  string         `yaml:"path"`
	Train string         `yaml:"train"`
	Val   string         `yaml:"val"`
	Test  string         `yaml:"test,omitempty"`
	NC    int            `yaml:"nc"`
	Names map[int]string `yaml:"names"`
}

// NewDatasetConfig returns the config for the VisDrone dataset at root, with the image
// directories of the default splits.
func NewDatasetConfig(root string) DatasetConfig {
	names := make(map[int]string, NumClasses)
	for i, n := range classNames {
		names[i] = n
	}
	return DatasetConfig{
		Path:  root,
		Train: filepath.ToSlash(filepath.Join("images", "train")),
		Val:   filepath.ToSlash(filepath.Join("images", "val")),
		Test:  filepath.ToSlash(filepath.Join("images", "test")),
		NC:    NumClasses,
		Names: names,
	}
}

// WriteDatasetConfig writes the YAML config to path, creating parent directories.
func WriteDatasetConfig(path string, cfg DatasetConfig) error {
	enc, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, enc, 0644); err != nil {
		return fmt.Errorf("cannot write file %q: %w", path, err)
	}
	return nil
}

// ReadDatasetConfig reads a YAML dataset config from path.
func ReadDatasetConfig(path string) (DatasetConfig, error) {
	var cfg DatasetConfig
	enc, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(enc, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse dataset config %q: %w", path, err)
	}
	return cfg, nil
}
