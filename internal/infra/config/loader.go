package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/ports"
)

// FileLoader reads vortex.yaml files from the filesystem.
type FileLoader struct{}

func NewFileLoader() FileLoader { return FileLoader{} }

var _ ports.ConfigLoader = FileLoader{}

func (FileLoader) LoadConfig(path string) (domain.Config, error) {
	return LoadConfig(path)
}

// LoadConfig reads path and applies its values on top of domain.DefaultConfig.
func LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load_config",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load_config",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
