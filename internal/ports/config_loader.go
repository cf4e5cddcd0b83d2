package ports

import "github.com/Calebjackson-photonics/structured-light-education/internal/domain"

// ConfigLoader loads vortex configuration from a source (e.g., a YAML file).
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
