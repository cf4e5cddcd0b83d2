package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
)

// MapConfig applies dto on top of the defaults and validates the result.
func MapConfig(path string, dto YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if dto.Vortex.Charge != nil {
		cfg.Vortex.Charge = *dto.Vortex.Charge
	}
	if dto.Vortex.Grid != nil {
		cfg.Vortex.GridSize = *dto.Vortex.Grid
	}
	if dto.Vortex.Extent != nil {
		cfg.Vortex.Extent = *dto.Vortex.Extent
	}
	if dto.Phase.Grid != nil {
		cfg.Phase.GridSize = *dto.Phase.Grid
	}
	if dto.Phase.Extent != nil {
		cfg.Phase.Extent = *dto.Phase.Extent
	}
	if dto.Workers != nil {
		if *dto.Workers < 0 {
			return domain.DefaultConfig(), invalidField(path, "workers", fmt.Sprintf("must be >= 0, got %d", *dto.Workers))
		}
		cfg.Workers = *dto.Workers
	}
	if dir := strings.TrimSpace(dto.Output.Dir); dir != "" {
		cfg.Output.Dir = dir
	}

	if err := checkSampling(path, "vortex", cfg.Vortex.GridSize, cfg.Vortex.Extent); err != nil {
		return domain.DefaultConfig(), err
	}
	if err := checkSampling(path, "phase", cfg.Phase.GridSize, cfg.Phase.Extent); err != nil {
		return domain.DefaultConfig(), err
	}

	return cfg, nil
}

func checkSampling(path, section string, gridSize int, extent float64) error {
	err := domain.ValidateSampling("config.map", gridSize, extent)
	if err == nil {
		return nil
	}

	field, msg := "grid", err.Error()
	var oe *domain.OpError
	if errors.As(err, &oe) {
		if oe.Field == "extent" {
			field = "extent"
		}
		msg = oe.Err.Error()
	}
	return invalidField(path, section+"."+field, msg)
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:    "config.map",
		Kind:  domain.KindInvalidConfig,
		Path:  path,
		Field: field,
		Err:   fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
