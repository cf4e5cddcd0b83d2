package config

import (
	"errors"
	"testing"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestMapConfigRejectsBadSampling(t *testing.T) {
	cases := []struct {
		name  string
		dto   YAMLConfig
		field string
	}{
		{"vortex grid", YAMLConfig{Vortex: YAMLVortex{Grid: intPtr(-1)}}, "vortex.grid"},
		{"vortex single sample", YAMLConfig{Vortex: YAMLVortex{Grid: intPtr(1)}}, "vortex.grid"},
		{"vortex extent", YAMLConfig{Vortex: YAMLVortex{Extent: floatPtr(0)}}, "vortex.extent"},
		{"phase extent", YAMLConfig{Phase: YAMLPhase{Extent: floatPtr(-5)}}, "phase.extent"},
		{"workers", YAMLConfig{Workers: intPtr(-2)}, "workers"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := MapConfig("vortex.yaml", c.dto)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var oe *domain.OpError
			if !errors.As(err, &oe) || oe.Field != c.field {
				t.Fatalf("expected field %q, got %v", c.field, err)
			}
		})
	}
}

func TestMapConfigAllowsAnyCharge(t *testing.T) {
	for _, l := range []int{-10, 0, 7} {
		cfg, err := MapConfig("vortex.yaml", YAMLConfig{Vortex: YAMLVortex{Charge: intPtr(l)}})
		if err != nil {
			t.Fatalf("charge %d: unexpected error: %v", l, err)
		}
		if cfg.Vortex.Charge != l {
			t.Fatalf("charge %d not applied: %+v", l, cfg.Vortex)
		}
	}
}

func TestMapConfigTrimsOutputDir(t *testing.T) {
	cfg, err := MapConfig("vortex.yaml", YAMLConfig{Output: YAMLOutput{Dir: "   "}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Dir != "." {
		t.Fatalf("expected default dir, got %q", cfg.Output.Dir)
	}
}
