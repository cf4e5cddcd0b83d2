package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/config"
	"github.com/Calebjackson-photonics/structured-light-education/internal/ports"
)

const envPrefix = "VORTEX"

// Setting keys. Phase keys are namespaced so VORTEX_GRID does not resize the
// basic phase map.
const (
	keyCharge      = "charge"
	keyGrid        = "grid"
	keyExtent      = "extent"
	keyWorkers     = "workers"
	keyPhaseGrid   = "phase_grid"
	keyPhaseExtent = "phase_extent"
	keyOutputDir   = "output_dir"
)

var (
	configLoader  ports.ConfigLoader  = config.NewFileLoader()
	configLocator ports.ConfigLocator = config.NewFinder()
)

type section int

const (
	sectionVortex section = iota
	sectionPhase
)

// resolveConfig layers defaults, the YAML file (--config or a discovered
// vortex.yaml), VORTEX_* environment variables and explicitly set flags, in
// increasing priority.
func resolveConfig(flags *pflag.FlagSet, s section) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := ""
	if f := flags.Lookup("config"); f != nil {
		path = strings.TrimSpace(f.Value.String())
	}
	if path == "" {
		path = discoverConfig()
	}
	if path != "" {
		loaded, err := configLoader.LoadConfig(path)
		if err != nil {
			return domain.Config{}, err
		}
		cfg = loaded
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyCharge, cfg.Vortex.Charge)
	v.SetDefault(keyGrid, cfg.Vortex.GridSize)
	v.SetDefault(keyExtent, cfg.Vortex.Extent)
	v.SetDefault(keyWorkers, cfg.Workers)
	v.SetDefault(keyPhaseGrid, cfg.Phase.GridSize)
	v.SetDefault(keyPhaseExtent, cfg.Phase.Extent)
	v.SetDefault(keyOutputDir, cfg.Output.Dir)

	bindings := map[string]string{
		keyWorkers:   "workers",
		keyOutputDir: "output-dir",
	}
	switch s {
	case sectionPhase:
		bindings[keyPhaseGrid] = "grid"
		bindings[keyPhaseExtent] = "extent"
	default:
		bindings[keyCharge] = "charge"
		bindings[keyGrid] = "grid"
		bindings[keyExtent] = "extent"
	}
	for key, name := range bindings {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return domain.Config{}, err
			}
		}
	}

	var err error
	if cfg.Vortex.Charge, err = intSetting(v, keyCharge); err != nil {
		return domain.Config{}, err
	}
	if cfg.Vortex.GridSize, err = intSetting(v, keyGrid); err != nil {
		return domain.Config{}, err
	}
	if cfg.Vortex.Extent, err = floatSetting(v, keyExtent); err != nil {
		return domain.Config{}, err
	}
	if cfg.Phase.GridSize, err = intSetting(v, keyPhaseGrid); err != nil {
		return domain.Config{}, err
	}
	if cfg.Phase.Extent, err = floatSetting(v, keyPhaseExtent); err != nil {
		return domain.Config{}, err
	}
	if cfg.Workers, err = intSetting(v, keyWorkers); err != nil {
		return domain.Config{}, err
	}
	if cfg.Workers < 0 {
		return domain.Config{}, settingError(keyWorkers, fmt.Errorf("must be >= 0, got %d", cfg.Workers))
	}
	cfg.Output.Dir = strings.TrimSpace(v.GetString(keyOutputDir))
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}

	return cfg, nil
}

// discoverConfig returns the nearest vortex.yaml above the working directory,
// or "" when there is none.
func discoverConfig() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	path, err := configLocator.FindConfig(wd)
	if err != nil {
		return ""
	}
	return path
}

func intSetting(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, settingError(key, err)
	}
	return n, nil
}

func floatSetting(v *viper.Viper, key string) (float64, error) {
	x, err := cast.ToFloat64E(v.Get(key))
	if err != nil {
		return 0, settingError(key, err)
	}
	return x, nil
}

func settingError(key string, err error) error {
	return &domain.OpError{
		Op:    "cli.settings",
		Kind:  domain.KindInvalidConfig,
		Field: key,
		Err:   fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err),
	}
}
