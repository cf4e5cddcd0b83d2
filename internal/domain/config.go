package domain

// Config represents the vortex configuration, typically loaded from a YAML file
// and then overridden by environment variables and flags.
type Config struct {
	Vortex  Params
	Phase   PhaseConfig
	Workers int
	Output  OutputConfig
}

// PhaseConfig sizes the basic phase map figure.
type PhaseConfig struct {
	GridSize int
	Extent   float64
}

// OutputConfig controls where figures are written.
type OutputConfig struct {
	Dir string
}

// DefaultConfig provides sane defaults if the config file is partially missing.
// Workers == 0 means one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Vortex: DefaultParams(),
		Phase: PhaseConfig{
			GridSize: DefaultPhaseGridSize,
			Extent:   DefaultPhaseExtent,
		},
		Workers: 0,
		Output:  OutputConfig{Dir: "."},
	}
}

// ProjectSpec describes a directory to scaffold with a starter vortex.yaml.
type ProjectSpec struct {
	Root string
}
