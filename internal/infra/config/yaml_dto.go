package config

// YAMLConfig mirrors vortex.yaml. Pointer fields distinguish "absent" from zero
// so that explicit zeros can be rejected instead of silently defaulted.
type YAMLConfig struct {
	Vortex  YAMLVortex `yaml:"vortex"`
	Phase   YAMLPhase  `yaml:"phase"`
	Workers *int       `yaml:"workers"`
	Output  YAMLOutput `yaml:"output"`
}

type YAMLVortex struct {
	Charge *int     `yaml:"charge"`
	Grid   *int     `yaml:"grid"`
	Extent *float64 `yaml:"extent"`
}

type YAMLPhase struct {
	Grid   *int     `yaml:"grid"`
	Extent *float64 `yaml:"extent"`
}

type YAMLOutput struct {
	Dir string `yaml:"dir"`
}
