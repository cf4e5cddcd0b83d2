package domain

import "time"

// FigureKind names the figure a run produced.
type FigureKind string

const (
	FigureVortex     FigureKind = "oam_vortex"
	FigurePhaseBasic FigureKind = "phase_basics"
)

// FigureReport summarizes one generate-and-render run for the CLI.
type FigureReport struct {
	Kind     FigureKind `json:"kind"`
	GridSize int        `json:"grid_size"`
	Extent   float64    `json:"extent"`

	// Vortex-only fields.
	Charge        int     `json:"charge,omitempty"`
	Waist         float64 `json:"w0,omitempty"`
	PeakIntensity float64 `json:"peak_intensity,omitempty"`
	CoreIntensity float64 `json:"core_intensity"`

	OutputPath string    `json:"output_path,omitempty"`
	Shown      bool      `json:"shown"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}

// Duration returns the wall time of the run, or 0 when timestamps are missing.
func (r FigureReport) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
