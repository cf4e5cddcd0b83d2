package ports

import "github.com/Calebjackson-photonics/structured-light-education/internal/domain"

type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) error
}
