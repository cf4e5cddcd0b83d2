// Package domain contains the core model for vortex: beam parameters, sampling
// grids and the phase/intensity maps computed over them.
//
// The domain does not depend on YAML parsing, image encoding or the filesystem.
// Infra/adapters map into/from these types.
package domain
