package renderer

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-vis/engine/model"
)

// RendererBuilderOption is a functional option for configuring a Renderer.
type RendererBuilderOption func(*renderer)

// WithMeshProvider sets the source of the static per-kind meshes.
//
// Parameters:
//   - p: the mesh provider
//
// Returns:
//   - RendererBuilderOption: functional option to set the mesh provider
func WithMeshProvider(p model.MeshProvider) RendererBuilderOption {
	return func(r *renderer) {
		r.meshes = p
	}
}

// WithWorkers sets the number of workers packing instances in parallel. One or fewer
// packs on the calling goroutine. Defaults to NumCPU-1.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - RendererBuilderOption: functional option to set the worker count
func WithWorkers(n int) RendererBuilderOption {
	return func(r *renderer) {
		r.workers = n
	}
}

// WithLogger sets the logger used for renderer diagnostics.
func WithLogger(l *slog.Logger) RendererBuilderOption {
	return func(r *renderer) {
		r.logger = l
	}
}
