// Package art is the ART neural networks learning track: three missions
// that teach hands-on workflows through Adaptive Resonance Theory models.
package art

import "github.com/syre-ai/neural-foundry/internal/engine"

// TrackID is the registry key for this track.
const TrackID = "art_neural_networks"

// RegisterAll registers the track and its missions in a fixed order.
// Called explicitly at process startup; there is no import-time side effect.
func RegisterAll(reg *engine.Registry) {
	reg.RegisterTrack(engine.TrackInfo{
		ID:           TrackID,
		Name:         "ART Neural Networks",
		Description:  "Learn by training Adaptive Resonance Theory models",
		Requirements: []string{"python", "numpy", "artlib"},
		Models:       []string{"ART1", "FuzzyART", "SimpleARTMAP", "ARTMAP"},
	})

	reg.Register(m01Info, newFirstResonance)
	reg.Register(m02Info, newSignalNoise)
	reg.Register(m03Info, newMappersPath)
}
