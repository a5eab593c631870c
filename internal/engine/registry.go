package engine

// TrackInfo describes a named grouping of missions sharing a skillset.
type TrackInfo struct {
	ID           string
	Name         string
	Description  string
	Requirements []string
	Models       []string
}

// Registry maps mission IDs to factories. It is built explicitly at process
// startup by each track's RegisterAll; there is no import-time registration.
type Registry struct {
	missions map[string]registered
	order    []string
	tracks   map[string]TrackInfo
	trackIDs []string
}

type registered struct {
	info    MissionInfo
	factory MissionFactory
}

func NewRegistry() *Registry {
	return &Registry{
		missions: map[string]registered{},
		tracks:   map[string]TrackInfo{},
	}
}

// Register inserts a mission under info.ID. Registering the same ID twice
// overwrites the previous entry but keeps its listing position.
func (r *Registry) Register(info MissionInfo, factory MissionFactory) {
	if _, exists := r.missions[info.ID]; !exists {
		r.order = append(r.order, info.ID)
	}
	r.missions[info.ID] = registered{info: info, factory: factory}
}

// RegisterTrack records track metadata for listing.
func (r *Registry) RegisterTrack(info TrackInfo) {
	if _, exists := r.tracks[info.ID]; !exists {
		r.trackIDs = append(r.trackIDs, info.ID)
	}
	r.tracks[info.ID] = info
}

// Get returns the factory for a mission ID, or nil when unregistered.
func (r *Registry) Get(id string) MissionFactory {
	reg, ok := r.missions[id]
	if !ok {
		return nil
	}
	return reg.factory
}

// GetInfo returns the descriptor for a mission ID.
func (r *Registry) GetInfo(id string) (MissionInfo, bool) {
	reg, ok := r.missions[id]
	return reg.info, ok
}

// All returns descriptors in registration order.
func (r *Registry) All() []MissionInfo {
	out := make([]MissionInfo, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.missions[id].info)
	}
	return out
}

// ByTier returns descriptors for one tier, in registration order.
func (r *Registry) ByTier(tier Tier) []MissionInfo {
	var out []MissionInfo
	for _, id := range r.order {
		if info := r.missions[id].info; info.Tier == tier {
			out = append(out, info)
		}
	}
	return out
}

// ByTrack returns descriptors for one track, in registration order.
func (r *Registry) ByTrack(trackID string) []MissionInfo {
	var out []MissionInfo
	for _, id := range r.order {
		if info := r.missions[id].info; info.Track == trackID {
			out = append(out, info)
		}
	}
	return out
}

// Tracks returns registered tracks in registration order.
func (r *Registry) Tracks() []TrackInfo {
	out := make([]TrackInfo, 0, len(r.trackIDs))
	for _, id := range r.trackIDs {
		out = append(out, r.tracks[id])
	}
	return out
}
