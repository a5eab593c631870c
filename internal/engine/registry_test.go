package engine

import "testing"

func regInfo(id, track string, tier Tier) MissionInfo {
	return MissionInfo{ID: id, Title: id, Track: track, Tier: tier}
}

func TestRegistryOrderAndOverwrite(t *testing.T) {
	r := NewRegistry()
	r.Register(regInfo("a", "t1", TierApprentice), nil)
	r.Register(regInfo("b", "t1", TierApprentice), nil)
	r.Register(regInfo("c", "t2", TierJourneyman), nil)

	ids := func(infos []MissionInfo) []string {
		out := make([]string, len(infos))
		for i, info := range infos {
			out[i] = info.ID
		}
		return out
	}

	got := ids(r.All())
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("All order=%v", got)
	}

	r.Register(MissionInfo{ID: "a", Title: "a v2", Track: "t1", Tier: TierApprentice}, nil)
	got = ids(r.All())
	if len(got) != 3 || got[0] != "a" {
		t.Fatalf("re-register moved listing position: %v", got)
	}
	info, ok := r.GetInfo("a")
	if !ok || info.Title != "a v2" {
		t.Fatalf("re-register did not overwrite: %+v", info)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()
	if r.Get("missing") != nil {
		t.Fatalf("expected nil factory for unknown id")
	}
	if _, ok := r.GetInfo("missing"); ok {
		t.Fatalf("expected GetInfo miss")
	}
}

func TestRegistryFilters(t *testing.T) {
	r := NewRegistry()
	r.Register(regInfo("a", "t1", TierApprentice), nil)
	r.Register(regInfo("b", "t2", TierJourneyman), nil)
	r.Register(regInfo("c", "t1", TierApprentice), nil)

	byTrack := r.ByTrack("t1")
	if len(byTrack) != 2 || byTrack[0].ID != "a" || byTrack[1].ID != "c" {
		t.Fatalf("ByTrack=%v", byTrack)
	}
	byTier := r.ByTier(TierJourneyman)
	if len(byTier) != 1 || byTier[0].ID != "b" {
		t.Fatalf("ByTier=%v", byTier)
	}
}

func TestRegistryTracks(t *testing.T) {
	r := NewRegistry()
	r.RegisterTrack(TrackInfo{ID: "t1", Name: "One"})
	r.RegisterTrack(TrackInfo{ID: "t2", Name: "Two"})
	r.RegisterTrack(TrackInfo{ID: "t1", Name: "One v2"})

	tracks := r.Tracks()
	if len(tracks) != 2 || tracks[0].ID != "t1" || tracks[1].ID != "t2" {
		t.Fatalf("Tracks=%v", tracks)
	}
	if tracks[0].Name != "One v2" {
		t.Fatalf("re-register did not overwrite track: %+v", tracks[0])
	}
}
