package engine

import "testing"

func TestNextTierLadder(t *testing.T) {
	next, ok := NextTier(TierApprentice)
	if !ok || next != TierJourneyman {
		t.Fatalf("after Apprentice: %s %v", next, ok)
	}
	next, ok = NextTier(TierArtisan)
	if !ok || next != TierMaster {
		t.Fatalf("after Artisan: %s %v", next, ok)
	}
	if _, ok := NextTier(TierMaster); ok {
		t.Fatalf("Master should be terminal")
	}
}

func TestTierInfoThresholds(t *testing.T) {
	want := map[Tier]int{
		TierApprentice: 0,
		TierJourneyman: 5,
		TierArtisan:    12,
		TierMaster:     20,
	}
	for tier, missions := range want {
		if got := Info(tier).MissionsRequired; got != missions {
			t.Fatalf("%s requires %d, want %d", tier, got, missions)
		}
	}
}

func TestInfoUnknownTier(t *testing.T) {
	info := Info(Tier("Archmage"))
	if info.Tier != TierApprentice {
		t.Fatalf("unknown tier resolved to %s", info.Tier)
	}
}
