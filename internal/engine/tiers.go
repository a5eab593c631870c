package engine

// Tier is a player progression stage. The value is the label persisted in
// the save file, so it must stay stable across releases.
type Tier string

const (
	TierApprentice Tier = "Apprentice"
	TierJourneyman Tier = "Journeyman"
	TierArtisan    Tier = "Artisan"
	TierMaster     Tier = "Master"
)

// Ladder is the fixed tier progression, lowest first.
var Ladder = []Tier{TierApprentice, TierJourneyman, TierArtisan, TierMaster}

func (t Tier) IsValid() bool {
	switch t {
	case TierApprentice, TierJourneyman, TierArtisan, TierMaster:
		return true
	default:
		return false
	}
}

// TierInfo describes a tier: what it teaches and how many completed
// missions are required to reach it.
type TierInfo struct {
	Tier             Tier
	Description      string
	Skills           []string
	MissionsRequired int
}

var tierInfo = map[Tier]TierInfo{
	TierApprentice: {
		Tier:        TierApprentice,
		Description: "Beginning your journey",
		Skills: []string{
			"File reading and exploration",
			"Basic editing and iteration",
			"Simple code generation",
		},
		MissionsRequired: 0,
	},
	TierJourneyman: {
		Tier:        TierJourneyman,
		Description: "Building confidence with multi-step workflows",
		Skills: []string{
			"Multi-file refactoring",
			"Task planning with todos",
			"Systematic debugging",
		},
		MissionsRequired: 5,
	},
	TierArtisan: {
		Tier:        TierArtisan,
		Description: "Mastering complex development patterns",
		Skills: []string{
			"Test-driven development",
			"Architecture decisions",
			"Code review workflows",
		},
		MissionsRequired: 12,
	},
	TierMaster: {
		Tier:        TierMaster,
		Description: "Teaching others and pushing boundaries",
		Skills: []string{
			"System design",
			"Performance optimization",
			"Creating custom workflows",
		},
		MissionsRequired: 20,
	},
}

// Info returns the descriptor for a tier. Unknown tiers map to Apprentice
// so a hand-edited save file cannot wedge the ladder.
func Info(t Tier) TierInfo {
	if info, ok := tierInfo[t]; ok {
		return info
	}
	return tierInfo[TierApprentice]
}

// NextTier returns the tier after current in the ladder. The second return
// is false when current is already the terminal tier.
func NextTier(current Tier) (Tier, bool) {
	for i, t := range Ladder {
		if t == current && i+1 < len(Ladder) {
			return Ladder[i+1], true
		}
	}
	return "", false
}
