package art

import (
	"fmt"

	"github.com/syre-ai/neural-foundry/internal/engine"
)

const m01Instructions = `# Mission 01: First Resonance

## Briefing

A research station has recovered fragments of an old pattern recognition
system. The data files contain binary digit patterns (0-9), but the
classification model was lost. Your task: rebuild the classifier using ART1.

## Objectives

1. **Explore the Data** - Read and understand the pattern files in the ` + "`data/`" + ` folder
2. **Load the Patterns** - Write code to load the binary patterns into numpy arrays
3. **Configure ART1** - Initialize an ART1 model with appropriate vigilance
4. **Train & Classify** - Train the model and achieve >80% clustering purity

## Files

` + "```" + `
workspace/
├── data/
│   ├── patterns.json    # The binary digit patterns
│   └── readme.txt       # Data format documentation
├── train.py             # Your training script (create this)
└── results.json         # Output your results here
` + "```" + `

## Hints

- Start by reading ` + "`data/readme.txt`" + ` to understand the format
- ART1 vigilance controls cluster specificity (0.1 = loose, 0.9 = strict)
- For digits, try vigilance around 0.5-0.7

## Validation

Run ` + "`foundry check m01_first_resonance`" + ` to validate your progress.

Good luck, Apprentice. May your patterns resonate.
`

const m01Readme = `# Pattern Data Format

This file contains binary representations of handwritten digits (0-9).

## Structure

- patterns.json contains:
  - "patterns": List of 64-element binary arrays (8x8 flattened)
  - "labels": True digit label for each pattern (0-9)
  - "shape": Original 2D shape [8, 8]

## Loading Example

` + "```python" + `
import json
import numpy as np

with open("data/patterns.json") as f:
    data = json.load(f)

patterns = np.array(data["patterns"])  # Shape: (N, 64)
labels = np.array(data["labels"])      # Shape: (N,)
` + "```" + `

## Notes

- Patterns are binary (0 or 1 values only)
- Each digit has multiple slightly different examples
- Some patterns may have noise/corruption
`

var m01Info = engine.MissionInfo{
	ID:          "m01_first_resonance",
	Title:       "First Resonance",
	Tier:        engine.TierApprentice,
	Track:       TrackID,
	Description: "Learn to read files and train your first ART1 model",
	Story:       "Rebuild a lost pattern classifier using recovered binary digit data",
	XPReward:    100,
	Skills:      []string{"File reading", "Data exploration", "Basic model training"},
	TrackSkills: []string{"ART1"},
}

// firstResonance teaches file exploration and ART1 basics.
type firstResonance struct{}

func newFirstResonance() engine.Mission { return firstResonance{} }

func (firstResonance) Info() engine.MissionInfo { return m01Info }

func (firstResonance) Instructions() string { return m01Instructions }

func (firstResonance) Checkpoints() []engine.Checkpoint {
	return []engine.Checkpoint{
		{
			ID:          "explore_data",
			Title:       "Explore the Data",
			Description: "Read and understand the pattern files",
			Hint:        "Start with data/readme.txt, then peek at patterns.json",
			Status:      engine.StatusAvailable,
		},
		{
			ID:          "load_patterns",
			Title:       "Load the Patterns",
			Description: "Create code that loads patterns into numpy arrays",
			Hint:        "Create train.py with numpy array loading logic",
			Status:      engine.StatusLocked,
		},
		{
			ID:          "configure_art1",
			Title:       "Configure ART1",
			Description: "Initialize ART1 with appropriate parameters",
			Hint:        "Import from artlib: from artlib import ART1",
			Status:      engine.StatusLocked,
		},
		{
			ID:          "train_model",
			Title:       "Train & Classify",
			Description: "Achieve >80% clustering purity",
			Hint:        "Write results to results.json with 'purity' key",
			Status:      engine.StatusLocked,
		},
	}
}

func (firstResonance) Setup(workspace string) error {
	if err := ensureWorkspace(workspace); err != nil {
		return err
	}

	patterns, labels := digitPatterns()
	payload, err := marshalData(map[string]any{
		"patterns":    patterns,
		"labels":      labels,
		"shape":       []int{8, 8},
		"description": "Binary digit patterns 0-9",
	})
	if err != nil {
		return err
	}
	if err := writeGenerated(workspace, "data/patterns.json", payload); err != nil {
		return err
	}
	if err := writeGenerated(workspace, "data/readme.txt", []byte(m01Readme)); err != nil {
		return err
	}
	return writeGenerated(workspace, "MISSION.md", []byte(m01Instructions))
}

func (firstResonance) ValidateCheckpoint(workspace, checkpointID string) (bool, string) {
	switch checkpointID {
	case "explore_data":
		if fileExists(workspace, "data", "readme.txt") {
			return true, "Data files are ready to explore!"
		}
		return false, "Data files not found"

	case "load_patterns":
		content, ok := readWorkspaceFile(workspace, "train.py")
		if !ok {
			return false, "Create train.py with your loading code"
		}
		if containsAny(content, "numpy", "np.") && containsAny(content, "patterns", "Patterns") {
			return true, "Loading code detected!"
		}
		return false, "train.py should load patterns with numpy"

	case "configure_art1":
		content, ok := readWorkspaceFile(workspace, "train.py")
		if !ok {
			return false, "Create train.py first"
		}
		if containsAll(content, "ART1", "artlib") {
			return true, "ART1 configuration found!"
		}
		return false, "Import and configure ART1 from artlib"

	case "train_model":
		results, probe := readResults(workspace)
		switch probe {
		case resultsMissing:
			return false, "Run your training and save results.json"
		case resultsInvalid:
			return false, "Invalid results.json format"
		}
		purity := metric(results, "purity")
		if purity >= 0.8 {
			return true, fmt.Sprintf("Excellent! Purity: %.1f%%", purity*100)
		}
		return false, fmt.Sprintf("Purity %.1f%% - need >80%%", purity*100)
	}
	return false, "Unknown checkpoint"
}
