package art

import (
	"fmt"

	"github.com/syre-ai/neural-foundry/internal/engine"
)

const m02Instructions = `# Mission 02: Signal in the Noise

## Briefing

An abandoned research station transmitted its final sensor readings before
going offline. The data stream contains compressed embeddings - some are
valid sensor clusters, others are corrupted noise. Your task: separate the
signal from the noise.

## Objectives

1. **Load the Embeddings** - Read the embedding data files
2. **First Attempt** - Run FuzzyART and observe the results
3. **Diagnose Issues** - Understand why initial clustering is poor
4. **Iterate to Success** - Adjust parameters and achieve >75% separation score

## Files

` + "```" + `
workspace/
├── data/
│   ├── embeddings.json  # 100 samples, 16 dimensions
│   ├── labels.json      # Ground truth: 0-4 = clusters, -1 = noise
│   └── readme.txt       # Data format documentation
├── train.py             # Starter script - complete it
└── results.json         # Output your results here
` + "```" + `

## FuzzyART Parameters

Unlike ART1, FuzzyART has three parameters to tune:

- ` + "`rho`" + ` (vigilance): Cluster specificity [0.0 - 1.0]
- ` + "`alpha`" + ` (choice): Affects category selection (typically small, e.g., 0.01)
- ` + "`beta`" + ` (learning): Learning rate [0.0 - 1.0]

## The Challenge

Your first attempt will likely produce poor results. This is intentional!

The iterative workflow:
1. Write initial code → Run → See poor results
2. Examine output → Diagnose
3. Adjust parameters → Re-run → Check improvement
4. Repeat until >75% separation score

## Scoring

Separation score measures how well clusters match ground truth labels.
Perfect separation = each cluster contains only one true label (or only noise).

## Hints

- Start simple: ` + "`FuzzyART(rho=0.5, alpha=0.01, beta=1.0)`" + `
- If too many clusters form, lower rho
- If clusters mix different labels, raise rho
- Noise points (-1 labels) should ideally form their own cluster(s)

## Validation

Run ` + "`foundry check m02_signal_noise`" + ` to validate your progress.

Remember: iteration is the path to resonance.
`

const m02Readme = `# Embedding Data Format

## Files

- embeddings.json: 100 rows of 16 floats each
- labels.json: 100 ground truth labels

## Labels

- 0, 1, 2, 3, 4: Valid sensor cluster IDs
- -1: Corrupted/noise samples

## Loading

` + "```python" + `
import json
import numpy as np

with open("data/embeddings.json") as f:
    embeddings = np.array(json.load(f))  # Shape: (100, 16)
with open("data/labels.json") as f:
    labels = np.array(json.load(f))      # Shape: (100,)

print(f"Samples: {len(embeddings)}")
print(f"Unique labels: {np.unique(labels)}")
` + "```" + `

## Notes

- All values are in range [0, 1] (pre-normalized)
- Noise samples are scattered throughout the embedding space
- Valid clusters have tight groupings
`

const m02Starter = `"""FuzzyART clustering for sensor embeddings.

TODO: Complete this script to cluster the embeddings.

Workflow:
1. Load the data
2. Initialize FuzzyART
3. Fit the model
4. Evaluate clustering
5. Save results
"""

import json
import numpy as np
# TODO: Import FuzzyART from artlib


def load_data(data_dir: str = "data"):
    """Load embeddings and labels."""
    with open(f"{data_dir}/embeddings.json") as f:
        embeddings = np.array(json.load(f))
    with open(f"{data_dir}/labels.json") as f:
        labels = np.array(json.load(f))
    return embeddings, labels


def calculate_separation_score(labels, cluster_assignments):
    """For each cluster, find the dominant true label.
    Score = sum of dominant label counts / total samples.
    """
    # TODO: Implement scoring
    pass


def main():
    embeddings, labels = load_data()
    print(f"Loaded {len(embeddings)} embeddings")

    # TODO: Initialize FuzzyART
    # TODO: Fit the model
    # TODO: Get cluster assignments
    # TODO: Calculate separation score
    # TODO: Save results to results.json
    #       Required keys: "separation_score", "n_clusters"


if __name__ == "__main__":
    main()
`

var m02Info = engine.MissionInfo{
	ID:          "m02_signal_noise",
	Title:       "Signal in the Noise",
	Tier:        engine.TierApprentice,
	Track:       TrackID,
	Description: "Learn iterative editing with FuzzyART clustering",
	Story:       "Separate valid sensor embeddings from corrupted noise transmissions",
	XPReward:    150,
	Skills:      []string{"Iterative editing", "Debugging workflow", "Parameter tuning"},
	TrackSkills: []string{"FuzzyART"},
}

// signalNoise teaches the iterate-and-tune workflow with FuzzyART.
type signalNoise struct{}

func newSignalNoise() engine.Mission { return signalNoise{} }

func (signalNoise) Info() engine.MissionInfo { return m02Info }

func (signalNoise) Instructions() string { return m02Instructions }

func (signalNoise) Checkpoints() []engine.Checkpoint {
	return []engine.Checkpoint{
		{
			ID:          "load_embeddings",
			Title:       "Load the Embeddings",
			Description: "Read the embedding data files",
			Hint:        "Load embeddings.json and labels.json with json.load",
			Status:      engine.StatusAvailable,
		},
		{
			ID:          "first_attempt",
			Title:       "First Attempt",
			Description: "Run FuzzyART and create initial results",
			Hint:        "Import FuzzyART from artlib and run fit()",
			Status:      engine.StatusLocked,
		},
		{
			ID:          "diagnose",
			Title:       "Diagnose Issues",
			Description: "Add diagnostic output to understand clustering",
			Hint:        "Print cluster counts, check label distribution per cluster",
			Status:      engine.StatusLocked,
		},
		{
			ID:          "iterate_success",
			Title:       "Iterate to Success",
			Description: "Achieve >75% separation score",
			Hint:        "Adjust rho - try values between 0.3 and 0.7",
			Status:      engine.StatusLocked,
		},
	}
}

func (signalNoise) Setup(workspace string) error {
	if err := ensureWorkspace(workspace); err != nil {
		return err
	}

	embeddings, labels := clusterEmbeddings()
	embPayload, err := marshalData(embeddings)
	if err != nil {
		return err
	}
	labelPayload, err := marshalData(labels)
	if err != nil {
		return err
	}
	if err := writeGenerated(workspace, "data/embeddings.json", embPayload); err != nil {
		return err
	}
	if err := writeGenerated(workspace, "data/labels.json", labelPayload); err != nil {
		return err
	}
	if err := writeGenerated(workspace, "data/readme.txt", []byte(m02Readme)); err != nil {
		return err
	}
	if err := writeGenerated(workspace, "MISSION.md", []byte(m02Instructions)); err != nil {
		return err
	}
	return writeStarterIfAbsent(workspace, "train.py", m02Starter)
}

func (signalNoise) ValidateCheckpoint(workspace, checkpointID string) (bool, string) {
	switch checkpointID {
	case "load_embeddings":
		content, ok := readWorkspaceFile(workspace, "train.py")
		if !ok {
			return false, "train.py not found"
		}
		if containsAny(content, "json.load", "np.load") && containsAny(content, "embeddings", "Embeddings") {
			return true, "Data loading code detected!"
		}
		return false, "Load embeddings.json and labels.json in train.py"

	case "first_attempt":
		content, ok := readWorkspaceFile(workspace, "train.py")
		if !ok {
			return false, "train.py not found"
		}
		if containsAll(content, "FuzzyART", "fit") {
			if fileExists(workspace, "results.json") {
				return true, "First attempt completed!"
			}
			return false, "Run your script and save results.json"
		}
		return false, "Add FuzzyART initialization and fit()"

	case "diagnose":
		content, ok := readWorkspaceFile(workspace, "train.py")
		if !ok {
			return false, "train.py not found"
		}
		hasDiagnostics := containsAny(content, "print", "n_clusters", "unique", "Counter", "distribution")
		if hasDiagnostics && containsAll(content, "FuzzyART") {
			return true, "Diagnostic code detected!"
		}
		return false, "Add print statements to analyze your clusters"

	case "iterate_success":
		results, probe := readResults(workspace)
		switch probe {
		case resultsMissing:
			return false, "Run training and save results.json"
		case resultsInvalid:
			return false, "Invalid results.json format"
		}
		score := metric(results, "separation_score")
		if score >= 0.75 {
			return true, fmt.Sprintf("Excellent! Score: %.1f%%", score*100)
		}
		return false, fmt.Sprintf("Score %.1f%% - need >75%%. Adjust parameters!", score*100)
	}
	return false, "Unknown checkpoint"
}
