package art

import (
	"fmt"

	"github.com/syre-ai/neural-foundry/internal/engine"
)

const m03Instructions = `# Mission 03: The Mapper's Path

## Briefing

The research station's classification system was lost in the incident.
Fortunately, we recovered labeled training data. Your task: rebuild the
classifier using ARTMAP, a supervised variant of ART that learns to map
inputs to categories.

## Objectives

1. **Load the Data** - Read the train/test splits
2. **Generate the Code** - Write the ARTMAP training code
3. **Train the Model** - Fit on training data with labels
4. **Evaluate** - Achieve >85% test accuracy

## Files

` + "```" + `
workspace/
├── data/
│   ├── train.json     # Training features and labels (100 samples, 8 features)
│   ├── test.json      # Test features and labels (48 samples, 8 features)
│   └── readme.txt
├── train.py           # Minimal starter - you fill in the rest
└── results.json
` + "```" + `

## ARTMAP Concepts

ARTMAP adds **supervised learning** to ART:

- **SimpleARTMAP**: Wraps any ART module (like FuzzyART) for classification
- **fit(X, y)**: Train with features X and labels y
- **predict(X)**: Classify new samples

` + "```python" + `
from artlib import SimpleARTMAP, FuzzyART

# Create base ART module
fuzzy_art = FuzzyART(rho=0.7, alpha=0.01, beta=1.0)

# Wrap it in ARTMAP for supervised learning
model = SimpleARTMAP(module_a=fuzzy_art)

# Train (X = features, y = integer labels)
model.fit(X_train, y_train)

# Predict
predictions = model.predict(X_test)
` + "```" + `

## The Challenge

This mission has a **minimal starter template**. Loading is done for you;
building, training and evaluating the model is up to you.

## Hints

- Data is already normalized to [0, 1]
- Remember: FuzzyART needs ` + "`prepare_data()`" + ` for complement coding
- SimpleARTMAP handles the label mapping internally
- Start with rho=0.7 for the FuzzyART module

## Validation

Run ` + "`foundry check m03_mappers_path`" + ` to validate progress.

Trust the resonance.
`

const m03Readme = `# Classification Data Format

## Files

- train.json: {"X": 100x8 floats, "y": 100 integer labels 0-3}
- test.json:  {"X": 48x8 floats, "y": 48 integer labels 0-3}

## Loading

` + "```python" + `
import json
import numpy as np

with open("data/train.json") as f:
    train = json.load(f)
with open("data/test.json") as f:
    test = json.load(f)

train_X = np.array(train["X"])
train_y = np.array(train["y"])
test_X = np.array(test["X"])
test_y = np.array(test["y"])

print(f"Train: {train_X.shape}, Test: {test_X.shape}")
print(f"Classes: {np.unique(train_y)}")
` + "```" + `

## Notes

- All features are normalized to [0, 1] range
- 4 classes (0, 1, 2, 3)
- Classes are well-separated in feature space
- Test set is held out for evaluation
`

const m03Starter = `"""ARTMAP Classification for sensor data.

This is a MINIMAL starter. You write the rest.

You need to:
1. Import SimpleARTMAP and FuzzyART from artlib
2. Create and configure the model
3. Prepare the data (complement coding)
4. Train on training data
5. Predict on test data
6. Calculate accuracy
7. Save results to results.json
"""

import json
import numpy as np

# Load the data
with open("data/train.json") as f:
    train = json.load(f)
with open("data/test.json") as f:
    test = json.load(f)

train_X = np.array(train["X"])
train_y = np.array(train["y"])
test_X = np.array(test["X"])
test_y = np.array(test["y"])

print(f"Train: {train_X.shape}, labels: {np.unique(train_y)}")
print(f"Test: {test_X.shape}")
`

var m03Info = engine.MissionInfo{
	ID:          "m03_mappers_path",
	Title:       "The Mapper's Path",
	Tier:        engine.TierApprentice,
	Track:       TrackID,
	Description: "Learn code generation with supervised ARTMAP classification",
	Story:       "Rebuild a classification system using labeled training data",
	XPReward:    200,
	Skills:      []string{"Code generation", "Describing requirements", "Supervised learning"},
	TrackSkills: []string{"SimpleARTMAP", "FuzzyART"},
}

// mappersPath teaches supervised classification with ARTMAP.
type mappersPath struct{}

func newMappersPath() engine.Mission { return mappersPath{} }

func (mappersPath) Info() engine.MissionInfo { return m03Info }

func (mappersPath) Instructions() string { return m03Instructions }

func (mappersPath) Checkpoints() []engine.Checkpoint {
	return []engine.Checkpoint{
		{
			ID:          "load_data",
			Title:       "Load the Data",
			Description: "Read the train/test splits",
			Hint:        "The starter already loads train.json and test.json",
			Status:      engine.StatusAvailable,
		},
		{
			ID:          "generate_code",
			Title:       "Generate the Code",
			Description: "Create ARTMAP training code",
			Hint:        "Build a SimpleARTMAP around a FuzzyART module",
			Status:      engine.StatusLocked,
		},
		{
			ID:          "train_model",
			Title:       "Train the Model",
			Description: "Fit the model on training data",
			Hint:        "model.fit(X_prepared, y_train)",
			Status:      engine.StatusLocked,
		},
		{
			ID:          "evaluate",
			Title:       "Evaluate",
			Description: "Achieve >85% test accuracy",
			Hint:        "Compare predictions to test labels, save accuracy to results.json",
			Status:      engine.StatusLocked,
		},
	}
}

func (mappersPath) Setup(workspace string) error {
	if err := ensureWorkspace(workspace); err != nil {
		return err
	}

	trainX, trainY, testX, testY := classificationSplit()
	trainPayload, err := marshalData(map[string]any{"X": trainX, "y": trainY})
	if err != nil {
		return err
	}
	testPayload, err := marshalData(map[string]any{"X": testX, "y": testY})
	if err != nil {
		return err
	}
	if err := writeGenerated(workspace, "data/train.json", trainPayload); err != nil {
		return err
	}
	if err := writeGenerated(workspace, "data/test.json", testPayload); err != nil {
		return err
	}
	if err := writeGenerated(workspace, "data/readme.txt", []byte(m03Readme)); err != nil {
		return err
	}
	if err := writeGenerated(workspace, "MISSION.md", []byte(m03Instructions)); err != nil {
		return err
	}
	return writeStarterIfAbsent(workspace, "train.py", m03Starter)
}

func (mappersPath) ValidateCheckpoint(workspace, checkpointID string) (bool, string) {
	switch checkpointID {
	case "load_data":
		content, ok := readWorkspaceFile(workspace, "train.py")
		if !ok {
			return false, "train.py not found"
		}
		if containsAny(content, "json.load", "np.load") && containsAny(content, "train_X", "train[") {
			return true, "Data loading detected!"
		}
		return false, "Load the train/test data files"

	case "generate_code":
		content, ok := readWorkspaceFile(workspace, "train.py")
		if !ok {
			return false, "train.py not found"
		}
		if containsAny(content, "SimpleARTMAP", "ARTMAP") && containsAll(content, "FuzzyART") {
			return true, "ARTMAP code in place!"
		}
		return false, "Write SimpleARTMAP + FuzzyART code"

	case "train_model":
		content, ok := readWorkspaceFile(workspace, "train.py")
		if !ok {
			return false, "train.py not found"
		}
		if containsAll(content, ".fit(") && containsAny(content, "SimpleARTMAP", "ARTMAP") {
			return true, "Training code detected!"
		}
		return false, "Add model.fit() call to train the model"

	case "evaluate":
		results, probe := readResults(workspace)
		switch probe {
		case resultsMissing:
			return false, "Run training and save results.json"
		case resultsInvalid:
			return false, "Invalid results.json format"
		}
		accuracy := metric(results, "accuracy")
		if accuracy >= 0.85 {
			return true, fmt.Sprintf("Excellent! Accuracy: %.1f%%", accuracy*100)
		}
		return false, fmt.Sprintf("Accuracy %.1f%% - need >85%%", accuracy*100)
	}
	return false, "Unknown checkpoint"
}
