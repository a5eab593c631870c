package art

import (
	"math"
	"math/rand"
)

// dataSeed fixes every generator below. Setup must produce byte-identical
// data files on every run, so all randomness flows from an explicitly
// seeded source, never the global one.
const dataSeed = 42

var digitRows = map[int][]string{
	0: {"00111100", "01000010", "01000010", "01000010", "01000010", "01000010", "01000010", "00111100"},
	1: {"00011000", "00101000", "01001000", "00001000", "00001000", "00001000", "00001000", "01111110"},
	2: {"00111100", "01000010", "00000010", "00000100", "00001000", "00010000", "00100000", "01111110"},
	3: {"00111100", "01000010", "00000010", "00011100", "00000010", "00000010", "01000010", "00111100"},
	4: {"00000100", "00001100", "00010100", "00100100", "01000100", "01111110", "00000100", "00000100"},
	5: {"01111110", "01000000", "01000000", "01111100", "00000010", "00000010", "01000010", "00111100"},
	6: {"00111100", "01000010", "01000000", "01111100", "01000010", "01000010", "01000010", "00111100"},
	7: {"01111110", "00000010", "00000100", "00001000", "00010000", "00010000", "00010000", "00010000"},
	8: {"00111100", "01000010", "01000010", "00111100", "01000010", "01000010", "01000010", "00111100"},
	9: {"00111100", "01000010", "01000010", "00111110", "00000010", "00000010", "01000010", "00111100"},
}

// digitPatterns generates 8x8 binary digit patterns: five variants per digit
// 0-9, the first clean and the rest with one to three flipped bits.
func digitPatterns() (patterns [][]int, labels []int) {
	rng := rand.New(rand.NewSource(dataSeed))

	for digit := 0; digit <= 9; digit++ {
		base := make([]int, 0, 64)
		for _, row := range digitRows[digit] {
			for _, c := range row {
				if c == '1' {
					base = append(base, 1)
				} else {
					base = append(base, 0)
				}
			}
		}

		for variant := 0; variant < 5; variant++ {
			pattern := make([]int, 64)
			copy(pattern, base)
			if variant > 0 {
				flips := 1 + rng.Intn(3)
				for _, idx := range rng.Perm(64)[:flips] {
					pattern[idx] = 1 - pattern[idx]
				}
			}
			patterns = append(patterns, pattern)
			labels = append(labels, digit)
		}
	}
	return patterns, labels
}

// clusterEmbeddings generates 100 16-dimensional embeddings: five tight
// clusters of fifteen samples each plus twenty-five uniform noise points
// labelled -1, shuffled together.
func clusterEmbeddings() (embeddings [][]float64, labels []int) {
	rng := rand.New(rand.NewSource(dataSeed))

	const (
		nClusters         = 5
		samplesPerCluster = 15
		nNoise            = 25
		nDims             = 16
	)

	centers := make([][]float64, nClusters)
	for i := range centers {
		centers[i] = make([]float64, nDims)
		for d := range centers[i] {
			centers[i][d] = 0.2 + rng.Float64()*0.6
		}
	}

	for clusterID := 0; clusterID < nClusters; clusterID++ {
		for s := 0; s < samplesPerCluster; s++ {
			sample := make([]float64, nDims)
			for d := range sample {
				sample[d] = clip01(round4(centers[clusterID][d] + rng.NormFloat64()*0.05))
			}
			embeddings = append(embeddings, sample)
			labels = append(labels, clusterID)
		}
	}

	for n := 0; n < nNoise; n++ {
		sample := make([]float64, nDims)
		for d := range sample {
			sample[d] = round4(rng.Float64())
		}
		embeddings = append(embeddings, sample)
		labels = append(labels, -1)
	}

	shuffleTogether(rng, embeddings, labels)
	return embeddings, labels
}

// classificationSplit generates a 4-class train/test split with 8 features:
// 25 training and 12 test samples per class. Each class gets two dominant
// and two recessive features so the classes separate cleanly.
func classificationSplit() (trainX [][]float64, trainY []int, testX [][]float64, testY []int) {
	rng := rand.New(rand.NewSource(dataSeed))

	const (
		nClasses      = 4
		trainPerClass = 25
		testPerClass  = 12
		nFeatures     = 8
	)

	centers := make([][]float64, nClasses)
	for i := range centers {
		centers[i] = make([]float64, nFeatures)
		for d := range centers[i] {
			centers[i][d] = 0.2 + rng.Float64()*0.6
		}
		dominant := []int{(i * 2) % nFeatures, (i*2 + 1) % nFeatures}
		for _, d := range dominant {
			centers[i][d] = 0.7 + rng.Float64()*0.2
		}
		recessive := []int{(i*2 + 4) % nFeatures, (i*2 + 5) % nFeatures}
		for _, d := range recessive {
			centers[i][d] = 0.1 + rng.Float64()*0.2
		}
	}

	sample := func(center []float64) []float64 {
		s := make([]float64, nFeatures)
		for d := range s {
			s[d] = clip01(round4(center[d] + rng.NormFloat64()*0.08))
		}
		return s
	}

	for classID := 0; classID < nClasses; classID++ {
		for n := 0; n < trainPerClass; n++ {
			trainX = append(trainX, sample(centers[classID]))
			trainY = append(trainY, classID)
		}
		for n := 0; n < testPerClass; n++ {
			testX = append(testX, sample(centers[classID]))
			testY = append(testY, classID)
		}
	}

	shuffleTogether(rng, trainX, trainY)
	shuffleTogether(rng, testX, testY)
	return trainX, trainY, testX, testY
}

func shuffleTogether(rng *rand.Rand, rows [][]float64, labels []int) {
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
		labels[i], labels[j] = labels[j], labels[i]
	})
}

func clip01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
