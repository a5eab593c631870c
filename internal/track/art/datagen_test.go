package art

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitPatternsDeterministic(t *testing.T) {
	p1, l1 := digitPatterns()
	p2, l2 := digitPatterns()
	require.Equal(t, p1, p2, "patterns must be identical across runs")
	require.Equal(t, l1, l2)
}

func TestDigitPatternsShape(t *testing.T) {
	patterns, labels := digitPatterns()
	require.Len(t, patterns, 50, "5 variants per digit 0-9")
	require.Len(t, labels, 50)

	for i, p := range patterns {
		require.Len(t, p, 64, "pattern %d", i)
		for _, v := range p {
			require.Contains(t, []int{0, 1}, v, "pattern %d not binary", i)
		}
	}
	counts := map[int]int{}
	for _, l := range labels {
		counts[l]++
	}
	for digit := 0; digit <= 9; digit++ {
		require.Equal(t, 5, counts[digit], "digit %d", digit)
	}
}

func TestClusterEmbeddingsShape(t *testing.T) {
	embeddings, labels := clusterEmbeddings()
	require.Len(t, embeddings, 100)
	require.Len(t, labels, 100)

	noise := 0
	for i, e := range embeddings {
		require.Len(t, e, 16, "row %d", i)
		for _, v := range e {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
		if labels[i] == -1 {
			noise++
		} else {
			require.GreaterOrEqual(t, labels[i], 0)
			require.Less(t, labels[i], 5)
		}
	}
	require.Equal(t, 25, noise)

	e2, l2 := clusterEmbeddings()
	require.Equal(t, embeddings, e2)
	require.Equal(t, labels, l2)
}

func TestClassificationSplitShape(t *testing.T) {
	trainX, trainY, testX, testY := classificationSplit()
	require.Len(t, trainX, 100)
	require.Len(t, trainY, 100)
	require.Len(t, testX, 48)
	require.Len(t, testY, 48)

	trainCounts := map[int]int{}
	for _, y := range trainY {
		trainCounts[y]++
	}
	testCounts := map[int]int{}
	for _, y := range testY {
		testCounts[y]++
	}
	for class := 0; class < 4; class++ {
		require.Equal(t, 25, trainCounts[class], "train class %d", class)
		require.Equal(t, 12, testCounts[class], "test class %d", class)
	}

	tx2, ty2, _, _ := classificationSplit()
	require.Equal(t, trainX, tx2)
	require.Equal(t, trainY, ty2)
}
