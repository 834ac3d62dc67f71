package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTopK_RanksByConfidence(t *testing.T) {
	detections := []Detection{
		det(1, 0, 0, 0.5),
		det(2, 0, 0, 0.9),
		det(3, 0, 0, 0.7),
	}

	top := ExtractTopK(detections, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].ClassID)
	assert.Equal(t, 3, top[1].ClassID)
}

func TestExtractTopK_KeepsAllWhenFewerThanK(t *testing.T) {
	detections := []Detection{det(1, 0, 0, 0.5)}
	assert.Len(t, ExtractTopK(detections, TopK), 1)
}

func TestExtractTopK_TieBreaksByAreaThenClassID(t *testing.T) {
	small := Detection{X1: 0, Y1: 0, X2: 10, Y2: 10, Confidence: 0.8, ClassID: 7}
	large := Detection{X1: 0, Y1: 0, X2: 50, Y2: 50, Confidence: 0.8, ClassID: 9}
	top := ExtractTopK([]Detection{small, large}, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 9, top[0].ClassID, "larger bbox wins the confidence tie")

	// Same confidence and area: smaller class id first.
	a := Detection{X1: 0, Y1: 0, X2: 10, Y2: 10, Confidence: 0.8, ClassID: 4}
	b := Detection{X1: 0, Y1: 0, X2: 10, Y2: 10, Confidence: 0.8, ClassID: 2}
	top = ExtractTopK([]Detection{a, b}, 2)
	assert.Equal(t, 2, top[0].ClassID)
}

func TestExtractTopK_DoesNotModifyInput(t *testing.T) {
	detections := []Detection{
		det(1, 0, 0, 0.5),
		det(2, 0, 0, 0.9),
	}

	_ = ExtractTopK(detections, 1)
	assert.Equal(t, 1, detections[0].ClassID, "input order must be preserved")
}

func TestExtractTopK_EdgeCases(t *testing.T) {
	assert.Nil(t, ExtractTopK([]Detection{det(1, 0, 0, 0.5)}, 0))
	assert.Empty(t, ExtractTopK(nil, TopK))
}
