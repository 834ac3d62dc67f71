package vision

import "sort"

// TopK is the number of candidates retained per camera and after
// ensembling.
const TopK = 5

// ExtractTopK ranks detections by confidence descending and keeps the
// first k. Ties are broken deterministically: larger bbox area first,
// then smaller class id. The input slice is not modified.
func ExtractTopK(detections []Detection, k int) []Detection {
	if k <= 0 {
		return nil
	}

	ranked := make([]Detection, len(detections))
	copy(ranked, detections)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if areaA, areaB := a.Area(), b.Area(); areaA != areaB {
			return areaA > areaB
		}
		return a.ClassID < b.ClassID
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
