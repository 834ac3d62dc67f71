package vision

import "sort"

// CrossViewBonus scales the candidate score for classes that more than
// one camera agrees on: score = base * (1 + CrossViewBonus*(views-1)).
const CrossViewBonus = 0.15

// Candidate is an ensembled product hypothesis. FusedScore may exceed 1
// after the cross-view bonus; it is comparison-only and clipped before it
// is reported as a confidence.
type Candidate struct {
	ClassID    int
	Name       string
	FusedScore float64
	Cameras    []string // views the class was seen in, sorted
}

// Ensemble fuses per-camera ranked candidate lists into a single ranked
// list of at most TopK candidates. Per class the base score is the best
// single-view confidence; classes seen from several cameras earn the
// cross-view bonus. Classes the catalog does not know are discarded via
// the inCatalog predicate.
//
// Individual low-threshold detector outputs are noisy; agreement between
// independent views is stronger evidence than any single confidence.
func Ensemble(perCamera map[string][]Detection, inCatalog func(classID int) bool) []Candidate {
	type classAgg struct {
		name    string
		best    float64
		cameras map[string]bool
	}

	byClass := make(map[int]*classAgg)
	for cameraID, detections := range perCamera {
		for _, d := range detections {
			if d.IsHand() {
				continue
			}
			agg, ok := byClass[d.ClassID]
			if !ok {
				agg = &classAgg{name: d.ClassName, cameras: make(map[string]bool)}
				byClass[d.ClassID] = agg
			}
			if d.Confidence > agg.best {
				agg.best = d.Confidence
			}
			agg.cameras[cameraID] = true
		}
	}

	candidates := make([]Candidate, 0, len(byClass))
	for classID, agg := range byClass {
		if inCatalog != nil && !inCatalog(classID) {
			continue
		}

		score := agg.best
		if views := len(agg.cameras); views >= 2 {
			score = agg.best * (1 + CrossViewBonus*float64(views-1))
		}

		cameras := make([]string, 0, len(agg.cameras))
		for cam := range agg.cameras {
			cameras = append(cameras, cam)
		}
		sort.Strings(cameras)

		candidates = append(candidates, Candidate{
			ClassID:    classID,
			Name:       agg.name,
			FusedScore: score,
			Cameras:    cameras,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FusedScore != candidates[j].FusedScore {
			return candidates[i].FusedScore > candidates[j].FusedScore
		}
		return candidates[i].ClassID < candidates[j].ClassID
	})

	if len(candidates) > TopK {
		candidates = candidates[:TopK]
	}
	return candidates
}
