// Package vision implements the camera-side half of the judgment
// pipeline: detection filtering by hand proximity, per-camera top-K
// extraction, and multi-view candidate ensembling.
package vision

import "math"

// Detection is one raw observation from one camera frame, as emitted by
// the object detector. Class 0 is reserved for hands.
type Detection struct {
	X1, Y1, X2, Y2 float64 // bbox corners in pixels, X1<=X2 and Y1<=Y2
	Confidence     float64 // [0, 1]
	ClassID        int
	ClassName      string
	CameraID       string // optional tag, e.g. "top" or "side"
}

// IsHand reports whether the detection is the reserved hand class.
func (d Detection) IsHand() bool {
	return d.ClassID == HandClassID
}

// Center returns the bbox center point.
func (d Detection) Center() (float64, float64) {
	return (d.X1 + d.X2) / 2, (d.Y1 + d.Y2) / 2
}

// Area returns the bbox area in square pixels.
func (d Detection) Area() float64 {
	return (d.X2 - d.X1) * (d.Y2 - d.Y1)
}

// DistanceTo returns the Euclidean distance between the bbox centers of
// two detections.
func (d Detection) DistanceTo(other Detection) float64 {
	ax, ay := d.Center()
	bx, by := other.Center()
	return math.Hypot(ax-bx, ay-by)
}

// HandClassID is the detector class reserved for hands.
const HandClassID = 0

// PartitionByCamera groups detections by their camera tag. Untagged
// detections share the empty key and are treated as a single view.
func PartitionByCamera(detections []Detection) map[string][]Detection {
	byCamera := make(map[string][]Detection)
	for _, d := range detections {
		byCamera[d.CameraID] = append(byCamera[d.CameraID], d)
	}
	return byCamera
}
