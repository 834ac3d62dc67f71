package vision

// DefaultHandMaxDistancePx is the radius around the nearest hand within
// which product detections are kept.
const DefaultHandMaxDistancePx = 150.0

// FilterByHandProximity selects the non-hand detections whose bbox centers
// lie within maxDistancePx of the nearest hand center. Hands are a proxy
// for what the customer is actually touching; detections further away are
// background stock on the tray.
//
// With no hand in the frame every non-hand detection passes through
// unchanged. With multiple hands the minimum distance over all hands is
// used. A product whose center coincides with a hand center is kept
// (distance zero).
func FilterByHandProximity(detections []Detection, maxDistancePx float64) []Detection {
	var hands, products []Detection
	for _, d := range detections {
		if d.IsHand() {
			hands = append(hands, d)
		} else {
			products = append(products, d)
		}
	}

	if len(hands) == 0 {
		return products
	}

	filtered := make([]Detection, 0, len(products))
	for _, p := range products {
		if nearestHandDistance(p, hands) <= maxDistancePx {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// nearestHandDistance returns the minimum center distance from a product
// detection to any hand.
func nearestHandDistance(product Detection, hands []Detection) float64 {
	min := product.DistanceTo(hands[0])
	for _, h := range hands[1:] {
		if d := product.DistanceTo(h); d < min {
			min = d
		}
	}
	return min
}
