package server

import (
	"fmt"
	"math"

	"github.com/aivend/judge/internal/engine"
	"github.com/aivend/judge/internal/vision"
)

// The boundary accepts the loose JSON the detector side emits and
// translates it into structurally complete core values. Schema
// violations are rejected here; the core never sees them.

// DetectionInput is one detector observation as received over the wire.
type DetectionInput struct {
	XYXY   []float64 `json:"xyxy"` // [x1, y1, x2, y2] pixels
	Conf   float64   `json:"conf"`
	Cls    int       `json:"cls"` // 0 = hand
	Name   string    `json:"name"`
	Camera string    `json:"camera,omitempty"`
}

// Validate checks structural soundness of one detection.
func (d DetectionInput) Validate() error {
	if len(d.XYXY) != 4 {
		return fmt.Errorf("xyxy must have 4 elements, got %d", len(d.XYXY))
	}
	for _, v := range d.XYXY {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("xyxy contains non-finite value")
		}
	}
	if d.XYXY[0] > d.XYXY[2] || d.XYXY[1] > d.XYXY[3] {
		return fmt.Errorf("malformed bbox: x1<=x2 and y1<=y2 required")
	}
	if math.IsNaN(d.Conf) || d.Conf < 0 || d.Conf > 1 {
		return fmt.Errorf("conf must be in [0,1], got %v", d.Conf)
	}
	if d.Cls < 0 {
		return fmt.Errorf("cls must be non-negative, got %d", d.Cls)
	}
	return nil
}

// toDetection converts a validated input to the core model.
func (d DetectionInput) toDetection() vision.Detection {
	return vision.Detection{
		X1:         d.XYXY[0],
		Y1:         d.XYXY[1],
		X2:         d.XYXY[2],
		Y2:         d.XYXY[3],
		Confidence: d.Conf,
		ClassID:    d.Cls,
		ClassName:  d.Name,
		CameraID:   d.Camera,
	}
}

// JudgeRequest is the core judgment operation input.
type JudgeRequest struct {
	Detections    []DetectionInput `json:"detections"`
	DeltaWeight   float64          `json:"delta_weight"`
	UseHandFilter *bool            `json:"use_hand_filter,omitempty"` // default true
}

// Validate checks the full request.
func (r JudgeRequest) Validate() error {
	if math.IsNaN(r.DeltaWeight) || math.IsInf(r.DeltaWeight, 0) {
		return fmt.Errorf("delta_weight must be finite")
	}
	for i, d := range r.Detections {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("detection %d: %w", i, err)
		}
	}
	return nil
}

// toInput converts a validated request to an engine input.
func (r JudgeRequest) toInput() engine.Input {
	detections := make([]vision.Detection, 0, len(r.Detections))
	for _, d := range r.Detections {
		detections = append(detections, d.toDetection())
	}

	useHandFilter := true
	if r.UseHandFilter != nil {
		useHandFilter = *r.UseHandFilter
	}

	return engine.Input{
		Detections:    detections,
		DeltaWeight:   r.DeltaWeight,
		UseHandFilter: useHandFilter,
	}
}

// loadcellChannels is the fixed channel count of the tray's load-cell
// array; a zone spans two adjacent channels.
const (
	loadcellChannels = 10
	maxZoneID        = 4
)

// LoadcellJudgeRequest is the production judgment input: raw load-cell
// channel readings instead of a precomputed delta.
type LoadcellJudgeRequest struct {
	Detections      []DetectionInput `json:"detections"`
	LoadcellWeights []float64        `json:"loadcell_weights"`
	BaselineWeights []float64        `json:"baseline_weights"`
	ZoneID          *int             `json:"zone_id,omitempty"`
	UseHandFilter   *bool            `json:"use_hand_filter,omitempty"`
}

// Validate checks channel counts and zone range.
func (r LoadcellJudgeRequest) Validate() error {
	if len(r.LoadcellWeights) != loadcellChannels {
		return fmt.Errorf("loadcell_weights must have %d channels, got %d", loadcellChannels, len(r.LoadcellWeights))
	}
	if len(r.BaselineWeights) != loadcellChannels {
		return fmt.Errorf("baseline_weights must have %d channels, got %d", loadcellChannels, len(r.BaselineWeights))
	}
	for _, v := range append(append([]float64{}, r.LoadcellWeights...), r.BaselineWeights...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("loadcell readings must be finite")
		}
	}
	if r.ZoneID != nil && (*r.ZoneID < 0 || *r.ZoneID > maxZoneID) {
		return fmt.Errorf("zone_id must be in [0,%d], got %d", maxZoneID, *r.ZoneID)
	}
	for i, d := range r.Detections {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("detection %d: %w", i, err)
		}
	}
	return nil
}

// DeltaWeight sums the per-channel differences for the requested zone
// (zone z covers channels 2z and 2z+1), or all channels when no zone is
// given.
func (r LoadcellJudgeRequest) DeltaWeight() float64 {
	var delta float64
	if r.ZoneID != nil {
		start := *r.ZoneID * 2
		for i := start; i < start+2; i++ {
			delta += r.LoadcellWeights[i] - r.BaselineWeights[i]
		}
		return delta
	}
	for i := range r.LoadcellWeights {
		delta += r.LoadcellWeights[i] - r.BaselineWeights[i]
	}
	return delta
}

// BatchJudgeRequest evaluates several judgment inputs in one call.
type BatchJudgeRequest struct {
	Requests []JudgeRequest `json:"requests"`
}

// SimulateRequest synthesizes a judgment from a known product and count.
type SimulateRequest struct {
	ProductID  int     `json:"product_id"`
	Count      int     `json:"count"`
	Confidence float64 `json:"confidence"`
}

// Validate checks simulate parameters.
func (r SimulateRequest) Validate() error {
	if r.ProductID < 1 {
		return fmt.Errorf("product_id must be positive, got %d", r.ProductID)
	}
	if r.Count < 1 || r.Count > 10 {
		return fmt.Errorf("count must be in [1,10], got %d", r.Count)
	}
	if r.Confidence < 0 || r.Confidence > 1 || math.IsNaN(r.Confidence) {
		return fmt.Errorf("confidence must be in [0,1], got %v", r.Confidence)
	}
	return nil
}

// ProductOutput is one judged product line, camelCase per the payment
// service contract.
type ProductOutput struct {
	ProductID  int     `json:"productId"`
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	UnitPrice  int     `json:"unitPrice"`
	TotalPrice int     `json:"totalPrice"`
	Confidence float64 `json:"confidence"`
}

// WeightInfoOutput is the weight accounting block of a response.
type WeightInfoOutput struct {
	Delta     float64 `json:"delta"`
	Explained float64 `json:"explained"`
	Residual  float64 `json:"residual"`
}

// JudgeResponse is the serialized decision.
type JudgeResponse struct {
	Success      bool             `json:"success"`
	Products     []ProductOutput  `json:"products"`
	TotalPrice   int              `json:"totalPrice"`
	Status       string           `json:"status"`
	Confidence   float64          `json:"confidence"`
	WeightInfo   WeightInfoOutput `json:"weightInfo"`
	ProductCount int              `json:"productCount"`
	IsRemoval    bool             `json:"isRemoval"`
	Timestamp    float64          `json:"timestamp"`
}

// toResponse converts a decision to its wire form. Confidences round to
// two decimals and weights to one, matching what the payment service
// displays.
func toResponse(d engine.Decision) JudgeResponse {
	products := make([]ProductOutput, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, ProductOutput{
			ProductID:  p.ProductID,
			Name:       p.Name,
			Count:      p.Count,
			UnitPrice:  p.UnitPrice,
			TotalPrice: p.LinePrice,
			Confidence: round2(p.Confidence),
		})
	}

	return JudgeResponse{
		Success:      d.Success(),
		Products:     products,
		TotalPrice:   d.TotalPrice,
		Status:       string(d.Status),
		Confidence:   round2(d.Confidence),
		WeightInfo: WeightInfoOutput{
			Delta:     round1(d.Weight.Delta),
			Explained: round1(d.Weight.Explained),
			Residual:  round1(d.Weight.Residual),
		},
		ProductCount: d.ProductCount(),
		IsRemoval:    d.IsRemoval,
		Timestamp:    d.Timestamp,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
