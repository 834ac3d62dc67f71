package engine

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/aivend/judge/internal/catalog"
	"github.com/aivend/judge/internal/vision"
	"github.com/aivend/judge/internal/weight"
)

const (
	// CompleteMinScore is the minimum top fused score required to call a
	// within-tolerance match complete.
	CompleteMinScore = 0.40

	// partialToleranceFactor and partialMinExplainedFrac bound the
	// partial band: the error may stretch to twice the tolerance budget
	// as long as the combination explains at least half the weight.
	partialToleranceFactor  = 2.0
	partialMinExplainedFrac = 0.5

	// visionWeight / weightFitWeight blend the two evidence sources into
	// the overall confidence. Fixed design constants, not tunable.
	visionWeight    = 0.5
	weightFitWeight = 0.5
)

// Input is one judgment request after boundary validation.
type Input struct {
	Detections    []vision.Detection
	DeltaWeight   float64 // signed grams, negative = removal
	UseHandFilter bool
}

// Engine runs the fusion pipeline. It is stateless: every judgment is a
// pure computation over its input and the immutable catalog, so a single
// Engine serves any number of concurrent requests.
type Engine struct {
	catalog         *catalog.Catalog
	handMaxDistance float64
	log             zerolog.Logger
}

// New creates a judgment engine over a loaded catalog.
func New(cat *catalog.Catalog, log zerolog.Logger) *Engine {
	return &Engine{
		catalog:         cat,
		handMaxDistance: vision.DefaultHandMaxDistancePx,
		log:             log.With().Str("component", "engine").Logger(),
	}
}

// Judge decides which products explain the detections and weight change.
// It never fails for domain-valid inputs; every outcome is a Decision.
func (e *Engine) Judge(input Input) Decision {
	id := uuid.NewString()
	timestamp := float64(time.Now().UnixNano()) / 1e9
	absWeight := math.Abs(input.DeltaWeight)

	candidates := e.ensembleCandidates(input)

	e.log.Debug().
		Str("decision_id", id).
		Int("detections", len(input.Detections)).
		Int("candidates", len(candidates)).
		Float64("delta_weight", input.DeltaWeight).
		Msg("Starting judgment")

	// No evidence: nothing detected near the hand, or the scale barely
	// moved. Both are normal outcomes, not errors.
	if len(candidates) == 0 || absWeight < weight.MinDeltaWeightG {
		return e.noDetection(id, input.DeltaWeight, timestamp)
	}

	scored := e.resolveProducts(candidates)
	if len(scored) == 0 {
		return e.noDetection(id, input.DeltaWeight, timestamp)
	}

	combo, ok := weight.Match(scored, absWeight)
	if !ok {
		// Candidates exist but none has a known unit weight, so the scale
		// cannot arbitrate. Report the top vision candidate as a count-1
		// uncertain guess rather than claiming nothing was detected.
		return e.visionOnlyDecision(id, scored[0], input.DeltaWeight, timestamp)
	}

	status := classify(combo, candidates[0].FusedScore, absWeight)
	decision := e.buildDecision(id, combo, status, input.DeltaWeight, absWeight, timestamp)

	e.log.Info().
		Str("decision_id", id).
		Str("status", string(status)).
		Int("products", len(decision.Products)).
		Int("total_price", decision.TotalPrice).
		Float64("confidence", decision.Confidence).
		Float64("explained", decision.Weight.Explained).
		Float64("residual", decision.Weight.Residual).
		Msg("Judgment complete")

	return decision
}

// ensembleCandidates runs the per-camera vision stages and fuses them.
func (e *Engine) ensembleCandidates(input Input) []vision.Candidate {
	perCamera := vision.PartitionByCamera(input.Detections)

	topKByCamera := make(map[string][]vision.Detection, len(perCamera))
	for cameraID, detections := range perCamera {
		var products []vision.Detection
		if input.UseHandFilter {
			products = vision.FilterByHandProximity(detections, e.handMaxDistance)
		} else {
			// Hands are never candidates even with the filter disabled.
			for _, d := range detections {
				if !d.IsHand() {
					products = append(products, d)
				}
			}
		}
		topKByCamera[cameraID] = vision.ExtractTopK(products, vision.TopK)
	}

	return vision.Ensemble(topKByCamera, func(classID int) bool {
		_, ok := e.catalog.ByID(classID)
		return ok
	})
}

// resolveProducts maps ensembled candidates to catalog products. Unknown
// classes are dropped (logged); that is a data problem, not a failure.
func (e *Engine) resolveProducts(candidates []vision.Candidate) []weight.ScoredProduct {
	scored := make([]weight.ScoredProduct, 0, len(candidates))
	for _, c := range candidates {
		product, ok := e.catalog.ByID(c.ClassID)
		if !ok {
			e.log.Warn().Int("class_id", c.ClassID).Str("name", c.Name).Msg("Detected class not in catalog, dropping")
			continue
		}
		scored = append(scored, weight.ScoredProduct{Product: product, FusedScore: c.FusedScore})
	}
	return scored
}

// classify applies the status rule to the matcher's best combination.
func classify(combo weight.Combination, topScore, absWeight float64) Status {
	if combo.Within && topScore >= CompleteMinScore {
		return StatusComplete
	}
	if combo.ErrorG <= partialToleranceFactor*combo.ToleranceG &&
		combo.Expected >= partialMinExplainedFrac*absWeight {
		return StatusPartial
	}
	return StatusUncertain
}

// buildDecision assembles the final result from the chosen combination.
func (e *Engine) buildDecision(id string, combo weight.Combination, status Status, delta, absWeight, timestamp float64) Decision {
	items := make([]weight.ComboItem, len(combo.Items))
	copy(items, combo.Items)
	sort.Slice(items, func(i, j int) bool {
		if items[i].FusedScore != items[j].FusedScore {
			return items[i].FusedScore > items[j].FusedScore
		}
		return items[i].Product.ID < items[j].Product.ID
	})

	lines := make([]ProductLine, 0, len(items))
	fusedScores := make([]float64, 0, len(items))
	totalPrice := 0
	for _, item := range items {
		linePrice := item.Count * item.Product.UnitPrice
		totalPrice += linePrice
		fusedScores = append(fusedScores, item.FusedScore)
		lines = append(lines, ProductLine{
			ProductID:  item.Product.ID,
			Name:       item.Product.Name,
			Count:      item.Count,
			UnitPrice:  item.Product.UnitPrice,
			LinePrice:  linePrice,
			Confidence: clip01(item.FusedScore),
		})
	}

	weightFit := math.Max(0, 1-combo.ErrorG/math.Max(absWeight, 1))
	confidence := clip01(visionWeight*stat.Mean(fusedScores, nil) + weightFitWeight*weightFit)

	return Decision{
		ID:         id,
		Status:     status,
		Products:   lines,
		TotalPrice: totalPrice,
		Confidence: confidence,
		Weight: WeightInfo{
			Delta:     delta,
			Explained: combo.Expected,
			Residual:  math.Abs(absWeight - combo.Expected),
		},
		IsRemoval: delta < 0,
		Timestamp: timestamp,
	}
}

// visionOnlyDecision reports the best vision candidate when the weight
// signal cannot arbitrate (no candidate has a known unit weight).
func (e *Engine) visionOnlyDecision(id string, top weight.ScoredProduct, delta, timestamp float64) Decision {
	e.log.Info().
		Str("decision_id", id).
		Str("product", top.Product.Name).
		Msg("No weighable candidate, returning vision-only estimate")

	return Decision{
		ID:     id,
		Status: StatusUncertain,
		Products: []ProductLine{{
			ProductID:  top.Product.ID,
			Name:       top.Product.Name,
			Count:      1,
			UnitPrice:  top.Product.UnitPrice,
			LinePrice:  top.Product.UnitPrice,
			Confidence: clip01(top.FusedScore),
		}},
		TotalPrice: top.Product.UnitPrice,
		Confidence: clip01(visionWeight * clip01(top.FusedScore)),
		Weight: WeightInfo{
			Delta:     delta,
			Explained: 0,
			Residual:  math.Abs(delta),
		},
		IsRemoval: delta < 0,
		Timestamp: timestamp,
	}
}

// noDetection builds the empty outcome for no-evidence requests.
func (e *Engine) noDetection(id string, delta, timestamp float64) Decision {
	return Decision{
		ID:         id,
		Status:     StatusNoDetection,
		Products:   []ProductLine{},
		TotalPrice: 0,
		Confidence: 0,
		Weight: WeightInfo{
			Delta:     delta,
			Explained: 0,
			Residual:  math.Abs(delta),
		},
		IsRemoval: delta < 0,
		Timestamp: timestamp,
	}
}

func clip01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
