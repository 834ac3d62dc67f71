package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aivend/judge/internal/engine"
	"github.com/aivend/judge/internal/events"
	"github.com/aivend/judge/internal/vision"
)

// maxBatchSize caps one batch call; larger batches should be split by
// the caller.
const maxBatchSize = 64

// serviceVersion is reported by the health endpoint.
const serviceVersion = "1.0.0"

// handleJudge handles POST /api/judge
func (s *Server) handleJudge(w http.ResponseWriter, r *http.Request) {
	var req JudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	decision := s.engine.Judge(req.toInput())
	s.emitDecision(decision)
	s.writeJSON(w, http.StatusOK, toResponse(decision))
}

// handleJudgeLoadcell handles POST /api/judge/loadcell. The delta weight
// is derived from the raw channel readings before judgment.
func (s *Server) handleJudgeLoadcell(w http.ResponseWriter, r *http.Request) {
	var req LoadcellJudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	judgeReq := JudgeRequest{
		Detections:    req.Detections,
		DeltaWeight:   req.DeltaWeight(),
		UseHandFilter: req.UseHandFilter,
	}

	decision := s.engine.Judge(judgeReq.toInput())
	s.emitDecision(decision)
	s.writeJSON(w, http.StatusOK, toResponse(decision))
}

// handleJudgeBatch handles POST /api/judge/batch
func (s *Server) handleJudgeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchJudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Requests) == 0 {
		s.writeError(w, http.StatusBadRequest, "No requests provided")
		return
	}
	if len(req.Requests) > maxBatchSize {
		s.writeError(w, http.StatusBadRequest, "Batch too large, max "+strconv.Itoa(maxBatchSize))
		return
	}

	inputs := make([]engine.Input, 0, len(req.Requests))
	for i, jr := range req.Requests {
		if err := jr.Validate(); err != nil {
			s.writeError(w, http.StatusBadRequest, "request "+strconv.Itoa(i)+": "+err.Error())
			return
		}
		inputs = append(inputs, jr.toInput())
	}

	decisions, err := s.pool.JudgeAll(r.Context(), inputs)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, "Batch judgment cancelled: "+err.Error())
		return
	}

	results := make([]JudgeResponse, 0, len(decisions))
	for _, d := range decisions {
		s.emitDecision(d)
		results = append(results, toResponse(d))
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

// handleSimulate handles POST /api/simulate. It fabricates a detection
// and a matching weight delta for a known product, then runs the normal
// pipeline. Used by operators to sanity-check a machine without stock.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Confidence == 0 {
		req.Confidence = 0.8
	}
	if req.Count == 0 {
		req.Count = 1
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, ok := s.catalog.ByID(req.ProductID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "Unknown product id "+strconv.Itoa(req.ProductID))
		return
	}

	input := engine.Input{
		Detections: []vision.Detection{{
			X1: 0, Y1: 0, X2: 100, Y2: 100,
			Confidence: req.Confidence,
			ClassID:    product.ID,
			ClassName:  product.Name,
			CameraID:   "sim",
		}},
		DeltaWeight:   -product.UnitWeight * float64(req.Count),
		UseHandFilter: false,
	}

	decision := s.engine.Judge(input)
	s.emitDecision(decision)
	s.writeJSON(w, http.StatusOK, toResponse(decision))
}

// handleTest handles GET /api/test: a canned single-product judgment
// that exercises the full pipeline end to end.
func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	products := s.catalog.All()
	if len(products) == 0 {
		s.writeError(w, http.StatusServiceUnavailable, "Catalog is empty")
		return
	}
	sample := products[0]

	input := engine.Input{
		Detections: []vision.Detection{{
			X1: 120, Y1: 80, X2: 260, Y2: 240,
			Confidence: 0.9,
			ClassID:    sample.ID,
			ClassName:  sample.Name,
			CameraID:   "cam0",
		}},
		DeltaWeight:   -sample.UnitWeight,
		UseHandFilter: true,
	}

	decision := s.engine.Judge(input)
	s.writeJSON(w, http.StatusOK, toResponse(decision))
}

// handleProducts handles GET /api/products
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products := s.catalog.All()
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(products),
		"products": products,
	})
}

// handleProduct handles GET /api/products/{id}
func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, ok := s.catalog.ByID(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "Unknown product id "+strconv.Itoa(id))
		return
	}

	s.writeJSON(w, http.StatusOK, product)
}

// handleHealth handles GET /health and GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"version":      serviceVersion,
		"productCount": s.catalog.Len(),
	})
}

// emitDecision publishes a DecisionMade event for stream subscribers.
func (s *Server) emitDecision(d engine.Decision) {
	if s.events == nil {
		return
	}
	s.events.EmitTyped(events.DecisionMade, "judge", &events.DecisionMadeData{
		DecisionID:   d.ID,
		Status:       string(d.Status),
		Success:      d.Success(),
		ProductCount: d.ProductCount(),
		TotalPrice:   d.TotalPrice,
		Confidence:   d.Confidence,
		DeltaWeight:  d.Weight.Delta,
		IsRemoval:    d.IsRemoval,
	})
}

// Helper methods

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
