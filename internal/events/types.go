// Package events provides event management functionality.
package events

import "time"

// EventType represents different event types
type EventType string

const (
	// DecisionMade fires after every judgment, whatever its status.
	DecisionMade EventType = "DECISION_MADE"
	// CatalogLoaded fires once at startup when the catalog is ready.
	CatalogLoaded EventType = "CATALOG_LOADED"
	// ErrorOccurred fires for unexpected internal failures.
	ErrorOccurred EventType = "ERROR_OCCURRED"
)

// Event represents a system event
type Event struct {
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Module    string                 `json:"module"`
}

// EventData is the interface all typed event payloads implement
type EventData interface {
	// EventType returns the event type this data is associated with
	EventType() EventType
}

// DecisionMadeData contains data for DecisionMade events
type DecisionMadeData struct {
	DecisionID   string  `json:"decision_id"`
	Status       string  `json:"status"`
	Success      bool    `json:"success"`
	ProductCount int     `json:"product_count"`
	TotalPrice   int     `json:"total_price"`
	Confidence   float64 `json:"confidence"`
	DeltaWeight  float64 `json:"delta_weight"`
	IsRemoval    bool    `json:"is_removal"`
}

// EventType returns the event type for DecisionMadeData
func (d *DecisionMadeData) EventType() EventType {
	return DecisionMade
}

// CatalogLoadedData contains data for CatalogLoaded events
type CatalogLoadedData struct {
	Source       string `json:"source"` // builtin, yaml, or sqlite
	ProductCount int    `json:"product_count"`
}

// EventType returns the event type for CatalogLoadedData
func (d *CatalogLoadedData) EventType() EventType {
	return CatalogLoaded
}

// ErrorEventData contains data for ErrorOccurred events
type ErrorEventData struct {
	Message string `json:"message"`
	Module  string `json:"module"`
}

// EventType returns the event type for ErrorEventData
func (d *ErrorEventData) EventType() EventType {
	return ErrorOccurred
}
