// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization —
// just data containers, no ORM magic. Pointer fields mean "may be absent".
package models

// Report is the record of one completed astrology-generation request:
// the four raw inputs plus everything computed from them.
//
// A Report is only constructed once all four inputs are present and
// non-empty. NormalizedLocation and Prediction are never empty after
// construction — upstream failures substitute degraded values instead.
type Report struct {
	Name string `json:"name"`
	DOB  string `json:"dob"` // YYYY-MM-DD as entered; may not parse
	TOB  string `json:"tob"` // free text, never parsed

	// Age in whole years. Nil when the DOB did not parse ("unknown").
	Age *int `json:"age,omitempty"`

	// NormalizedLocation is "India", "India → State",
	// "India → State → District", or "India → <raw input>" as a fallback.
	NormalizedLocation string `json:"normalized_location"`

	// Prediction is the generated narrative (may contain Odia script),
	// or the canned fallback message when generation failed everywhere.
	Prediction string `json:"prediction"`
}

// ErrorResponse is the standard error payload for surfaced failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse reports service status.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	OdiaFont      bool   `json:"odia_font"`
	Model         string `json:"model"`
	ModelFallback string `json:"model_fallback"`
}
