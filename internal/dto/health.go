package dto

// HealthResponse is returned by the probe endpoints. Details names each
// dependency that was checked and its state.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
