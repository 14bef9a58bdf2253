package dto

// CompanySummary proyección pública de una empresa.
type CompanySummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status"`
}
