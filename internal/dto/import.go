package dto

// Import DTOs

// RowError describes a validation failure for a single CSV row.
// Row numbers are 1-based and count data rows, not the header.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ImportValidationResponse is returned when the uploaded file fails validation
type ImportValidationResponse struct {
	Valid     bool       `json:"valid"`
	RowErrors []RowError `json:"rowErrors,omitempty"`
}

// ImportResultResponse summarises a best-effort submission run
type ImportResultResponse struct {
	Submitted int        `json:"submitted"`
	Failed    int        `json:"failed"`
	Errors    []RowError `json:"errors,omitempty"`
}
