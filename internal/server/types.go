package server

// ValidationIssue is one finding from graph validation, addressed by the
// field path inside the submitted document.
type ValidationIssue struct {
	Kind    string `json:"kind"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// ValidationResponse is the response for the validate endpoint
type ValidationResponse struct {
	Valid   bool              `json:"valid"`
	Profile string            `json:"profile"`
	Issues  []ValidationIssue `json:"issues,omitempty"`
}

// SchemaIssue is one XSD violation with its source location.
type SchemaIssue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// SchemaValidationResponse is the response for the schema validate endpoint
type SchemaValidationResponse struct {
	Valid   bool          `json:"valid"`
	Profile string        `json:"profile"`
	Issues  []SchemaIssue `json:"issues,omitempty"`
}

// ProfileInfo describes one supported compliance profile
type ProfileInfo struct {
	Name string `json:"name"`
	URN  string `json:"urn"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
