package pdfcheck

// Result describes a checked PDF file
type Result struct {
	// Path of the checked file
	Path string `json:"path"`

	// Valid is true only if the file parsed and passed validation
	Valid bool `json:"valid"`

	// Pages in the document, zero when unreadable
	Pages int `json:"pages"`

	// Size in bytes
	Size int64 `json:"size"`

	// Errors (reasons for invalid result)
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates an empty result for path
func NewResult(path string) *Result {
	return &Result{
		Path:   path,
		Errors: make([]string, 0),
	}
}

// AddError appends an error and marks the result invalid
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}
