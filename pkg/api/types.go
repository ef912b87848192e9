// Shared request and response types for the book API.

package api

// ErrorResponse is the JSON body returned for all error statuses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime int    `json:"uptime"`
}

// StatusResponse is the response for GET /status.
type StatusResponse struct {
	Status    string `json:"status"`
	Port      int    `json:"port"`
	Uptime    int    `json:"uptime"`
	BookCount int    `json:"bookCount"`
	Version   string `json:"version"`
}

// ResetResponse is the response for POST /state/reset.
type ResetResponse struct {
	Reset     bool   `json:"reset"`
	BookCount int    `json:"bookCount"`
	Message   string `json:"message"`
}

// CreateBookRequest is the request body for creating a book. Title and
// author are required; year is optional.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year,omitempty"`
}

// missingFields returns the names of required fields that are empty.
func (r *CreateBookRequest) missingFields() []string {
	var missing []string
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.Author == "" {
		missing = append(missing, "author")
	}
	return missing
}

// UpdateBookRequest is the request body for updating a book. All fields
// are optional; absent fields keep their current values. A field set to
// an explicit empty string is treated as supplied and overwrites.
type UpdateBookRequest struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	Year   *int    `json:"year,omitempty"`
}
