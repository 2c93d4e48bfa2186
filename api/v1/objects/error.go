package objects

const (
	ErrorTypeInternal   = "internal"
	ErrorTypeValidation = "validation"
	ErrorTypeNotFound   = "not_found"
)

type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.Type
	}

	return e.Type + ": " + e.Message
}
