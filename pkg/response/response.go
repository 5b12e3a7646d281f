package response

// Body is the structured error envelope returned by middleware and the
// central error handler.
type Body struct {
	Status  string      `json:"status"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Error(code, message string, details interface{}) Body {
	return Body{
		Status:  "error",
		Code:    code,
		Message: message,
		Details: details,
	}
}
