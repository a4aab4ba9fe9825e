package services

// ServiceError carries the HTTP status a controller should respond with.
// Messages are plain text; no structured error body is surfaced to callers.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
