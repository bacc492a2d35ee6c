package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // stable code returned to API clients
	Fields    map[string]string // per-field validation errors (optional)
	Err       error             // internal cause, logged only
}
