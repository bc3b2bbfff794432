package errs

// Category markers shared by the usecase layers. Usecase sentinels are marked with one of
// these so the HTTP edge can pick a status code without knowing every sentinel.
var (
	ErrValidation  = New("validation error")
	ErrNotFound    = New("not found")
	ErrConflict    = New("conflict")
	ErrUnavailable = New("dependency unavailable")
)

// FieldError carries a field-level validation message to the caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Invalid builds a FieldError marked as ErrValidation.
func Invalid(field, message string) error {
	return Mark(&FieldError{Field: field, Message: message}, ErrValidation)
}
