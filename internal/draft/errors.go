package draft

// ValidationError is returned by Submit when the draft cannot become a project.
// The draft is left untouched so the user can correct it and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errTitleRequired() *ValidationError {
	return &ValidationError{Field: "title", Message: "title required"}
}
