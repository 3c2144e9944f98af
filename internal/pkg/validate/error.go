package validate

// FieldsError carries per-field validation messages keyed by json name.
type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(fields map[string]string) *FieldsError {
	return &FieldsError{Fields: fields}
}

func (f *FieldsError) Error() string {
	return "request validation failed"
}
