package zerror

// Status classifies a ZError independently of any transport.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusNotFound
	StatusUnprocessableEntity
	StatusValidationFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusUnprocessableEntity:
		return "UNPROCESSABLE_ENTITY"
	case StatusValidationFailed:
		return "VALIDATION_FAILED"
	default:
		return "UNKNOWN"
	}
}
