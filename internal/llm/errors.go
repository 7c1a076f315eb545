package llm

import "errors"

var (
	// ErrQuotaExhausted indicates the provider rejected the call for rate
	// or quota reasons. Retrying immediately will not help.
	ErrQuotaExhausted = errors.New("provider quota exhausted")

	// ErrUnavailable indicates a provider failure other than quota:
	// network errors, 5xx responses, malformed provider replies.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrTimeout indicates the call exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")
)

// errorCode maps an error to the short code recorded on call events.
func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrQuotaExhausted):
		return "QUOTA"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
