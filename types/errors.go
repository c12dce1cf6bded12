package types

// Error is the error type returned by paykit decode and validation entry
// points.
type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// Common error codes
const (
	// ErrMissingDiscriminator marks a wire object whose "type" field is
	// absent or not a string.
	ErrMissingDiscriminator = "MISSING_DISCRIMINATOR"

	// ErrInvalidPayload marks a recognized payload variant whose required
	// fields are missing or malformed.
	ErrInvalidPayload = "INVALID_PAYLOAD"

	// ErrInvalidCapability marks a capability response that is not decodable.
	ErrInvalidCapability = "INVALID_CAPABILITY"

	// ErrInvalidCard marks a card tokenization payload that failed
	// validation.
	ErrInvalidCard = "INVALID_CARD"

	// ErrConfig marks a defect in the static tables the SDK was built with.
	ErrConfig = "CONFIG_ERROR"
)
