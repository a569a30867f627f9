package codec

// Errors
var (
	ErrInsufficientData = &CodecError{"insufficient data"}
	ErrFieldOverflow    = &CodecError{"value does not fit field"}
)

// CodecError represents a field codec error
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}
