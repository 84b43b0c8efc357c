package resume

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither PDF nor DOCX
	ErrUnsupportedFormat = errors.New("unsupported file format, please upload PDF or DOCX files only")
	// ErrInsufficientText is returned when the decoded document is too short to parse
	ErrInsufficientText = errors.New("could not extract meaningful text from resume, please check the file")
)

// ParseError is returned for every resume that cannot be parsed because of its
// content. It is always a client error.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Message == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is, or wraps, a *ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
