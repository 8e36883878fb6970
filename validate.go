package mkd

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

// Documents shorter than binarySampleSize are only rejected for NUL bytes.
const (
	binarySampleSize  = 64
	controlPercentMax = 2
)

// InputError locates the byte that made ValidateInput reject a document.
// Line is 1-based. Err is ErrInvalidUTF8 or ErrBinaryInput.
type InputError struct {
	Offset int
	Line   int
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("line %d (byte %d): %v", e.Line, e.Offset, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ValidateInput rejects Markdown source that cannot be text. It reports
// the first malformed UTF-8 sequence or NUL byte, and reports the first
// control character when control characters make up controlPercentMax
// percent or more of a document of at least binarySampleSize bytes. The
// returned error is an *InputError.
func ValidateInput(src []byte) error {
	line := 1
	control, firstControl, controlLine := 0, -1, 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			return &InputError{Offset: i, Line: line, Err: ErrInvalidUTF8}
		case r == 0:
			return &InputError{Offset: i, Line: line, Err: ErrBinaryInput}
		case r == '\n':
			line++
		case isControlRune(r):
			if firstControl < 0 {
				firstControl, controlLine = i, line
			}
			control++
		}
		i += size
	}
	if len(src) >= binarySampleSize && control*100 >= len(src)*controlPercentMax {
		return &InputError{Offset: firstControl, Line: controlLine, Err: ErrBinaryInput}
	}
	return nil
}

// isControlRune reports C0 controls other than the white space Markdown
// uses (tab, newline, vertical tab, form feed, carriage return) plus DEL.
func isControlRune(r rune) bool {
	return (r < 0x20 && (r < '\t' || r > '\r')) || r == 0x7F
}
