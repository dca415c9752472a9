package stats

import "fmt"

// InvalidInputError reports a violation of a test's input contract, such as
// mismatched sample sizes, non-finite values, or an out-of-range parameter.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Msg
}

// Invalidf returns an *InvalidInputError with a formatted message.
func Invalidf(format string, args ...interface{}) error {
	return &InvalidInputError{Msg: fmt.Sprintf(format, args...)}
}
