package envsub

import (
	"errors"
	"fmt"
)

// ErrInvalidSyntax reports an env!( marker with no closing parenthesis before
// the end of the string.
var ErrInvalidSyntax = errors.New("invalid env!() syntax")

// NotFoundError reports a placeholder naming a variable absent from the
// environment snapshot.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("env %s not found", e.Name)
}

// LimitError reports a string whose placeholders kept expanding past the
// substitution cap.
type LimitError struct {
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("env substitution did not settle after %d replacements", e.Limit)
}
