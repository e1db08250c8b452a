package generation

import (
	"errors"
	"fmt"
)

// Kind classifies why a generation failed
type Kind string

const (
	// KindConfiguration means no generation can be attempted until the configuration is fixed
	KindConfiguration Kind = "configuration"
	// KindBackend means the exchange with the backend failed or was rejected
	KindBackend Kind = "backend"
	// KindNoResponse means the backend answered without a text payload
	KindNoResponse Kind = "no_response"
	// KindResponseShape means the payload was not valid JSON of the declared shape
	KindResponseShape Kind = "response_shape"
)

// ErrNoResponse is wrapped by KindNoResponse errors
var ErrNoResponse = errors.New("no response received from the generation backend")

// Error is returned by every failed generation
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a generation error, or KindBackend for any other error
func KindOf(err error) Kind {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindBackend
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
