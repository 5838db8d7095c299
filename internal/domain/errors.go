package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type LoadErrorKind int

const (
	FetchFailed LoadErrorKind = iota + 1
	ParseFailed
)

func (k LoadErrorKind) String() string {
	switch k {
	case FetchFailed:
		return "fetch_failed"
	case ParseFailed:
		return "parse_failed"
	default:
		return "unknown"
	}
}

// LoadError is the only failure a catalog load reports.
type LoadError struct {
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog load: %s: %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadErrorKindOf returns the kind of a wrapped *LoadError, or 0.
func LoadErrorKindOf(err error) LoadErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return 0
}
