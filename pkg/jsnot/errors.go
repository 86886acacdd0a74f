package jsnot

import (
	"fmt"
	"github.com/pkg/errors"
)

// PathNotFoundError reports the first segment of a path that could not be
// resolved: a key absent from an object, a bad or out-of-range array index,
// or an attempt to index into a scalar.
type PathNotFoundError struct {
	Segments []string
	Index    int
}

func (p *PathNotFoundError) Error() string {
	return fmt.Sprintf("unable to resolve segment %q (#%d of path %q)", p.Segments[p.Index], p.Index, JoinPath(p.Segments))
}

func IsPathNotFound(err error) bool {
	var pathNotFound *PathNotFoundError
	return errors.As(err, &pathNotFound)
}

// CastError reports a value that has no conversion to the requested kind.
type CastError struct {
	Target Kind
	Value  interface{}
}

func (c *CastError) Error() string {
	return fmt.Sprintf("unable to cast %T value to %s", c.Value, c.Target)
}

func IsCastError(err error) bool {
	var castError *CastError
	return errors.As(err, &castError)
}
