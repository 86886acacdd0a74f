package jsnot

import (
	"fmt"
	"github.com/mattfenwick/collections/pkg/slice"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"strconv"
)

// Wrapper is a read-only view over a decoded document value: nil, bool,
// numbers, strings, []interface{} or map[string]interface{}.  It adds
// path-based navigation, default-valued lookup, presence checks, kind checks
// and kind casts on top of whatever a decoder produced.  No operation ever
// mutates the wrapped value.
type Wrapper struct {
	value interface{}
}

// Wrap wraps any value.  No validation is performed: wrapping a value outside
// the decoded-document model succeeds, it just satisfies and casts to nothing.
func Wrap(value interface{}) *Wrapper {
	return &Wrapper{value: value}
}

// Value returns the raw wrapped value.
func (w *Wrapper) Value() interface{} {
	return w.value
}

func (w *Wrapper) Kind() Kind {
	return KindOf(w.value)
}

// AtPath walks the wrapped value along a backslash-separated path and returns
// a new Wrapper around the value at the end of the walk.  The empty path
// returns a wrapper around the same value.  Returns a PathNotFoundError when
// a segment cannot be resolved.
func (w *Wrapper) AtPath(path string) (*Wrapper, error) {
	return w.AtSegments(ParsePath(path))
}

// AtSegments is AtPath for an already-split path.
func (w *Wrapper) AtSegments(segments []string) (*Wrapper, error) {
	current := w.value
	for i, segment := range segments {
		switch obj := current.(type) {
		case map[string]interface{}:
			child, ok := obj[segment]
			if !ok {
				return nil, &PathNotFoundError{Segments: segments, Index: i}
			}
			current = child
		case []interface{}:
			index64, err := strconv.ParseInt(segment, 10, 32)
			if err != nil {
				return nil, &PathNotFoundError{Segments: segments, Index: i}
			}
			index := int(index64)
			if index < 0 || index >= len(obj) {
				return nil, &PathNotFoundError{Segments: segments, Index: i}
			}
			current = obj[index]
		default:
			return nil, &PathNotFoundError{Segments: segments, Index: i}
		}
	}
	return Wrap(current), nil
}

// Get returns the raw value at path, or defaultValue if any segment of the
// walk fails to resolve.  It never returns an error.
func (w *Wrapper) Get(path string, defaultValue interface{}) interface{} {
	found, err := w.AtPath(path)
	if err != nil {
		return defaultValue
	}
	return found.value
}

// Has reports whether a value exists at path.
func (w *Wrapper) Has(path string) bool {
	_, err := w.AtPath(path)
	return err == nil
}

// Satisfy reports whether the wrapped value's kind is one of the given kinds.
func (w *Wrapper) Satisfy(kinds ...Kind) bool {
	kind := w.Kind()
	for _, candidate := range kinds {
		if kind == candidate {
			return true
		}
	}
	return false
}

// Index is sugar over AtPath for chained lookups: a missing path yields a
// wrapper around nil so that further Index calls stay total.  Use AtPath or
// Has to distinguish an absent value from a null one.
func (w *Wrapper) Index(path string) *Wrapper {
	found, err := w.AtPath(path)
	if err != nil {
		return Wrap(nil)
	}
	return found
}

// Keys returns the sorted keys of an object value.
func (w *Wrapper) Keys() ([]string, error) {
	obj, ok := w.value.(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("unable to list keys of %s value", w.Kind())
	}
	return slice.Sort(maps.Keys(obj)), nil
}

// Length returns the number of elements of an array or object, or the byte
// length of a string.
func (w *Wrapper) Length() (int, error) {
	switch obj := w.value.(type) {
	case string:
		return len(obj), nil
	case []interface{}:
		return len(obj), nil
	case map[string]interface{}:
		return len(obj), nil
	default:
		return 0, errors.Errorf("unable to measure length of %s value", w.Kind())
	}
}

func (w *Wrapper) String() string {
	return fmt.Sprintf("%+v", w.value)
}
