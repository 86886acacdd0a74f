package jsnot

import (
	"github.com/bigrep/jsnot/pkg/utils"
	"github.com/mattfenwick/collections/pkg/slice"
	"golang.org/x/exp/maps"
	"strconv"
)

// PathValue pairs a leaf value with the segments leading to it.
type PathValue struct {
	Segments []string
	Value    interface{}
}

func (p *PathValue) Path() string {
	return JoinPath(p.Segments)
}

// Enumerate walks the wrapped value depth-first and returns every leaf --
// scalars, plus empty arrays and objects -- together with its path.  Object
// keys are visited in sorted order, so the output is deterministic.
func (w *Wrapper) Enumerate() []*PathValue {
	return enumerate(w.value, nil)
}

func enumerate(value interface{}, context []string) []*PathValue {
	switch obj := value.(type) {
	case map[string]interface{}:
		if len(obj) == 0 {
			return []*PathValue{leaf(value, context)}
		}
		var results []*PathValue
		for _, key := range slice.Sort(maps.Keys(obj)) {
			results = append(results, enumerate(obj[key], append(context, key))...)
		}
		return results
	case []interface{}:
		if len(obj) == 0 {
			return []*PathValue{leaf(value, context)}
		}
		var results []*PathValue
		for i, element := range obj {
			results = append(results, enumerate(element, append(context, strconv.Itoa(i)))...)
		}
		return results
	default:
		return []*PathValue{leaf(value, context)}
	}
}

// leaf copies the context so that later appends to a shared backing array
// cannot clobber a stored path.
func leaf(value interface{}, context []string) *PathValue {
	return &PathValue{Segments: utils.CopySlice(context), Value: value}
}
