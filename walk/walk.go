package walk

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strconv"

	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/pathmatch"
)

const (
	// ErrDepthExceeded is returned when a walk descends past its configured ceiling.
	ErrDepthExceeded = errors.Error("maximum walk depth exceeded")
	// ErrTerminate can be returned by callers to signal they stopped iterating on purpose.
	ErrTerminate = errors.Error("terminate")
)

// DefaultMaxDepth is the descent ceiling used when no option overrides it.
const DefaultMaxDepth = 512

// Item is a single value visited by Walk.
type Item struct {
	// Path is the dot delimited, escaped path of the value, for example spec.channels.a.messages.m.
	Path string
	// Value is the visited value.
	Value any
	// Depth is the number of descents from the root.
	Depth int
}

// Option configures a walk.
type Option func(*config)

type config struct {
	maxDepth int
}

// WithMaxDepth overrides the descent ceiling. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// Walk returns an iterator over every non-nil value reachable from root, in declaration order.
//
// Unions holding a reference are yielded but not descended. Unions holding an object are yielded and then the object
// is walked at the same path. Lists append [index] to the path, mappings append the escaped key and records append
// the field Name. A value already being walked further up the current branch is skipped so cyclic object graphs
// terminate. Descending past the maximum depth yields ErrDepthExceeded and ends the walk.
func Walk(root any, rootPath string, opts ...Option) iter.Seq2[Item, error] {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(Item, error) bool) {
		w := &walker{
			yield:    yield,
			maxDepth: cfg.maxDepth,
			active:   make(map[identity]struct{}),
		}
		w.visit(rootPath, root, 0)
	}
}

type identity struct {
	typ reflect.Type
	ptr uintptr
}

type walker struct {
	yield    func(Item, error) bool
	maxDepth int
	active   map[identity]struct{}
}

func (w *walker) visit(path string, v any, depth int) bool {
	if IsNil(v) {
		return true
	}

	if depth > w.maxDepth {
		w.yield(Item{Path: path, Value: v, Depth: depth}, ErrDepthExceeded.Wrapf("%s is deeper than %d", path, w.maxDepth))
		return false
	}

	if id, ok := identityOf(v); ok {
		if _, seen := w.active[id]; seen {
			return true
		}
		w.active[id] = struct{}{}
		defer delete(w.active, id)
	}

	if !w.yield(Item{Path: path, Value: v, Depth: depth}, nil) {
		return false
	}

	switch n := v.(type) {
	case Union:
		if n.IsReference() {
			return true
		}
		return w.visit(path, n.GetObjectAny(), depth+1)
	case List:
		for i, child := range n {
			if !w.visit(path+"["+strconv.Itoa(i)+"]", child, depth+1) {
				return false
			}
		}
	case Mapping:
		for key, child := range n.AllUntyped() {
			if !w.visit(pathmatch.Join(path, fmt.Sprint(key)), child, depth+1) {
				return false
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(n))
		for key := range n {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			if !w.visit(pathmatch.Join(path, key), n[key], depth+1) {
				return false
			}
		}
	case []any:
		for i, child := range n {
			if !w.visit(path+"["+strconv.Itoa(i)+"]", child, depth+1) {
				return false
			}
		}
	case Node:
		for _, f := range n.Fields() {
			if f.Value == nil {
				continue
			}
			if !w.visit(path+"."+f.Name, f.Value, depth+1) {
				return false
			}
		}
	}

	return true
}

func identityOf(v any) (identity, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		return identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	default:
		return identity{}, false
	}
}
