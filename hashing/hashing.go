// Package hashing derives content hashes for document values.
//
// Two values hash the same when they carry the same content, independent of the insertion order of their maps
// and the source positions of raw YAML nodes. Extensions are content: two objects differing only in an x- key
// or an untyped binding are different. Managers use it to decide whether an object being moved into components
// is a duplicate of the entry already stored there, so the encoding is unambiguous: strings are quoted and
// every composite is delimited.
package hashing

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/speakeasy-api/asyncapi/internal/interfaces"
	"gopkg.in/yaml.v3"
)

// Hash returns the fnv64a hash of the canonical form of v as 16 hex digits.
func Hash(v any) string {
	h := fnv.New64a()
	canonical(h, v)
	return fmt.Sprintf("%016x", h.Sum64())
}

// Equal reports whether a and b have the same canonical form.
func Equal(a, b any) bool {
	var left, right bytes.Buffer
	canonical(&left, a)
	canonical(&right, b)
	return bytes.Equal(left.Bytes(), right.Bytes())
}

func canonical(w io.Writer, v any) {
	encoder{w: w}.value(reflect.ValueOf(v))
}

// text renders the canonical form of v in memory. Empty means v carries no content.
func text(v reflect.Value) string {
	var sb strings.Builder
	encoder{w: &sb}.value(v)
	return sb.String()
}

var (
	nodeType      = reflect.TypeFor[yaml.Node]()
	orderedMapTyp = reflect.TypeFor[interfaces.OrderedMap]()
)

type encoder struct {
	w io.Writer
}

func (e encoder) write(s string) {
	_, _ = io.WriteString(e.w, s)
}

func (e encoder) value(v reflect.Value) {
	if !v.IsValid() {
		return
	}

	switch {
	case v.Type() == nodeType:
		n := v.Interface().(yaml.Node)
		e.node(&n)
		return
	case v.Kind() == reflect.Pointer && v.Type().Elem() == nodeType:
		e.node(v.Interface().(*yaml.Node))
		return
	case v.Kind() != reflect.Interface && v.CanInterface() && interfaces.Satisfies(v.Type(), orderedMapTyp):
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return
		}
		e.orderedMap(v.Interface().(interfaces.OrderedMap))
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			e.value(v.Elem())
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			e.write("[")
			e.value(v.Index(i))
			e.write("]")
		}
	case reflect.Map:
		entries := make([]entry, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entries = append(entries, entry{key: text(iter.Key()), value: iter.Value()})
		}
		e.entries(entries)
	case reflect.Struct:
		e.fields(v)
	case reflect.String:
		e.scalar(v.String())
	case reflect.Bool:
		e.write(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.write(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.write(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		e.write(strconv.FormatFloat(v.Float(), 'f', -1, 64))
	default:
		if v.CanInterface() {
			e.scalar(fmt.Sprint(v.Interface()))
		}
	}
}

// scalar writes a string quoted so that its content can never be mistaken for a delimiter.
// The empty string carries no content and writes nothing.
func (e encoder) scalar(s string) {
	if s != "" {
		e.write(strconv.Quote(s))
	}
}

// fields writes the exported fields of a struct that carry content, by name.
func (e encoder) fields(v reflect.Value) {
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		content := text(v.Field(i))
		if content == "" {
			continue
		}

		e.write(f.Name)
		e.write("(")
		e.write(content)
		e.write(")")
	}
}

type entry struct {
	key   string
	value reflect.Value
}

func (e encoder) orderedMap(m interfaces.OrderedMap) {
	entries := make([]entry, 0, m.Len())
	for k, v := range m.AllUntyped() {
		entries = append(entries, entry{key: text(reflect.ValueOf(k)), value: reflect.ValueOf(v)})
	}
	e.entries(entries)
}

// entries writes key/value pairs sorted by key so that insertion order does not matter.
func (e encoder) entries(entries []entry) {
	if len(entries) == 0 {
		return
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	e.write("{")
	for _, en := range entries {
		e.write(en.key)
		e.write(":")
		e.value(en.value)
		e.write(";")
	}
	e.write("}")
}

// node writes the semantic content of a YAML node, leaving out line, column and style.
func (e encoder) node(n *yaml.Node) {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n == nil {
		return
	}

	e.write(strconv.Itoa(int(n.Kind)))
	e.write(strconv.Quote(n.ShortTag()))
	e.write(strconv.Quote(n.Value))
	if len(n.Content) == 0 {
		return
	}

	e.write("<")
	for _, child := range n.Content {
		e.node(child)
		e.write(",")
	}
	e.write(">")
}
