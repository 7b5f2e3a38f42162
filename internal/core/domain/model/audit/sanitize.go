package audit

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// maxDepth bounds nesting.
	maxDepth = 32
	// maxNodes bounds the total work for one call, so shared substructure
	// cannot blow up the walk even when nothing is cyclic.
	maxNodes = 10_000
)

// Sanitize converts any Go value into a Value tree:
//   - nil, booleans, numbers and strings pass through
//   - named basic types (enumerations such as line.Status) become their underlying value
//   - time.Time becomes an RFC 3339 string
//   - identifiers and other text marshalers become their canonical text
//   - maps, slices, arrays and pointers recurse
//   - structs become a map of their exported fields, keyed by json tag when present
//   - anything else becomes its fmt representation
//
// A part that panics while being converted, that refers back to a map, slice or
// pointer already being converted, that nests deeper than maxDepth or that is
// reached after maxNodes conversions becomes null. A Value passes through
// unchanged, which makes Sanitize idempotent.
func Sanitize(v any) (out Value) {
	defer func() {
		if r := recover(); r != nil {
			out = Null()
		}
	}()

	w := &walker{onPath: make(map[visit]struct{})}
	return w.sanitize(v, 0)
}

// visit identifies a reference on the current recursion path.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

type walker struct {
	onPath map[visit]struct{}
	nodes  int
}

func (w *walker) sanitize(v any, depth int) Value {
	w.nodes++
	if depth > maxDepth || w.nodes > maxNodes {
		return Null()
	}

	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case *Value:
		if x == nil {
			return Null()
		}
		return *x
	case json.Number:
		if !isJSONNumber(x) {
			return String(string(x))
		}
		return Number(x)
	case time.Time:
		return String(x.Format(time.RFC3339Nano))
	case time.Duration:
		return String(x.String())
	case uuid.UUID:
		return String(x.String())
	case []byte:
		return String(base64.StdEncoding.EncodeToString(x))
	case error:
		return safely(func() Value { return String(x.Error()) })
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // remaining kinds fall back to text
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(json.Number(strconv.FormatInt(rv.Int(), 10)))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(json.Number(strconv.FormatUint(rv.Uint(), 10)))
	case reflect.Float32, reflect.Float64:
		return sanitizeFloat(rv.Float(), rv.Type().Bits())
	case reflect.String:
		return String(rv.String())
	case reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return w.sanitize(rv.Elem().Interface(), depth+1)
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		if text, ok := asText(v); ok {
			return text
		}
		leave, ok := w.enter(rv)
		if !ok {
			return Null()
		}
		defer leave()
		return w.sanitize(rv.Elem().Interface(), depth+1)
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		leave, ok := w.enter(rv)
		if !ok {
			return Null()
		}
		defer leave()
		fields := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			fields[mapKey(iter.Key())] = w.sanitize(iter.Value().Interface(), depth+1)
		}
		return Value{kind: KindMap, m: fields}
	case reflect.Slice, reflect.Array:
		if text, ok := asText(v); ok {
			return text
		}
		if rv.Kind() == reflect.Slice {
			if rv.IsNil() {
				return Null()
			}
			leave, ok := w.enter(rv)
			if !ok {
				return Null()
			}
			defer leave()
		}
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = w.sanitize(rv.Index(i).Interface(), depth+1)
		}
		return Value{kind: KindList, list: items}
	case reflect.Struct:
		if text, ok := asText(v); ok {
			return text
		}
		return w.sanitizeStruct(rv, depth)
	}

	return safely(func() Value { return String(fmt.Sprint(v)) })
}

// enter marks rv as being converted. ok is false when rv is already on the path.
func (w *walker) enter(rv reflect.Value) (leave func(), ok bool) {
	if rv.Kind() == reflect.Slice && rv.Len() == 0 {
		return func() {}, true
	}

	key := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if _, seen := w.onPath[key]; seen {
		return nil, false
	}

	w.onPath[key] = struct{}{}
	return func() { delete(w.onPath, key) }, true
}

func (w *walker) sanitizeStruct(rv reflect.Value, depth int) Value {
	t := rv.Type()
	fields := make(map[string]Value, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := f.Name
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == "-" {
			continue
		} else if tag != "" {
			name = tag
		}

		fields[name] = w.sanitize(rv.Field(i).Interface(), depth+1)
	}
	return Value{kind: KindMap, m: fields}
}

func isJSONNumber(n json.Number) bool {
	if n == "" || (n[0] != '-' && (n[0] < '0' || n[0] > '9')) {
		return false
	}
	return json.Valid([]byte(n))
}

func sanitizeFloat(f float64, bits int) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return String(strconv.FormatFloat(f, 'g', -1, bits))
	}
	return Number(json.Number(strconv.FormatFloat(f, 'g', -1, bits)))
}

// asText handles encoding.TextMarshaler and fmt.Stringer.
func asText(v any) (Value, bool) {
	switch x := v.(type) {
	case encoding.TextMarshaler:
		return safely(func() Value {
			raw, err := x.MarshalText()
			if err != nil {
				return Null()
			}
			return String(string(raw))
		}), true
	case fmt.Stringer:
		return safely(func() Value { return String(x.String()) }), true
	default:
		return Null(), false
	}
}

// mapKey renders a map key as the string form of its sanitized value.
func mapKey(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}

	k := Sanitize(key.Interface())
	switch k.Kind() { //nolint:exhaustive // keys are scalars in practice
	case KindString:
		return k.s
	case KindNumber:
		return k.n.String()
	case KindBool:
		return strconv.FormatBool(k.b)
	case KindNull:
		return "null"
	default:
		raw, err := k.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

func safely(fn func() Value) (out Value) {
	defer func() {
		if r := recover(); r != nil {
			out = Null()
		}
	}()
	return fn()
}
