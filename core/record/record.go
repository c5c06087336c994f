package record

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"lead-consolidator/core/utils"
)

// Record is an ordered, mutable mapping of field names to values.
// The zero value is an empty record ready to use.
type Record struct {
	fields []string
	values map[string]any
}

// New creates an empty record.
func New() *Record {
	return &Record{values: make(map[string]any)}
}

// FromPairs builds a record from alternating field names and values,
// keeping the given order. It panics if pairs has odd length or a name is
// not a string.
func FromPairs(pairs ...any) *Record {
	if len(pairs)%2 != 0 {
		panic("record: FromPairs needs an even number of arguments")
	}
	r := New()
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("record: field name at position %d is %T, not string", i, pairs[i]))
		}
		r.Set(name, pairs[i+1])
	}
	return r
}

// Get returns the value of a field and whether the field is present.
func (r *Record) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Has reports whether the field is present. A field holding null is present.
func (r *Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Set assigns a field. New fields are appended to the field order.
func (r *Record) Set(field string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

// Fields returns the field names in order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Map returns a copy of the record as a plain map.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		out[f] = r.values[f]
	}
	return out
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := &Record{
		fields: make([]string, len(r.fields)),
		values: make(map[string]any, len(r.values)),
	}
	copy(c.fields, r.fields)
	for k, v := range r.values {
		c.values[k] = cloneValue(v)
	}
	return c
}

// Equal reports whether both records hold the same fields, in the same
// order, with the same values.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if len(r.fields) != len(o.fields) {
		return false
	}
	for i, f := range r.fields {
		if o.fields[i] != f {
			return false
		}
		if !SameValue(r.values[f], o.values[f]) {
			return false
		}
	}
	return true
}

// Key returns the identifying-key value stored under field.
func (r *Record) Key(field string) KeyValue {
	v, ok := r.values[field]
	if !ok {
		return KeyValue{missing: true, canonical: missingCanonical}
	}
	return KeyValue{Raw: v, canonical: canonical(v)}
}

// Timestamp returns the timestamp stored under field.
func (r *Record) Timestamp(field string) Timestamp {
	v, ok := r.values[field]
	if !ok {
		return Timestamp{}
	}
	t, valid := utils.ToTime(v)
	return Timestamp{Raw: v, Time: t, Valid: valid, Present: true}
}

const missingCanonical = "<missing>"

// KeyValue is the value of an identifying key on one record.
type KeyValue struct {
	// Raw is the decoded value; nil for a missing field or a JSON null.
	Raw any

	canonical string
	missing   bool
}

// Missing reports whether the record lacks the key field entirely.
func (k KeyValue) Missing() bool {
	return k.missing
}

// Canonical returns the bucketing form of the value: its JSON encoding, so
// the number 1 and the string "1" are different values.
func (k KeyValue) Canonical() string {
	if k.canonical == "" {
		return canonical(k.Raw)
	}
	return k.canonical
}

// String returns a human readable form of the value for logs and reports.
func (k KeyValue) String() string {
	if k.missing {
		return missingCanonical
	}
	return utils.ToString(k.Raw)
}

// Timestamp is the value of the timestamp field on one record.
type Timestamp struct {
	// Raw is the decoded value as stored on the record.
	Raw any
	// Time is the parsed instant; only meaningful when Valid is true.
	Time time.Time
	// Valid reports whether Raw parsed as a timestamp.
	Valid bool
	// Present reports whether the record has the field at all.
	Present bool
}

// String returns the raw textual form of the timestamp.
func (t Timestamp) String() string {
	if !t.Present {
		return ""
	}
	return utils.ToString(t.Raw)
}

// SameValue reports whether two decoded values are equal. Values are
// compared by their JSON encoding, so json.Number("1") equals float64(1).
func SameValue(a, b any) bool {
	ab, errA := json.Marshal(plainValue(a))
	bb, errB := json.Marshal(plainValue(b))
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return string(ab) == string(bb)
}

func canonical(v any) string {
	b, err := json.Marshal(plainValue(v))
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(b)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}

// numberValue normalises a decoded JSON number. Integers keep every digit:
// int64 or uint64 when they fit (the types the YAML decoder produces), and
// a json.Number in base-10 form otherwise. Non-integers become float64.
func numberValue(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u
	}
	if bi, ok := new(big.Int).SetString(n.String(), 10); ok {
		return json.Number(bi.String())
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// plainValue converts json.Number leaves to exact integers or float64 and YAML maps
// with non-string keys to string-keyed maps, so values from either decoder
// encode the same way.
func plainValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		return numberValue(t)
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = plainValue(e)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[utils.ToString(k)] = plainValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = plainValue(e)
		}
		return s
	default:
		return v
	}
}
