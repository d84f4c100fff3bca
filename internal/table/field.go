package table

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
)

// Kind is the semantic type of a field. It decides how values are compared
// and how they are rendered for search.
type Kind int

const (
	Text Kind = iota
	Number
	Timestamp
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Timestamp:
		return "timestamp"
	default:
		return "text"
	}
}

var (
	ErrNoFields        = errors.New("schema has no fields")
	ErrDuplicateField  = errors.New("duplicate field name")
	ErrMissingAccessor = errors.New("field has no accessor")
	ErrUnknownDefault  = errors.New("default sort key is not a schema field")
)

type numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Field is a named, typed column of R.
type Field[R any] struct {
	Name       string
	Label      string
	Kind       Kind
	Searchable bool

	compare  func(a, b R) int
	format   func(R) string
	text     func(R) string
	dateOnly bool
}

// NumberField compares and renders values in their own type, so integer
// ids keep full precision.
func NumberField[R any, N numeric](name, label string, get func(R) N) Field[R] {
	return Field[R]{
		Name:       name,
		Label:      label,
		Kind:       Number,
		Searchable: true,
		compare:    func(a, b R) int { return cmp.Compare(get(a), get(b)) },
		format:     func(r R) string { return formatNumber(get(r)) },
	}
}

func formatNumber[N numeric](n N) string {
	switch {
	case N(1)/2 != 0: // float kinds
		return strconv.FormatFloat(float64(n), 'f', -1, 64)
	case n < 0:
		return strconv.FormatInt(int64(n), 10)
	default:
		return strconv.FormatUint(uint64(n), 10)
	}
}

func TextField[R any](name, label string, get func(R) string) Field[R] {
	return Field[R]{Name: name, Label: label, Kind: Text, Searchable: true, text: get}
}

// TimestampField reads a stored date/time string. Values are compared by
// instant and rendered with the engine's time layout.
func TimestampField[R any](name, label string, get func(R) string) Field[R] {
	return Field[R]{Name: name, Label: label, Kind: Timestamp, Searchable: true, text: get}
}

// DateOnly renders a timestamp field with the engine's date layout.
// Comparison still uses the full instant.
func (f Field[R]) DateOnly() Field[R] {
	f.dateOnly = true
	return f
}

// Unsearchable excludes the field from free-text matching.
func (f Field[R]) Unsearchable() Field[R] {
	f.Searchable = false
	return f
}

// Schema is the ordered field table of one record shape.
type Schema[R any] struct {
	fields     []Field[R]
	index      map[string]int
	defaultKey string
}

func NewSchema[R any](defaultKey string, fields ...Field[R]) (*Schema[R], error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	s := &Schema[R]{
		fields:     make([]Field[R], 0, len(fields)),
		index:      make(map[string]int, len(fields)),
		defaultKey: defaultKey,
	}
	for _, f := range fields {
		if _, ok := s.index[f.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		if f.compare == nil && f.text == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingAccessor, f.Name)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	if _, ok := s.index[defaultKey]; defaultKey != "" && !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, defaultKey)
	}
	return s, nil
}

// MustSchema is NewSchema for package-level schema tables.
func MustSchema[R any](defaultKey string, fields ...Field[R]) *Schema[R] {
	s, err := NewSchema(defaultKey, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema[R]) Field(name string) (Field[R], bool) {
	i, ok := s.index[name]
	if !ok {
		return Field[R]{}, false
	}
	return s.fields[i], true
}

func (s *Schema[R]) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *Schema[R]) Fields() []Field[R] {
	out := make([]Field[R], len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Schema[R]) DefaultKey() string {
	return s.defaultKey
}
