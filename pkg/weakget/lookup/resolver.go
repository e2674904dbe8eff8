package lookup

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Attributer lets a type answer attribute lookups itself.
type Attributer interface {
	LookupAttr(name string) (any, bool)
}

// Itemer lets a type answer item lookups itself.
type Itemer interface {
	LookupItem(key any) (any, bool)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithJSONTags makes Attr also match struct fields by their json tag name.
func WithJSONTags() Option {
	return func(r *Resolver) {
		r.jsonTags = true
	}
}

// WithFoldCase makes attribute names match case-insensitively.
func WithFoldCase() Option {
	return func(r *Resolver) {
		r.foldCase = true
	}
}

// WithMapKeys makes Attr fall back to string keys of maps, which suits
// decoded JSON and YAML documents.
func WithMapKeys() Option {
	return func(r *Resolver) {
		r.mapKeys = true
	}
}

// Resolver performs dynamic attribute, item and call operations on
// arbitrary values. A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	jsonTags bool
	foldCase bool
	mapKeys  bool
}

// New returns a Resolver with opts applied.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default resolves exact Go names only.
var Default = New()

// Attr is Default.Attr.
func Attr(v any, name string) (any, error) {
	return Default.Attr(v, name)
}

// Item is Default.Item.
func Item(v any, key any) (any, error) {
	return Default.Item(v, key)
}

// Call is Default.Call.
func Call(v any, args ...any) (any, error) {
	return Default.Call(v, args...)
}

// Attr returns the attribute name of v: a LookupAttr answer, a bound
// exported method, an exported struct field or, with WithMapKeys, a map entry.
func (r *Resolver) Attr(v any, name string) (any, error) {
	if IsEmpty(v) {
		return nil, errors.Wrapf(ErrMissingAttribute, "%q on empty value", name)
	}

	if a, ok := v.(Attributer); ok {
		if out, found := a.LookupAttr(name); found {
			return out, nil
		}
		return nil, errors.Wrapf(ErrMissingAttribute, "%q on %T", name, v)
	}

	rv := reflect.ValueOf(v)
	if m, ok := r.method(rv, name); ok {
		return m.Interface(), nil
	}
	if f, ok := r.field(rv, name); ok {
		return f.Interface(), nil
	}
	if e, ok := r.mapKey(rv, name); ok {
		return e.Interface(), nil
	}
	return nil, errors.Wrapf(ErrMissingAttribute, "%q on %T", name, v)
}

func (r *Resolver) method(rv reflect.Value, name string) (reflect.Value, bool) {
	if m, ok := r.methodOf(rv, name); ok {
		return m, true
	}
	if rv.Kind() == reflect.Ptr {
		return reflect.Value{}, false
	}
	// pointer receiver methods are bound to a private copy
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return r.methodOf(p, name)
}

func (r *Resolver) methodOf(rv reflect.Value, name string) (reflect.Value, bool) {
	if !r.foldCase {
		m := rv.MethodByName(name)
		return m, m.IsValid()
	}
	t := rv.Type()
	for i := 0; i < t.NumMethod(); i++ {
		if strings.EqualFold(t.Method(i).Name, name) {
			return rv.Method(i), true
		}
	}
	return reflect.Value{}, false
}

func (r *Resolver) field(rv reflect.Value, name string) (reflect.Value, bool) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	t := rv.Type()
	index, ok := r.fieldIndex(t, name)
	if !ok {
		return reflect.Value{}, false
	}
	f, err := rv.FieldByIndexErr(index)
	if err != nil {
		// promoted through a nil embedded pointer
		return reflect.Value{}, false
	}
	return f, true
}

func (r *Resolver) mapKey(rv reflect.Value, name string) (reflect.Value, bool) {
	if !r.mapKeys {
		return reflect.Value{}, false
	}
	rv = indirect(rv)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, false
	}
	if e := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key())); e.IsValid() {
		return e, true
	}
	if r.foldCase {
		iter := rv.MapRange()
		for iter.Next() {
			if strings.EqualFold(iter.Key().String(), name) {
				return iter.Value(), true
			}
		}
	}
	return reflect.Value{}, false
}

func (r *Resolver) fieldIndex(t reflect.Type, name string) ([]int, bool) {
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		return sf.Index, true
	}
	if !r.foldCase && !r.jsonTags {
		return nil, false
	}

	var best []int
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || !r.fieldMatches(sf, name) {
			continue
		}
		if best == nil || len(sf.Index) < len(best) {
			best = sf.Index
		}
	}
	return best, best != nil
}

func (r *Resolver) fieldMatches(sf reflect.StructField, name string) bool {
	if r.nameEqual(sf.Name, name) {
		return true
	}
	if !r.jsonTags {
		return false
	}
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return false
	}
	tagName, _, _ := strings.Cut(tag, ",")
	return tagName != "" && tagName != "-" && r.nameEqual(tagName, name)
}

func (r *Resolver) nameEqual(a, b string) bool {
	if r.foldCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}
