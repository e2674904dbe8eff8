package lookup

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Item returns v[key]. Integer keys index strings (by rune), slices and
// arrays, negative keys counting from the end. Range keys slice them. Any
// other key is looked up in a map.
func (r *Resolver) Item(v any, key any) (any, error) {
	if IsEmpty(v) {
		return nil, errors.Wrapf(ErrNotIndexable, "%s on empty value", FormatKey(key))
	}

	if it, ok := v.(Itemer); ok {
		if out, found := it.LookupItem(key); found {
			return out, nil
		}
		return nil, errors.Wrapf(ErrMissingKey, "%s on %T", FormatKey(key), v)
	}

	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.String:
		return stringItem(rv.String(), key)
	case reflect.Slice, reflect.Array:
		return sequenceItem(rv, key)
	case reflect.Map:
		return mapItem(rv, key)
	}
	return nil, errors.Wrapf(ErrNotIndexable, "%T", v)
}

// stringItem indexes s by rune. Results are cut at rune byte offsets so
// invalid UTF-8 bytes survive unchanged, one byte per rune.
func stringItem(s string, key any) (any, error) {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	n := len(offsets)
	offsets = append(offsets, len(s))

	if rg, ok := key.(Range); ok {
		lo, hi := rg.bounds(n)
		return s[offsets[lo]:offsets[hi]], nil
	}
	i, err := position(key, n, "string")
	if err != nil {
		return nil, err
	}
	return s[offsets[i]:offsets[i+1]], nil
}

func sequenceItem(rv reflect.Value, key any) (any, error) {
	n := rv.Len()
	if rg, ok := key.(Range); ok {
		lo, hi := rg.bounds(n)
		out := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), hi-lo, hi-lo)
		for i := lo; i < hi; i++ {
			out.Index(i - lo).Set(rv.Index(i))
		}
		return out.Interface(), nil
	}
	i, err := position(key, n, rv.Type().String())
	if err != nil {
		return nil, err
	}
	return rv.Index(i).Interface(), nil
}

// position resolves an integer key against a sequence of length n.
func position(key any, n int, of string) (int, error) {
	k, ok := intKey(key)
	if !ok {
		return 0, errors.Wrapf(ErrKeyType, "%T index on %s", key, of)
	}
	i := k
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, errors.Wrapf(ErrMissingKey, "index %d out of range for %s of length %d", k, of, n)
	}
	return i, nil
}

func intKey(key any) (int, bool) {
	if key == nil {
		return 0, false
	}
	kv := reflect.ValueOf(key)
	switch {
	case isInt(kv.Kind()):
		i := kv.Int()
		if i > math.MaxInt || i < math.MinInt {
			return math.MaxInt, true
		}
		return int(i), true
	case isUint(kv.Kind()):
		u := kv.Uint()
		if u > math.MaxInt {
			return math.MaxInt, true
		}
		return int(u), true
	}
	return 0, false
}

func mapItem(rv reflect.Value, key any) (any, error) {
	if _, ok := key.(Range); ok {
		return nil, errors.Wrapf(ErrKeyType, "range on %s", rv.Type())
	}
	kv, ok := coerce(key, rv.Type().Key())
	if !ok || !hashable(kv) {
		return nil, errors.Wrapf(ErrKeyType, "%T key on %s", key, rv.Type())
	}
	out := rv.MapIndex(kv)
	if !out.IsValid() {
		return nil, errors.Wrapf(ErrMissingKey, "%s on %s", FormatKey(key), rv.Type())
	}
	return out.Interface(), nil
}

// hashable reports whether kv can be used as a map key. The value check
// catches comparable types holding an uncomparable dynamic value, such as
// a struct with an interface field holding a slice.
func hashable(kv reflect.Value) bool {
	if kv.Kind() == reflect.Interface && kv.IsNil() {
		return true
	}
	return kv.Type().Comparable() && kv.Comparable()
}

// coerce turns v into a value usable where type t is expected. Besides
// plain assignability it allows lossless conversions within the integer
// and float families and between types of the same kind.
func coerce(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Slice, reflect.UnsafePointer:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	if !rv.Type().ConvertibleTo(t) || !sameFamily(rv.Kind(), t.Kind()) {
		return reflect.Value{}, false
	}
	cv := rv.Convert(t)
	if isNumber(rv.Kind()) && cv.Convert(rv.Type()).Interface() != rv.Interface() {
		return reflect.Value{}, false
	}
	return cv, true
}

func sameFamily(a, b reflect.Kind) bool {
	switch {
	case a == b:
		return true
	case (isInt(a) || isUint(a)) && (isInt(b) || isUint(b)):
		return true
	case isFloat(a) && isFloat(b):
		return true
	}
	return false
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

// FormatKey renders key the way it is written in a chain path.
func FormatKey(key any) string {
	switch k := key.(type) {
	case Range:
		return k.String()
	case string:
		return "[" + strconv.Quote(k) + "]"
	}
	return fmt.Sprintf("[%v]", key)
}
