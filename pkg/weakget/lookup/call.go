package lookup

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Call invokes v, which must be a func, with args. A trailing error result
// is split off and returned unchanged when non-nil. The remaining results
// become nil, a single value, or a []any.
func (r *Resolver) Call(v any, args ...any) (any, error) {
	if IsEmpty(v) {
		return nil, errors.Wrap(ErrNotCallable, "empty value")
	}
	fv := reflect.ValueOf(v)
	if fv.Kind() != reflect.Func {
		return nil, errors.Wrapf(ErrNotCallable, "%T", v)
	}

	in, err := callArgs(fv.Type(), args)
	if err != nil {
		return nil, err
	}
	return callResult(fv.Type(), fv.Call(in))
}

func callArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, errors.Wrapf(ErrBadArguments, "%s wants at least %d arguments, got %d", ft, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, errors.Wrapf(ErrBadArguments, "%s wants %d arguments, got %d", ft, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(ft, i)
		av, ok := coerce(arg, pt)
		if !ok {
			return nil, errors.Wrapf(ErrBadArguments, "argument %d: %T is not usable as %s", i, arg, pt)
		}
		in[i] = av
	}
	return in, nil
}

func paramType(ft reflect.Type, i int) reflect.Type {
	last := ft.NumIn() - 1
	if ft.IsVariadic() && i >= last {
		return ft.In(last).Elem()
	}
	return ft.In(i)
}

func callResult(ft reflect.Type, outs []reflect.Value) (any, error) {
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		if e := outs[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		outs = outs[:n-1]
	}

	switch len(outs) {
	case 0:
		return nil, nil
	case 1:
		return outs[0].Interface(), nil
	}
	return lo.Map(outs, func(out reflect.Value, _ int) any {
		return out.Interface()
	}), nil
}
