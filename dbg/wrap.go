package dbg

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"
)

// Wrap returns a function of the same type as f that logs its arguments and
// return values on every call made while t is enabled. Enabled is checked
// per call, so f can be wrapped once and the toggle flipped freely.
//
//	double := dbg.Wrap(dbg.Std, computeDouble)
//
// Wrap panics if f is not a function.
func Wrap[F any](t *Toggle, f F) F {
	return decorate(t, funcName(f), f, false)
}

// WrapNamed is Wrap with an explicit display name, for closures whose
// runtime name is not useful.
func WrapNamed[F any](t *Toggle, name string, f F) F {
	return decorate(t, name, f, false)
}

// WrapNow is like Wrap, but the wrapper logs regardless of Enabled. Inside
// an OffScope nothing is wrapped and f is returned as is.
func WrapNow[F any](t *Toggle, f F) F {
	if !t.allowNow {
		return f
	}
	return decorate(t, funcName(f), f, true)
}

func WrapNowNamed[F any](t *Toggle, name string, f F) F {
	if !t.allowNow {
		return f
	}
	return decorate(t, name, f, true)
}

func decorate[F any](t *Toggle, name string, f F, skipEnabledCheck bool) F {
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func {
		panic(fmt.Sprintf("dbg: cannot wrap non-function type %T", f))
	}
	if fv.IsNil() {
		return f
	}

	ft := fv.Type()
	call := fv.Call
	if ft.IsVariadic() {
		call = fv.CallSlice
	}

	wrapper := reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		if (!skipEnabledCheck && !t.Enabled) || !t.allowNow {
			return call(in)
		}
		return t.traceCall(name, ft.IsVariadic(), call, in)
	})
	return wrapper.Interface().(F)
}

func (t *Toggle) traceCall(name string, variadic bool, call func([]reflect.Value) []reflect.Value, in []reflect.Value) []reflect.Value {
	w := t.writer()
	args := flatten(in, variadic)

	// Arguments are rendered before the call so that in-place mutation by
	// the callee does not show up in the log.
	var before string
	if len(args) > 0 {
		before = t.render(args)
		fmt.Fprintf(w, "%s called with args:\n%s\n", name, before)
	} else {
		fmt.Fprintf(w, "%s called without arguments\n", name)
	}

	out := call(in)

	ret, ok := results(out)
	if ok {
		fmt.Fprintf(w, "returned:\n%s\n", t.render(ret))
	}
	if t.settings.DiffArgs && len(args) > 0 {
		t.printMutation(w, before, args)
	}
	if len(args) > 0 || ok {
		io.WriteString(w, "\n")
	}
	return out
}

// flatten turns call arguments into plain values, spreading the variadic
// slice into individual arguments.
func flatten(in []reflect.Value, variadic bool) []interface{} {
	var args []interface{}
	for i, v := range in {
		if variadic && i == len(in)-1 {
			for j := 0; j < v.Len(); j++ {
				args = append(args, v.Index(j).Interface())
			}
			continue
		}
		args = append(args, v.Interface())
	}
	return args
}

// results returns the value to print for a call's results and whether it
// is worth printing at all.
func results(out []reflect.Value) (interface{}, bool) {
	switch len(out) {
	case 0:
		return nil, false
	case 1:
		return out[0].Interface(), truthy(out[0])
	}

	vals := make([]interface{}, len(out))
	var ok bool
	for i, v := range out {
		vals[i] = v.Interface()
		ok = ok || truthy(v)
	}
	return vals, ok
}

// funcName is the name of f without its import path and package, e.g.
// "double", "(*Server).Start" or "TestWrap.func1".
func funcName(f interface{}) string {
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return fmt.Sprintf("%T", f)
	}
	fn := runtime.FuncForPC(fv.Pointer())
	if fn == nil {
		return fmt.Sprintf("%T", f)
	}

	return shortName(fn.Name())
}

// shortName strips the import path and package from a runtime function
// name. The last path element may itself contain dots, either escaped as
// "%2e" or as a gopkg.in style ".vN" suffix.
func shortName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	i := strings.Index(name, ".")
	if i < 0 {
		return name
	}
	name = name[i+1:]
	if j := strings.Index(name, "."); j > 1 && name[0] == 'v' && isDigits(name[1:j]) {
		name = name[j+1:]
	}
	// method values
	return strings.TrimSuffix(name, "-fm")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
