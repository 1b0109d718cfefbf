package errunion

import (
	"fmt"
	"strings"
)

// Handler handles one kind of error, producing an R.
type Handler[R any] struct {
	kind Kind
	fn   func(error) R
}

// On builds a Handler for kind E.
func On[E error, R any](fn func(E) R) Handler[R] {
	return Handler[R]{
		kind: KindOf[E](),
		fn:   func(err error) R { return fn(err.(E)) },
	}
}

// Kind returns the kind h handles.
func (h Handler[R]) Kind() Kind { return h.kind }

// Fold dispatches u to the handler whose kind matches the held error.
// Every kind in u's Set must have a handler; a missing one panics even when
// u happens to hold a kind that is handled.
func Fold[R any](u Union, handlers ...Handler[R]) R {
	if missing := Missing(u.set, handlers...); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, k := range missing {
			names[i] = k.String()
		}
		panic(fmt.Sprintf("errunion: no handler for %s", strings.Join(names, ", ")))
	}
	k := u.Kind()
	for _, h := range handlers {
		if h.kind == k {
			return h.fn(u.err)
		}
	}
	panic(fmt.Sprintf("errunion: union holds %s outside its set %s", k, u.set))
}

// Missing returns the kinds of set that no handler covers.
func Missing[R any](set Set, handlers ...Handler[R]) []Kind {
	var out []Kind
	for _, k := range set.kinds {
		found := false
		for _, h := range handlers {
			if h.kind == k {
				found = true
				break
			}
		}
		if !found {
			out = append(out, k)
		}
	}
	return out
}
