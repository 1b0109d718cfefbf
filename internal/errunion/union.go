// Package errunion implements an open tagged union of error kinds.
//
// A Set names the error kinds a parsing stage may produce. A Union holds
// exactly one error whose kind is a member of its Set. Stages that call other
// stages widen their Set to cover every callee; handlers either peel kinds off
// one at a time with Split or dispatch over the whole Set with Fold.
package errunion

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies one error type.
type Kind struct {
	t reflect.Type
}

// KindOf returns the Kind of the error type E.
func KindOf[E error]() Kind {
	return Kind{t: reflect.TypeOf((*E)(nil)).Elem()}
}

func kindOfValue(err error) Kind {
	return Kind{t: reflect.TypeOf(err)}
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

// Set is an immutable, ordered set of kinds.
type Set struct {
	kinds []Kind
}

// NewSet builds a Set from kinds, dropping repeats.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		if !s.Contains(k) {
			s.kinds = append(s.kinds, k)
		}
	}
	return s
}

// Union returns a Set holding the kinds of s and of every other set.
func (s Set) Union(others ...Set) Set {
	all := append([]Kind(nil), s.kinds...)
	for _, o := range others {
		all = append(all, o.kinds...)
	}
	return NewSet(all...)
}

// Contains reports whether k is a member of s.
func (s Set) Contains(k Kind) bool {
	for _, m := range s.kinds {
		if m == k {
			return true
		}
	}
	return false
}

// Covers reports whether every kind of other is a member of s.
func (s Set) Covers(other Set) bool {
	for _, k := range other.kinds {
		if !s.Contains(k) {
			return false
		}
	}
	return true
}

// Without returns s with k removed.
func (s Set) Without(k Kind) Set {
	out := Set{kinds: make([]Kind, 0, len(s.kinds))}
	for _, m := range s.kinds {
		if m != k {
			out.kinds = append(out.kinds, m)
		}
	}
	return out
}

// Len returns the number of kinds in s.
func (s Set) Len() int { return len(s.kinds) }

// Kinds returns a copy of the kinds in s, in insertion order.
func (s Set) Kinds() []Kind {
	return append([]Kind(nil), s.kinds...)
}

func (s Set) String() string {
	names := make([]string, len(s.kinds))
	for i, k := range s.kinds {
		names[i] = k.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Union holds one error of a kind permitted by its Set.
// The zero Union is empty and holds nothing.
type Union struct {
	set Set
	err error
}

// Inject wraps err in a Union over set. It panics when the kind of err is
// not a member of set: that is a wiring mistake in the caller, not input
// the user can trigger.
func Inject[E error](set Set, err E) Union {
	k := KindOf[E]()
	if !set.Contains(k) {
		panic(fmt.Sprintf("errunion: kind %s is not a member of %s", k, set))
	}
	return Union{set: set, err: err}
}

// Error implements error.
func (u Union) Error() string {
	if u.err == nil {
		return "empty error union"
	}
	return u.err.Error()
}

// Unwrap returns the held error so errors.As reaches the concrete kind.
func (u Union) Unwrap() error { return u.err }

// Kind returns the kind of the held error.
func (u Union) Kind() Kind { return kindOfValue(u.err) }

// Set returns the kinds u is permitted to hold.
func (u Union) Set() Set { return u.set }

// IsEmpty reports whether u holds no error at all.
func (u Union) IsEmpty() bool { return u.err == nil }

// Widen re-tags u with a larger Set. Sets only widen moving up a call
// chain, so it panics when to does not cover the current Set.
func (u Union) Widen(to Set) Union {
	if !to.Covers(u.set) {
		panic(fmt.Sprintf("errunion: cannot widen %s to %s", u.set, to))
	}
	return Union{set: to, err: u.err}
}

// Split peels kind E off u. When u holds an E it is returned with ok set.
// Otherwise the returned Union holds the same error with E excluded from
// its Set.
func Split[E error](u Union) (e E, rest Union, ok bool) {
	k := KindOf[E]()
	if held, match := u.err.(E); match && u.Kind() == k {
		return held, Union{}, true
	}
	return e, Union{set: u.set.Without(k), err: u.err}, false
}

// As finds the first Union in err's chain.
func As(err error) (Union, bool) {
	var u Union
	if errors.As(err, &u) {
		return u, true
	}
	return Union{}, false
}
