package errunion

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type badName struct{ name string }

func (e badName) Error() string { return "bad name " + e.name }

type badSize struct{ n int }

func (e badSize) Error() string { return fmt.Sprintf("bad size %d", e.n) }

type badMood struct{}

func (badMood) Error() string { return "bad mood" }

var (
	nameKinds = NewSet(KindOf[badName]())
	allKinds  = nameKinds.Union(NewSet(KindOf[badSize](), KindOf[badMood]()))
)

func TestSet_UnionDropsRepeats(t *testing.T) {
	s := NewSet(KindOf[badName](), KindOf[badName](), KindOf[badSize]())
	assert.Equal(t, 2, s.Len())

	u := s.Union(nameKinds, NewSet(KindOf[badMood]()))
	assert.Equal(t, 3, u.Len())
	assert.True(t, u.Covers(s))
	assert.False(t, s.Covers(u))
}

func TestSet_Without(t *testing.T) {
	s := allKinds.Without(KindOf[badSize]())
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(KindOf[badSize]()))
	assert.Equal(t, 3, allKinds.Len(), "Without must not modify the receiver")
}

func TestInject_OutsideSetPanics(t *testing.T) {
	assert.Panics(t, func() { Inject(nameKinds, badSize{n: 1}) })
}

func TestInject_ErrorAndUnwrap(t *testing.T) {
	u := Inject(allKinds, badSize{n: 7})
	require.EqualError(t, u, "bad size 7")

	var bs badSize
	require.True(t, errors.As(u, &bs))
	assert.Equal(t, 7, bs.n)
	assert.Equal(t, KindOf[badSize](), u.Kind())
}

func TestWiden(t *testing.T) {
	u := Inject(nameKinds, badName{name: "x"}).Widen(allKinds)
	assert.Equal(t, 3, u.Set().Len())

	assert.Panics(t, func() { Inject(allKinds, badMood{}).Widen(nameKinds) })
}

func TestSplit_Match(t *testing.T) {
	u := Inject(allKinds, badName{name: "age"})

	e, _, ok := Split[badName](u)
	require.True(t, ok)
	assert.Equal(t, "age", e.name)
}

func TestSplit_MismatchNarrows(t *testing.T) {
	u := Inject(allKinds, badMood{})

	_, rest, ok := Split[badName](u)
	require.False(t, ok)
	assert.Equal(t, 2, rest.Set().Len())
	assert.False(t, rest.Set().Contains(KindOf[badName]()))

	_, rest, ok = Split[badSize](rest)
	require.False(t, ok)
	assert.Equal(t, 1, rest.Set().Len())

	_, _, ok = Split[badMood](rest)
	assert.True(t, ok)
}

func TestFold_DispatchesOnHeldKind(t *testing.T) {
	handlers := []Handler[string]{
		On(func(e badName) string { return "name:" + e.name }),
		On(func(e badSize) string { return fmt.Sprintf("size:%d", e.n) }),
		On(func(badMood) string { return "mood" }),
	}

	assert.Equal(t, "name:a", Fold(Inject(allKinds, badName{name: "a"}), handlers...))
	assert.Equal(t, "size:3", Fold(Inject(allKinds, badSize{n: 3}), handlers...))
	assert.Equal(t, "mood", Fold(Inject(allKinds, badMood{}), handlers...))
}

func TestFold_AfterSplitNeedsFewerHandlers(t *testing.T) {
	u := Inject(allKinds, badSize{n: 2})
	_, rest, ok := Split[badName](u)
	require.False(t, ok)

	got := Fold(rest,
		On(func(e badSize) int { return e.n }),
		On(func(badMood) int { return -1 }),
	)
	assert.Equal(t, 2, got)
}

func TestFold_MissingHandlerPanics(t *testing.T) {
	u := Inject(allKinds, badName{name: "a"})
	assert.Panics(t, func() {
		Fold(u, On(func(e badName) string { return e.name }))
	})
	assert.Len(t, Missing(allKinds, On(func(e badName) string { return e.name })), 2)
}

func TestAs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("parse: %w", Inject(nameKinds, badName{name: "q"}))

	u, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindOf[badName](), u.Kind())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
