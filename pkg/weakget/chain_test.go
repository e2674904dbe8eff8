package weakget

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/weakget/pkg/weakget/lookup"
)

func TestNothing_AbsorbsEverything(t *testing.T) {
	t.Parallel()

	steps := map[string]func(Chain) Chain{
		"attr":           func(c Chain) Chain { return c.Attr("missing") },
		"index":          func(c Chain) Chain { return c.Item(1) },
		"negative index": func(c Chain) Chain { return c.Item(-1) },
		"range":          func(c Chain) Chain { return c.Item(lookup.Slice(1, 3)) },
		"key":            func(c Chain) Chain { return c.Item("b") },
		"call":           func(c Chain) Chain { return c.Call() },
		"call with args": func(c Chain) Chain { return c.Call(1, "two", nil) },
		"method":         func(c Chain) Chain { return c.Attr("Upper").Call() },
	}
	for name, step := range steps {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := step(Nothing)
			require.True(t, IsNothing(c))

			out, err := c.Or(def)
			require.NoError(t, err)
			assert.Same(t, def, out)
		})
	}

	assert.True(t, IsNothing(Nothing.Attr("a").Item(1).Call()))
	assert.NoError(t, Nothing.Err())
	assert.Empty(t, Nothing.Path())
}

func TestNothing_IsShared(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNothing(Of("abc").Item(99)))
	assert.True(t, IsNothing(Coalesce(nil, nil)))
	assert.True(t, IsNothing(Coalesce([]any{nil}).Item(0)))
	assert.False(t, IsNothing(Of(nil)))
	assert.False(t, IsNothing(Of(nil).Item(0)), "a broken chain is not Nothing")
}

func TestChains_AreNotComparable(t *testing.T) {
	t.Parallel()

	constructors := map[string]func() Chain{
		"of":       func() Chain { return Of(0) },
		"coalesce": func() Chain { return Coalesce(0) },
		"nothing":  func() Chain { return Nothing },
		"broken":   func() Chain { return Of(0).Call() },
	}
	for name, newChain := range constructors {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a, b := newChain(), newChain()

			assert.Panics(t, func() { _ = a == b })
			assert.Panics(t, func() { _ = a != b })
			assert.Panics(t, func() {
				seen := map[Chain]bool{}
				seen[a] = true
			})
		})
	}
}

func TestBroken_KeepsError(t *testing.T) {
	t.Parallel()

	c := Of(nil).Item(1)
	require.ErrorIs(t, c.Err(), lookup.ErrNotIndexable)
	assert.Equal(t, "[1]", c.Path())

	after := c.Attr("x").Item(lookup.All()).Call()
	assert.Equal(t, c.Path(), after.Path())

	out, err := after.Or(def)
	require.ErrorIs(t, err, lookup.ErrNotIndexable)
	assert.Nil(t, out, "a broken chain never yields the default")
}

func TestOrAs(t *testing.T) {
	t.Parallel()

	n, err := OrAs(Of(map[string]int{"a": 1}).Item("a"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = OrAs(Of(map[string]int{"a": 1}).Item("b"), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = OrAs(Of(5), "")
	require.ErrorIs(t, err, ErrWrongType)

	_, err = OrAs(Of(nil), 3)
	require.ErrorIs(t, err, ErrWrongType)

	p, err := OrAs[*int](Of(nil), intPtr(1))
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = OrAs(Of(nil).Call(), 0)
	require.ErrorIs(t, err, lookup.ErrNotCallable)
}

func TestMustOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "b", MustOr(Of("abc").Item(1), def))
	assert.Same(t, def, MustOr(Of("abc").Item(9), def))
	assert.Panics(t, func() { MustOr(Of(nil).Item(1), def) })
}

func TestUsing(t *testing.T) {
	t.Parallel()

	type user struct {
		FullName string `json:"full_name"`
	}
	u := user{FullName: "Ada Lovelace"}

	out, err := Of(u).Attr("full_name").Or(def)
	require.NoError(t, err)
	assert.Same(t, def, out)

	g := Using(lookup.New(lookup.WithJSONTags()))
	out, err = g.Of(u).Attr("full_name").Or(def)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", out)

	out, err = g.Coalesce(nil, &u).Attr("full_name").Or(def)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", out)

	out, err = Using(nil).Of(u).Attr("FullName").Or(def)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", out)
}

func TestChains_ShareAcrossGoroutines(t *testing.T) {
	t.Parallel()

	c := Of(map[string][]int{"xs": {1, 2, 3}}).Item("xs")

	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = MustOr(c.Item(i%4), def)
		}(i)
	}
	wg.Wait()

	for i, out := range results {
		if i%4 == 3 {
			assert.Same(t, def, out)
			continue
		}
		assert.Equal(t, i%4+1, out)
	}
}

func TestZeroValueChains(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNothing(ErrorChain{}.Attr("missing")))

	out, err := EmptyChain{}.Or(def)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestChains_DifferentKindsCompareFalse(t *testing.T) {
	t.Parallel()

	var live, end Chain = Of(1), Nothing
	assert.NotPanics(t, func() {
		assert.False(t, live == end)
	})
	assert.False(t, IsNothing(live))
	assert.True(t, IsNothing(end))
}
