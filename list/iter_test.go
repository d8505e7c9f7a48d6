package list_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/persistent/list"
)

func TestIterOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	l := list.Of(3, 2, 1)
	var got []int
	for it := l.Iter(); it.HasElem(); it.Next() {
		got = append(got, it.Elem())
	}
	if diff := cmp.Diff([]int{3, 2, 1}, got); diff != "" {
		t.Errorf("iteration order differs (-want +got):\n%s", diff)
	}
}

func TestIterIsRestartable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	l := list.Of(1, 2, 3)
	first := l.Iter()
	first.Next()
	first.Next() // first now positioned on the 3

	second := l.Iter() // fresh traversal, unaffected by first
	if second.Elem() != 1 {
		t.Errorf("expected fresh iterator to start at the head, is at %d", second.Elem())
	}
	if first.Elem() != 3 {
		t.Errorf("expected advanced iterator to stay at 3, is at %d", first.Elem())
	}
	if l.Len() != 3 {
		t.Error("expected iteration to leave the list untouched, didn't")
	}
}

func TestIterCopyForksTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	it := list.Of(1, 2, 3).Iter()
	it.Next()
	fork := it // plain copy forks the traversal state
	it.Next()
	if fork.Elem() != 2 {
		t.Errorf("expected forked iterator to stay at 2, is at %d", fork.Elem())
	}
	if it.Elem() != 3 {
		t.Errorf("expected original iterator to be at 3, is at %d", it.Elem())
	}
}

func TestIterElemPanicsWhenExhausted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	it := list.Nil[int]().Iter()
	if it.HasElem() {
		t.Error("expected iterator over Nil to be exhausted, isn't")
	}
	require.Panics(t, func() { it.Elem() }, "Elem on an exhausted iterator has to panic")
}

func TestFromSliceRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	s := []int{3, 2, 1}
	l := list.FromSlice(s)
	if l.Head() != 3 {
		t.Errorf("expected head to be s[0] = 3, is %d", l.Head())
	}
	if diff := cmp.Diff(s, l.ToSlice()); diff != "" {
		t.Errorf("round trip differs (-want +got):\n%s", diff)
	}

	if !list.FromSlice([]int{}).IsEmpty() {
		t.Error("expected FromSlice of empty slice to be Nil, isn't")
	}
	if !list.FromSlice[int](nil).IsEmpty() {
		t.Error("expected FromSlice of nil slice to be Nil, isn't")
	}
	if list.Nil[int]().ToSlice() != nil {
		t.Error("expected ToSlice of Nil to be nil, isn't")
	}
}

func TestOfMatchesFromSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	if !list.Equal(list.Of(1, 2, 3), list.FromSlice([]int{1, 2, 3})) {
		t.Error("expected Of and FromSlice to build equal lists, don't")
	}
	if !list.Of[int]().IsEmpty() {
		t.Error("expected Of() to be Nil, isn't")
	}
}

func TestFromIter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	l := list.Of(3, 2, 1)
	collected := list.FromIter(l.Iter())
	if !list.Equal(collected, l) {
		t.Logf("collected = %v", collected)
		t.Error("expected FromIter to reproduce the iteration order, didn't")
	}

	it := l.Iter()
	it.Next() // skip the 3
	rest := list.FromIter(it)
	if !list.Equal(rest, list.Of(2, 1)) {
		t.Logf("rest = %v", rest)
		t.Error("expected FromIter of advanced iterator to collect the suffix, didn't")
	}
	if it.Elem() != 2 {
		t.Errorf("expected caller's iterator to keep its position at 2, is at %d", it.Elem())
	}

	if !list.FromIter(list.Nil[int]().Iter()).IsEmpty() {
		t.Error("expected FromIter of exhausted iterator to be Nil, isn't")
	}
}
