package collections_test

import (
	"strconv"
	"testing"

	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/collections"
)

func TestMapFunc(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n, _ int) string {
		return strconv.Itoa(n * 2)
	}).All()
	assertSlice(t, got, []string{"2", "4", "6"})
}

func TestMapFuncPassesIndex(t *testing.T) {
	got := collections.Map(collections.From([]string{"a", "b"}), func(s string, i int) string {
		return s + strconv.Itoa(i)
	}).All()
	assertSlice(t, got, []string{"a0", "b1"})
}

func TestReduceFunc(t *testing.T) {
	// int → string
	s := collections.Reduce(ints(1, 2, 3), func(acc string, n, _ int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	if s != "1,2,3" {
		t.Fatalf("Reduce = %q; want \"1,2,3\"", s)
	}
}

func TestReduceEmptyReturnsInitial(t *testing.T) {
	got := collections.Reduce(ints(), func(acc, n, _ int) int { return acc + n }, 7)
	if got != 7 {
		t.Fatalf("Reduce empty = %d; want 7", got)
	}
}

func TestPluckFunc(t *testing.T) {
	type Person struct{ Name string }
	people := collections.From([]Person{{"Alice"}, {"Bob"}, {"Carol"}})
	names := collections.Pluck(people, func(p Person) string { return p.Name }).All()
	assertSlice(t, names, []string{"Alice", "Bob", "Carol"})
}

func TestKeyByLastWins(t *testing.T) {
	type Item struct {
		ID  int
		Tag string
	}
	items := collections.From([]Item{{1, "a"}, {2, "b"}, {1, "c"}})
	keyed := collections.KeyBy(items, func(item Item) int { return item.ID })
	if len(keyed) != 2 || keyed[1].Tag != "c" {
		t.Fatalf("KeyBy = %v", keyed)
	}
}

func TestUniqueKeys(t *testing.T) {
	got := collections.UniqueKeys(collections.From([]string{"b", "a", "b", "c", "a"}), func(s string) string { return s })
	assertSlice(t, got, []string{"b", "a", "c"})
}
