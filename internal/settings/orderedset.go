package settings

import (
	"fmt"

	"github.com/samber/lo"
)

// OrderedSet is a sequence of unique strings that keeps declaration order.
type OrderedSet struct {
	items []string
	index map[string]int
}

// NewOrderedSet builds a set from values, failing on duplicates.
func NewOrderedSet(values ...string) (OrderedSet, error) {
	s := OrderedSet{
		items: make([]string, 0, len(values)),
		index: make(map[string]int, len(values)),
	}
	for _, v := range values {
		if _, ok := s.index[v]; ok {
			return OrderedSet{}, fmt.Errorf("duplicate value %q", v)
		}
		s.index[v] = len(s.items)
		s.items = append(s.items, v)
	}
	return s, nil
}

// MustOrderedSet is NewOrderedSet that panics on duplicates.
func MustOrderedSet(values ...string) OrderedSet {
	s, err := NewOrderedSet(values...)
	if err != nil {
		panic(err)
	}
	return s
}

// Contains reports whether v is a member.
func (s OrderedSet) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Index returns the position of v, or -1.
func (s OrderedSet) Index(v string) int {
	if i, ok := s.index[v]; ok {
		return i
	}
	return -1
}

// Values returns a copy of the members in order.
func (s OrderedSet) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of members.
func (s OrderedSet) Len() int {
	return len(s.items)
}

// Sort returns the members of subset in the set's order, dropping unknown
// values and duplicates.
func (s OrderedSet) Sort(subset []string) []string {
	chosen := lo.SliceToMap(subset, func(v string) (string, struct{}) {
		return v, struct{}{}
	})
	return lo.Filter(s.items, func(v string, _ int) bool {
		_, ok := chosen[v]
		return ok
	})
}
