package variant

import (
	"bytes"
	"slices"
)

// Visitor receives the events of Walk. idx is the position of v within
// parent as visited (0 for the first child); parent is nil for the root.
// For dictionary children the key is available from v.KeyBytes.
type Visitor interface {
	// Value is called for every non-container value.
	Value(v *Variant, idx int, parent *Variant) error
	// Begin is called when a List or Dict is entered.
	Begin(v *Variant, idx int, parent *Variant) error
	// End is called after the last child of a List or Dict.
	End(v *Variant) error
}

type walkFrame struct {
	v     *Variant
	order []int // visiting order when sorted; nil means storage order
	next  int
}

// Walk visits v depth first. The traversal keeps its own stack, so trees of
// any depth can be walked. With sortDicts set, dictionary entries are
// visited in byte-lexicographic key order; storage is not reordered. The
// first error returned by vis stops the walk.
func Walk(v *Variant, vis Visitor, sortDicts bool) error {
	stack := make([]walkFrame, 0, 16)

	enter := func(c *Variant, idx int, parent *Variant) error {
		if !c.isContainer() {
			return vis.Value(c, idx, parent)
		}
		if err := vis.Begin(c, idx, parent); err != nil {
			return err
		}
		f := walkFrame{v: c}
		if sortDicts && c.kind == KindDict && len(c.vals) > 1 {
			f.order = sortedOrder(c.vals)
		}
		stack = append(stack, f)
		return nil
	}

	if err := enter(v, 0, nil); err != nil {
		return err
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.v.vals) {
			done := top.v
			stack = stack[:len(stack)-1]
			if err := vis.End(done); err != nil {
				return err
			}
			continue
		}
		i := top.next
		top.next++
		pos := i
		if top.order != nil {
			pos = top.order[i]
		}
		parent := top.v
		if err := enter(&parent.vals[pos], i, parent); err != nil {
			return err
		}
	}
	return nil
}

// sortedOrder returns child positions ordered by key bytes. The sort is
// stable so equal keys, which a well-formed Dict never has, keep their
// storage order.
func sortedOrder(vals []Variant) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return bytes.Compare(vals[a].key.view(), vals[b].key.view())
	})
	return order
}
