package jvm

import (
	"github.com/SmileNJsx/scala/report"
	"github.com/SmileNJsx/scala/symbols"
)

// minimizeInterfaces reduces a class's declared direct parent interfaces to
// the minimal generating set: every declared interface is a supertype of (or
// is itself) some interface in the result, and no two interfaces in the
// result are related by subtyping.  The result keeps first-encountered order.
//
// One left-to-right pass over the declared list, maintaining an accumulator
// of leaves: a candidate already implied by a leaf is skipped, and a
// candidate that is itself implied-by none evicts every leaf it is a
// supertype of.
func minimizeInterfaces(sym *symbols.Symbol, parents []*symbols.Symbol) []*symbols.Symbol {
	var leaves []*symbols.Symbol

	for _, parent := range parents {
		report.AssertThat(parent.IsInterface(),
			"declared parent %s of %s is not a trait", parent, sym)

		redundant := false
		for _, leaf := range leaves {
			if leaf.IsSubClassOf(parent) {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}

		// Drop every leaf the new parent subsumes.
		n := 0
		for _, leaf := range leaves {
			if !parent.IsSubClassOf(leaf) {
				leaves[n] = leaf
				n++
			}
		}

		leaves = append(leaves[:n], parent)
	}

	return leaves
}
