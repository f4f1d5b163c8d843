package jvm

import (
	"sync"

	"github.com/SmileNJsx/scala/symbols"
)

// Context holds all backend state scoped to a single compilation run: the
// well-known symbols and the descriptor cache.  It is torn down with the run;
// nothing here persists across runs.
type Context struct {
	// Universe is the run's set of well-known symbols.
	Universe *symbols.Universe

	// CompilingPrimitives is set only when the primitive library itself is
	// the code being compiled.  It is the sole situation in which descriptors
	// for the primitive value classes may be requested.
	CompilingPrimitives bool

	// The descriptor cache.  Lookup-or-insert is atomic under mu so that two
	// workers racing on the same symbol can never obtain two distinct
	// descriptors.
	mu          sync.Mutex
	descriptors map[*symbols.Symbol]*ClassDescriptor

	// The cross-builder wait graph, guarded by mu.  owners maps each
	// under-construction descriptor to the builder computing its info; waiting
	// maps each blocked builder to the descriptor it is blocked on.  Together
	// they let a builder about to block detect that the construction it would
	// wait for is, transitively, waiting on the builder itself.
	owners  map[*ClassDescriptor]*builder
	waiting map[*builder]*ClassDescriptor
}

// NewContext creates the backend context for one compilation run.
func NewContext(uni *symbols.Universe) *Context {
	return &Context{
		Universe:    uni,
		descriptors: make(map[*symbols.Symbol]*ClassDescriptor),
		owners:      make(map[*ClassDescriptor]*builder),
		waiting:     make(map[*builder]*ClassDescriptor),
	}
}

// waitWouldCycle reports whether the given builder blocking on a construction
// owned by `owner` would close a cycle in the wait graph.  Must be called with
// mu held.  The walk follows each blocked builder to the owner of the
// descriptor it waits on; since a builder waits on at most one descriptor and
// a descriptor has at most one owner, the walk either reaches a running
// builder or comes back around to the requester.
func (ctx *Context) waitWouldCycle(b, owner *builder) bool {
	for cur := owner; cur != nil; {
		if cur == b {
			return true
		}

		blockedOn, ok := ctx.waiting[cur]
		if !ok {
			return false
		}
		cur = ctx.owners[blockedOn]
	}

	return false
}

// DescriptorOf returns the unique class descriptor for the given class
// symbol, constructing it and everything it references on first request.  It
// is safe to call from concurrently compiling units: a request for a symbol
// under construction by another worker blocks until that construction
// completes, except where blocking would deadlock two workers that entered
// the same reference cycle from different ends.  In that case the requester
// proceeds with the incomplete descriptor, exactly as it would for a cycle
// inside its own chain, and settles it here before returning.  By the time
// this returns, the descriptor's info and the info of everything it
// references are populated.
func (ctx *Context) DescriptorOf(sym *symbols.Symbol) *ClassDescriptor {
	b := &builder{
		ctx:      ctx,
		building: make(map[*symbols.Symbol]struct{}),
	}

	d := b.getOrBuild(sym)

	// Every construction this builder owned is closed by now, so these waits
	// cannot participate in a cycle.
	for _, dep := range b.deferred {
		<-dep.done
	}

	return d
}
