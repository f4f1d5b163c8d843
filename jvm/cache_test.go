package jvm

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SmileNJsx/scala/symbols"
)

func TestConcurrentRequestsShareOneDescriptor(t *testing.T) {
	f := newFixture()
	c := f.class("C", 0)

	const workers = 16
	results := make([]*ClassDescriptor, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.ctx.DescriptorOf(c)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatalf("worker %d observed a distinct descriptor instance", i)
		}
	}

	if results[0].Info() == nil {
		t.Errorf("descriptor info must be populated once requests return")
	}
}

func TestConcurrentRequestsAcrossSharedGraph(t *testing.T) {
	f := newFixture()

	base := f.class("Base", 0)
	marker := f.trait("Marker")

	const classes = 24
	syms := make([]*symbols.Symbol, classes)
	for i := range syms {
		c := f.class("C"+string(rune('A'+i)), 0)
		c.Super = base
		c.Mixins = []*symbols.Symbol{marker}
		syms[i] = c
	}

	descs := make([]*ClassDescriptor, classes)
	var wg sync.WaitGroup
	for i, sym := range syms {
		wg.Add(1)
		go func(i int, sym *symbols.Symbol) {
			defer wg.Done()
			descs[i] = f.ctx.DescriptorOf(sym)
		}(i, sym)
	}
	wg.Wait()

	baseDesc := f.ctx.DescriptorOf(base)
	markerDesc := f.ctx.DescriptorOf(marker)
	for i, d := range descs {
		info := d.Info()
		if info.Super != baseDesc {
			t.Fatalf("class %d resolved a distinct superclass descriptor", i)
		}
		if len(info.Interfaces) != 1 || info.Interfaces[0] != markerDesc {
			t.Fatalf("class %d resolved a distinct interface descriptor", i)
		}
	}
}

func TestNestedClassEntryPointsFromSeparateWorkers(t *testing.T) {
	// Outer's construction requests Inner (member-class collection) while
	// Inner's requests Outer (enclosing-class resolution), so two workers
	// entering the pair from opposite ends must not wedge on each other.
	for iter := 0; iter < 50; iter++ {
		f := newFixture()

		// Long superclass chains keep both constructions open long enough for
		// the workers to collide.
		chain := func(prefix string) *symbols.Symbol {
			top := f.class(prefix+"0", 0)
			for i := 1; i < 8; i++ {
				c := f.class(fmt.Sprintf("%s%d", prefix, i), 0)
				c.Super = top
				top = c
			}
			return top
		}

		outer := f.class("Outer", 0)
		outer.Super = chain("A")
		inner := f.memberClass("Inner", outer, 0)
		inner.Super = chain("B")

		var outerDesc, innerDesc *ClassDescriptor

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			outerDesc = f.ctx.DescriptorOf(outer)
		}()
		go func() {
			defer wg.Done()
			innerDesc = f.ctx.DescriptorOf(inner)
		}()

		finished := make(chan struct{})
		go func() {
			wg.Wait()
			close(finished)
		}()

		select {
		case <-finished:
		case <-time.After(10 * time.Second):
			t.Fatalf("iteration %d: workers wedged building Outer/Inner from opposite ends", iter)
		}

		outerInfo := outerDesc.Info()
		innerInfo := innerDesc.Info()
		if len(outerInfo.MemberClasses) != 1 || outerInfo.MemberClasses[0] != innerDesc {
			t.Fatalf("iteration %d: Outer resolved a distinct member descriptor", iter)
		}
		if innerInfo.Nested == nil || innerInfo.Nested.EnclosingClass != outerDesc {
			t.Fatalf("iteration %d: Inner resolved a distinct enclosing descriptor", iter)
		}
	}
}

func TestInfoCellPopulatedExactlyOnce(t *testing.T) {
	f := newFixture()
	c := f.class("C", 0)

	d := f.ctx.DescriptorOf(c)
	first := d.Info()

	// a second request must neither rebuild nor repopulate
	if f.ctx.DescriptorOf(c).Info() != first {
		t.Errorf("info cell must never be repopulated")
	}
}

func TestIncompleteInfoReadIsRejected(t *testing.T) {
	d := &ClassDescriptor{InternalName: "example/C", done: make(chan struct{})}

	expectICE(t, func() {
		d.Info()
	})
}
