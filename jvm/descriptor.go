package jvm

import (
	"github.com/SmileNJsx/scala/report"
	"github.com/SmileNJsx/scala/symbols"
)

// ClassDescriptor describes one class for the class-file emitter.  Exactly
// one descriptor exists per class symbol per compilation run.
//
// A descriptor is registered in the run's cache before its info is computed.
// This two-step protocol is what lets mutually recursive class graphs (two
// traits extending each other indirectly, a class appearing among its own
// member classes) be constructed without unbounded recursion: a recursive
// request for a symbol already under construction receives the same
// descriptor with its info still unset, and reads the info only after the
// whole graph is wired.
type ClassDescriptor struct {
	// InternalName is the slash-separated binary name of the class.  It is
	// set at creation and never changes.
	InternalName string

	// The symbol this descriptor was built from, kept for diagnostics.
	sym *symbols.Symbol

	// info is set exactly once, after construction completes, and never
	// mutated again.
	info *ClassInfo

	// done is closed once info is populated.  Workers that hit a descriptor
	// under construction by another worker wait on it.
	done chan struct{}
}

// ClassInfo is the payload of a descriptor, populated exactly once after the
// descriptor has been registered.
type ClassInfo struct {
	// Super is the superclass descriptor.  It is nil only for the root class
	// and for the primitive value classes during their own compilation.
	Super *ClassDescriptor

	// Interfaces is the minimal, redundancy-free list of implemented
	// interfaces, in first-encountered order.
	Interfaces []*ClassDescriptor

	// Flags is the access-flag bitmask for the class itself.
	Flags uint16

	// MemberClasses lists the classes declared inside this class or its
	// companion, after canonical member selection.
	MemberClasses []*ClassDescriptor

	// Nested is present iff the class is lexically nested inside another
	// class or a method body.
	Nested *NestedInfo
}

// NestedInfo carries the fields the emitter writes into the nested-class
// attribute table.
type NestedInfo struct {
	// EnclosingClass is the descriptor of the class this class is nested in.
	EnclosingClass *ClassDescriptor

	// OuterName is the binary name of the enclosing class, or empty for
	// classes whose original lexical home was a method body: anonymous and
	// local classes record no outer name, by format convention.
	OuterName string

	// InnerName is the simple name of the class, or empty for anonymous
	// classes.
	InnerName string

	// IsStaticNested indicates a static nested class, judged on the
	// symbol's pre-lift shape.
	IsStaticNested bool
}

// Symbol returns the class symbol this descriptor was built from.  The
// emitter walks it to reach the class's method and field symbols.
func (d *ClassDescriptor) Symbol() *symbols.Symbol {
	return d.sym
}

// Info returns the descriptor's populated info.  Requesting the info of a
// descriptor still under construction is a defect in the caller: info must
// only be read after the originating descriptor request has returned.
func (d *ClassDescriptor) Info() *ClassInfo {
	report.AssertThat(d.info != nil, "info of class %s read before construction completed", d.InternalName)
	return d.info
}
