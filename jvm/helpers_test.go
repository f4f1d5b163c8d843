package jvm

import (
	"testing"

	"github.com/SmileNJsx/scala/report"
	"github.com/SmileNJsx/scala/symbols"
)

// fixture bundles a fresh universe, a test package, and a backend context for
// one test.
type fixture struct {
	uni *symbols.Universe
	pkg *symbols.Symbol
	ctx *Context
}

func newFixture() *fixture {
	uni := symbols.NewUniverse()
	return &fixture{
		uni: uni,
		pkg: symbols.NewPackage("example", uni.RootPackage),
		ctx: NewContext(uni),
	}
}

// class creates a plain class in the test package extending Object.
func (f *fixture) class(name string, flags symbols.Flags) *symbols.Symbol {
	c := symbols.NewClass(name, symbols.KindClass, f.pkg, flags)
	c.Super = f.uni.ObjectClass
	return c
}

// trait creates a trait in the test package with the given direct parents.
func (f *fixture) trait(name string, parents ...*symbols.Symbol) *symbols.Symbol {
	t := symbols.NewClass(name, symbols.KindTrait, f.pkg, 0)
	t.Super = f.uni.ObjectClass
	t.Mixins = parents
	return t
}

// module creates a module class in the given owner extending Object.
func (f *fixture) module(name string, owner *symbols.Symbol, flags symbols.Flags) *symbols.Symbol {
	m := symbols.NewClass(name, symbols.KindModule, owner, flags)
	m.Super = f.uni.ObjectClass
	if owner.IsClass() {
		owner.Declare(m)
	}
	return m
}

// memberClass creates a plain class nested in the given owner class.
func (f *fixture) memberClass(name string, owner *symbols.Symbol, flags symbols.Flags) *symbols.Symbol {
	c := symbols.NewClass(name, symbols.KindClass, owner, flags)
	c.Super = f.uni.ObjectClass
	owner.Declare(c)
	return c
}

// localClass creates a class declared inside a method body of the given
// owner class.
func (f *fixture) localClass(name string, owner *symbols.Symbol, flags symbols.Flags) *symbols.Symbol {
	method := owner.Declare(symbols.NewMethod("run", owner, 0))
	c := symbols.NewClass(name, symbols.KindClass, method, flags)
	c.Super = f.uni.ObjectClass
	return c
}

// expectICE fails the test unless fn raises an internal error.
func expectICE(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()
		if x := recover(); x == nil {
			t.Errorf("expected an internal error, got none")
		} else if _, ok := x.(*report.InternalError); !ok {
			t.Errorf("expected an internal error, got %v", x)
		}
	}()

	fn()
}

// interfaceNames extracts the internal names from a descriptor's interface
// list.
func interfaceNames(info *ClassInfo) []string {
	names := make([]string, len(info.Interfaces))
	for i, iface := range info.Interfaces {
		names[i] = iface.InternalName
	}
	return names
}
