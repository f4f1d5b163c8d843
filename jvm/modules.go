package jvm

import (
	"github.com/SmileNJsx/scala/report"
	"github.com/SmileNJsx/scala/symbols"
)

// IsTopLevelModuleClass returns whether the symbol is the implementation
// class of a singleton object declared directly at package level.  Such a
// class is emitted final with a private constructor: instances are only ever
// obtained through the generated static accessor.
//
// Nesting is judged against the original owner: lifting phases relocate
// local module classes to member position, and a relocated owner must not be
// consulted here.
func IsTopLevelModuleClass(sym *symbols.Symbol) bool {
	if sym == nil || !sym.IsModuleClass() {
		return false
	}

	// Trait implementation-carrier classes are never module classes, no
	// matter what flags later phases stamped onto them.
	report.AssertThat(!sym.Flags.Has(symbols.FlagImplClass),
		"trait implementation class %s cannot be a module class", sym)

	return !sym.IsNestedClass()
}

// IsStaticModuleClass returns whether the symbol is the implementation class
// of a singleton object whose original owner chain reaches a package scope
// through module classes only.  Such singletons receive a static field and
// static initializer in their enclosing class; all others must be
// instantiated lazily per enclosing instance.
func IsStaticModuleClass(sym *symbols.Symbol) bool {
	if sym == nil || !sym.IsModuleClass() || sym.Flags.Has(symbols.FlagImplClass) {
		return false
	}

	for o := sym.OriginalOwner; o != nil; o = o.OriginalOwner {
		if !o.IsPackage() && !o.IsModuleClass() {
			return false
		}
	}

	return true
}

// isOriginallyStaticOwner returns whether the given original owner provided
// a static context for its members before any lifting phase ran: package
// scopes do, and module classes do exactly when their own original owner
// did.
func isOriginallyStaticOwner(owner *symbols.Symbol) bool {
	if owner == nil || owner.IsPackage() {
		return true
	}

	return owner.IsModuleClass() && isOriginallyStaticOwner(owner.OriginalOwner)
}
