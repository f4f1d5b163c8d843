package jvm

import (
	"strings"

	"github.com/SmileNJsx/scala/report"
	"github.com/SmileNJsx/scala/symbols"
)

// buildNestedInfo computes the nested-class attribute fields for a class
// symbol.  It returns nil exactly when the symbol's original lexical home is
// a package scope: only classes nested in another class or in a method body
// get an entry in the nested-class attribute table.
func (b *builder) buildNestedInfo(sym *symbols.Symbol) *NestedInfo {
	report.AssertThat(sym.IsClass(), "cannot compute nested-class info for non-class symbol %s", sym)

	if sym.OriginalOwner == nil || sym.OriginalOwner.IsPackage() {
		return nil
	}

	// Static-ness is judged against the pre-lift shape: lifting local classes
	// to member position would otherwise make every one of them look like a
	// static nested class.
	isStatic := sym.OriginalFlags.Has(symbols.FlagStatic) ||
		isOriginallyStaticOwner(sym.OriginalOwner)

	// A foreign-interop source file has no notion of a module class, so when
	// a foreign-defined symbol is lexically owned by one, the metadata must
	// record the companion class that the source actually declared.
	encSym := sym.EnclosingClass()
	if sym.Flags.Has(symbols.FlagJavaDefined) && sym.Owner != nil && sym.Owner.IsModuleClass() {
		comp := sym.Owner.Companion
		report.AssertThat(comp != nil, "foreign-interop module class %s has no companion", sym.Owner)
		encSym = comp
	}
	report.AssertThat(encSym != nil, "nested class %s has no enclosing class", sym)

	// Classes whose original home was a method body record no outer name,
	// and anonymous classes record no inner name, by format convention.
	outerName := ""
	if !sym.IsOriginallyLocal() && !sym.IsAnonymous() {
		outerName = encSym.BinaryName
		if IsTopLevelModuleClass(encSym) {
			outerName = strings.TrimSuffix(outerName, symbols.ModuleSuffix)
		}
	}

	innerName := ""
	if !sym.IsAnonymous() {
		innerName = sym.Name
		if sym.IsModuleClass() {
			innerName += symbols.ModuleSuffix
		}
	}

	return &NestedInfo{
		EnclosingClass: b.getOrBuild(encSym),
		OuterName:      outerName,
		InnerName:      innerName,
		IsStaticNested: isStatic,
	}
}
