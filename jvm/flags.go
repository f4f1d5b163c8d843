package jvm

import (
	"github.com/SmileNJsx/scala/symbols"
)

// Class-file access flags.
const ACC_PUBLIC = 0x1
const ACC_PRIVATE = 0x2
const ACC_PROTECTED = 0x4
const ACC_STATIC = 0x8
const ACC_FINAL = 0x10
const ACC_SUPER = 0x20
const ACC_SYNCHRONIZED = 0x20
const ACC_VOLATILE = 0x40
const ACC_BRIDGE = 0x40
const ACC_TRANSIENT = 0x80
const ACC_VARARGS = 0x80
const ACC_NATIVE = 0x100
const ACC_INTERFACE = 0x200
const ACC_ABSTRACT = 0x400
const ACC_STRICT = 0x800
const ACC_SYNTHETIC = 0x1000
const ACC_ANNOTATION = 0x2000
const ACC_ENUM = 0x4000

// ClassFlags computes the access flags for a class, trait, module class, or
// method symbol.
//
// Only ACC_PUBLIC and ACC_PRIVATE are ever emitted for this family of
// symbols: after nested classes are lifted to the top level, sibling nested
// classes could observe protected members, so protected visibility cannot be
// preserved faithfully and is widened to public instead.
func ClassFlags(sym *symbols.Symbol) uint16 {
	privateFlag := sym.Flags.Has(symbols.FlagPrivate) ||
		(sym.IsConstructor() && IsTopLevelModuleClass(sym.Owner))

	// Finality is judged on the flags recorded at declaration time: later
	// phases stamp classes final for unrelated reasons.  Mutable and lazy
	// fields must never be final -- the memory model allows reorderings
	// around final fields that are unsound once a field is reassignable or
	// computed after construction.
	finalFlag := (sym.WasFinal() || IsTopLevelModuleClass(sym)) &&
		!(sym.Owner != nil && sym.Owner.IsInterface()) &&
		!sym.IsConstructor() &&
		!sym.Flags.HasAny(symbols.FlagMutable|symbols.FlagLazy)

	var flags uint16
	if privateFlag {
		flags |= ACC_PRIVATE
	} else {
		flags |= ACC_PUBLIC
	}

	if sym.Flags.Has(symbols.FlagDeferred) {
		flags |= ACC_ABSTRACT
	}

	if sym.IsInterface() {
		flags |= ACC_INTERFACE
	}

	// ACC_ABSTRACT|ACC_FINAL is illegal in the class-file format, but the
	// front end produces it for classes meant to be neither instantiated nor
	// extended (the primitive value classes).  Final loses.
	if finalFlag && !sym.Flags.Has(symbols.FlagDeferred) {
		flags |= ACC_FINAL
	}

	if sym.Flags.Has(symbols.FlagStatic) {
		flags |= ACC_STATIC
	}

	if sym.Flags.Has(symbols.FlagBridge) {
		flags |= ACC_BRIDGE | ACC_SYNTHETIC
	}

	if sym.Flags.Has(symbols.FlagArtifact) {
		flags |= ACC_SYNTHETIC
	}

	if sym.IsClass() && !sym.IsInterface() {
		flags |= ACC_SUPER
	}

	if sym.Flags.Has(symbols.FlagEnum) {
		flags |= ACC_ENUM
	}

	if sym.Flags.Has(symbols.FlagVarargs) {
		flags |= ACC_VARARGS
	}

	if sym.Flags.Has(symbols.FlagSynchronized) {
		flags |= ACC_SYNCHRONIZED
	}

	return flags
}

// FieldFlags computes the access flags for a field symbol.  Fields invert the
// finality default: a field is final unless it is declared mutable or lazy.
func FieldFlags(sym *symbols.Symbol) uint16 {
	flags := ClassFlags(sym)

	if sym.Flags.Has(symbols.FlagTransient) || sym.HasMarker(symbols.MarkerTransient) {
		flags |= ACC_TRANSIENT
	}

	if sym.Flags.Has(symbols.FlagVolatile) || sym.HasMarker(symbols.MarkerVolatile) {
		flags |= ACC_VOLATILE
	}

	if !sym.Flags.HasAny(symbols.FlagMutable | symbols.FlagLazy | symbols.FlagDeferred) {
		flags |= ACC_FINAL
	}

	return flags
}
