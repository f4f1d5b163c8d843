package symbols

// Universe is the set of well-known symbols that exist in every compilation
// run: the root class, the bottom-type sentinels, the primitive value
// classes, and the interfaces implied by recognized annotation markers.  The
// backend consults it to validate superclass shapes and to reject symbols
// that can never have a legitimate class descriptor.
type Universe struct {
	// RootPackage is the empty root package scope.
	RootPackage *Symbol

	// ObjectClass is the root of the class hierarchy (`java/lang/Object`).
	// It is the only class with no superclass.
	ObjectClass *Symbol

	// NothingClass and NullClass are the two bottom-type sentinels.  They
	// exist in the front end's type lattice only; no class descriptor may
	// ever be requested for them.
	NothingClass *Symbol
	NullClass    *Symbol

	// RemoteInterface is the interface implied by the remotability marker
	// (`java/rmi/Remote`).
	RemoteInterface *Symbol

	// PrimitiveClasses is the allowlisted set of primitive value classes.
	// Descriptors for these may only be requested while the primitive
	// library itself is being compiled.
	PrimitiveClasses []*Symbol

	primitiveSet map[*Symbol]struct{}
}

// Simple names of the primitive value classes.
var primitiveNames = []string{
	"Unit", "Boolean", "Char", "Byte", "Short", "Int", "Long", "Float", "Double",
}

// NewUniverse creates the universe for a single compilation run.
func NewUniverse() *Universe {
	root := NewPackage("", nil)
	java := NewPackage("java", root)
	javaLang := NewPackage("lang", java)
	javaRMI := NewPackage("rmi", java)
	scala := NewPackage("scala", root)

	u := &Universe{
		RootPackage:  root,
		primitiveSet: make(map[*Symbol]struct{}),
	}

	u.ObjectClass = NewClass("Object", KindClass, javaLang, 0)
	u.RemoteInterface = NewClass("Remote", KindTrait, javaRMI, 0)
	u.RemoteInterface.Super = u.ObjectClass

	// The bottom sentinels subtype everything; their superclass is irrelevant
	// because no descriptor is ever built for them.
	u.NothingClass = NewClass("Nothing", KindClass, scala, FlagFinal|FlagDeferred)
	u.NullClass = NewClass("Null", KindClass, scala, FlagFinal|FlagDeferred)

	// The primitive value classes carry both the deferred and final flags so
	// that they can be neither instantiated nor extended.
	for _, name := range primitiveNames {
		p := NewClass(name, KindClass, scala, FlagFinal|FlagDeferred)
		p.Super = u.ObjectClass
		u.PrimitiveClasses = append(u.PrimitiveClasses, p)
		u.primitiveSet[p] = struct{}{}
	}

	return u
}

// IsPrimitive returns whether the given symbol is one of the allowlisted
// primitive value classes.
func (u *Universe) IsPrimitive(sym *Symbol) bool {
	_, ok := u.primitiveSet[sym]
	return ok
}

// IsBottomClass returns whether the given symbol is one of the two
// bottom-type sentinels.
func (u *Universe) IsBottomClass(sym *Symbol) bool {
	return sym == u.NothingClass || sym == u.NullClass
}
