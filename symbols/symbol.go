package symbols

// Symbol represents a fully resolved symbol produced by the front end.  The
// backend only ever consumes symbols: it never creates or rewrites them, with
// one exception -- later compiler phases may relocate a symbol upward in the
// lexical tree (eg. lifting a class declared in a method body up to member
// position).  Facts that such phases destroy are retained in the Original*
// snapshot fields, which are taken when the symbol is created and never
// touched again.
type Symbol struct {
	// The simple declared name of the symbol.
	Name string

	// BinaryName is the slash-separated, namespace-qualified name of the
	// symbol as it appears in the class-file format.  It is only meaningful
	// for class symbols.  The front end's name derivation guarantees its
	// shape; the backend performs no validation of it.
	BinaryName string

	// Kind indicates what this symbol denotes.  Must be one of the enumerated
	// symbol kinds.
	Kind int

	// Owner is the symbol's current lexical owner.  It is nil only for the
	// root package.
	Owner *Symbol

	// OriginalOwner is the symbol's lexical owner as recorded before any
	// phase relocated it.  For symbols that were never relocated it is equal
	// to Owner.  Never rewritten after symbol creation.
	OriginalOwner *Symbol

	// Super is the declared superclass.  It is nil for the root class and for
	// non-class symbols.
	Super *Symbol

	// Mixins is the declared list of trait parents, in declaration order.
	Mixins []*Symbol

	// Flags is the symbol's current modifier bitset.
	Flags Flags

	// OriginalFlags is the modifier bitset as recorded at declaration time,
	// before later phases added flags for unrelated reasons (eg. finality
	// markers added retroactively to classes).  Never rewritten.
	OriginalFlags Flags

	// Annotations is the closed set of recognized annotation markers attached
	// to this symbol.
	Annotations []Marker

	// Companion links a module class to its paired plain class and vice
	// versa.  It is nil when no companion exists.
	Companion *Symbol

	// Members is the list of symbols declared directly inside this symbol, in
	// declaration order.
	Members []*Symbol
}

// Enumeration of symbol kinds.
const (
	KindClass   = iota // A plain (possibly abstract) class.
	KindTrait          // A trait or interface.
	KindModule         // The implementation class of a singleton object.
	KindPackage        // A package scope.
	KindMethod         // A method or constructor.
	KindField          // A field.
)

// Marker identifies a recognized annotation.  The set of markers is closed:
// annotations are matched by tag, never by open-ended reflection.
type Marker int

const (
	MarkerRemote    Marker = iota // Implies the remote-interface supertype.
	MarkerTransient               // Field is transient.
	MarkerVolatile                // Field is volatile.
)

// ModuleSuffix is the suffix appended to a plain class name to form the name
// of the paired module implementation class.
const ModuleSuffix = "$"

// -----------------------------------------------------------------------------

// IsClass returns whether the symbol denotes a class, trait, or module class.
func (s *Symbol) IsClass() bool {
	return s.Kind == KindClass || s.Kind == KindTrait || s.Kind == KindModule
}

// IsInterface returns whether the symbol denotes a trait or interface.
func (s *Symbol) IsInterface() bool {
	return s.Kind == KindTrait
}

// IsModuleClass returns whether the symbol denotes the implementation class
// of a singleton object.
func (s *Symbol) IsModuleClass() bool {
	return s.Kind == KindModule
}

// IsPackage returns whether the symbol denotes a package scope.
func (s *Symbol) IsPackage() bool {
	return s.Kind == KindPackage
}

// IsConstructor returns whether the symbol denotes a construction routine.
func (s *Symbol) IsConstructor() bool {
	return s.Kind == KindMethod && s.Flags.Has(FlagConstructor)
}

// IsNestedClass returns whether the symbol's original lexical home is inside
// another class or a method body rather than directly inside a package.
func (s *Symbol) IsNestedClass() bool {
	return s.OriginalOwner != nil && !s.OriginalOwner.IsPackage()
}

// IsOriginallyLocal returns whether the symbol was originally declared inside
// a method body.  Later phases lift such symbols to member position, so the
// current owner cannot be trusted for this question.
func (s *Symbol) IsOriginallyLocal() bool {
	return s.OriginalOwner != nil && s.OriginalOwner.Kind == KindMethod
}

// IsAnonymous returns whether the symbol is an anonymous or
// compiler-synthesized local class with no declared name.
func (s *Symbol) IsAnonymous() bool {
	return s.Flags.Has(FlagAnonymous)
}

// WasFinal returns whether the symbol was declared final.  Finality added
// retroactively by later phases is deliberately not visible here.
func (s *Symbol) WasFinal() bool {
	return s.OriginalFlags.Has(FlagFinal)
}

// HasMarker returns whether the symbol carries the given annotation marker.
func (s *Symbol) HasMarker(m Marker) bool {
	for _, marker := range s.Annotations {
		if marker == m {
			return true
		}
	}

	return false
}

// EnclosingClass returns the nearest class symbol strictly enclosing this
// symbol, walking the current owner chain.  It returns nil if the symbol is
// not enclosed by any class.
func (s *Symbol) EnclosingClass() *Symbol {
	for o := s.Owner; o != nil; o = o.Owner {
		if o.IsClass() {
			return o
		}
	}

	return nil
}

// IsSubClassOf returns whether this class symbol is the same as or a
// transitive subtype of the given class symbol, considering both the
// superclass chain and all declared mixins.
func (s *Symbol) IsSubClassOf(other *Symbol) bool {
	if s == other {
		return true
	}

	if s.Super != nil && s.Super.IsSubClassOf(other) {
		return true
	}

	for _, mixin := range s.Mixins {
		if mixin.IsSubClassOf(other) {
			return true
		}
	}

	return false
}

// String returns the symbol's most specific printable name.
func (s *Symbol) String() string {
	if s.BinaryName != "" {
		return s.BinaryName
	}

	return s.Name
}
