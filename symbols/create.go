package symbols

// This file contains the constructors the front end (and the backend's test
// fixtures) use to build symbol graphs.  Constructors snapshot the original
// owner and flags at creation time; relocation performed by later phases must
// go through Relocate so the snapshots survive.

// NewPackage creates a package-scope symbol inside the given owner package.
// The owner is nil only for the root package.
func NewPackage(name string, owner *Symbol) *Symbol {
	return &Symbol{
		Name:          name,
		BinaryName:    qualify(owner, name),
		Kind:          KindPackage,
		Owner:         owner,
		OriginalOwner: owner,
	}
}

// NewClass creates a class, trait, or module-class symbol inside the given
// owner.  The binary name follows the class-file convention: package members
// are slash-qualified, nested classes are dollar-qualified, and module
// classes carry the module suffix.
func NewClass(name string, kind int, owner *Symbol, flags Flags) *Symbol {
	binaryName := ""
	switch {
	case owner == nil || owner.IsPackage():
		binaryName = qualify(owner, name)
	case owner.IsClass():
		binaryName = owner.BinaryName + "$" + name
	default:
		// A local class's binary name hangs off its enclosing class.
		if enc := owner.EnclosingClass(); enc != nil {
			binaryName = enc.BinaryName + "$" + name
		} else {
			binaryName = name
		}
	}

	if kind == KindModule {
		binaryName += ModuleSuffix
	}

	return &Symbol{
		Name:          name,
		BinaryName:    binaryName,
		Kind:          kind,
		Owner:         owner,
		OriginalOwner: owner,
		Flags:         flags,
		OriginalFlags: flags,
	}
}

// NewMethod creates a method or constructor symbol inside the given owner.
func NewMethod(name string, owner *Symbol, flags Flags) *Symbol {
	return &Symbol{
		Name:          name,
		Kind:          KindMethod,
		Owner:         owner,
		OriginalOwner: owner,
		Flags:         flags,
		OriginalFlags: flags,
	}
}

// NewField creates a field symbol inside the given owner.
func NewField(name string, owner *Symbol, flags Flags) *Symbol {
	return &Symbol{
		Name:          name,
		Kind:          KindField,
		Owner:         owner,
		OriginalOwner: owner,
		Flags:         flags,
		OriginalFlags: flags,
	}
}

// Declare appends a member to the symbol and returns the member.
func (s *Symbol) Declare(member *Symbol) *Symbol {
	s.Members = append(s.Members, member)
	return member
}

// Relocate rewrites the symbol's current owner, as the lambda-lift and
// flatten phases do when moving local classes to member position.  The
// original owner snapshot is left untouched.
func (s *Symbol) Relocate(newOwner *Symbol, addFlags Flags) {
	s.Owner = newOwner
	s.Flags |= addFlags | FlagLifted
}

// Pair links a plain class and its module class as companions.
func Pair(class, module *Symbol) {
	class.Companion = module
	module.Companion = class
}

// qualify joins an owner package's binary path and a simple name, eliding
// empty path segments.
func qualify(owner *Symbol, name string) string {
	if owner == nil || owner.BinaryName == "" {
		return name
	}

	return owner.BinaryName + "/" + name
}
