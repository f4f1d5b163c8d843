package symbols

// Flags is a target-independent modifier bitset attached to every symbol by
// the front end.
type Flags uint32

const (
	FlagFinal        Flags = 1 << iota // Declared final.
	FlagDeferred                       // Declared abstract/deferred.
	FlagStatic                         // A static member.
	FlagBridge                         // A compiler-generated bridge method.
	FlagArtifact                       // A compiler-synthesized artifact.
	FlagVarargs                        // A variadic method.
	FlagEnum                           // An enum-like symbol.
	FlagSynchronized                   // Declared synchronized/guarded.
	FlagPrivate                        // Declared private.
	FlagMutable                        // A reassignable field or variable.
	FlagLazy                           // A lazily initialized field.
	FlagImplClass                      // A trait implementation-carrier class.
	FlagLifted                         // Relocated to member position by a later phase.
	FlagJavaDefined                    // Defined in a foreign-interop source file.
	FlagConstructor                    // A construction routine.
	FlagAnonymous                      // An anonymous or locally-synthesized class.
	FlagTransient                      // A transient field.
	FlagVolatile                       // A volatile field.
)

// Has returns whether all the given flag bits are set.
func (f Flags) Has(bits Flags) bool {
	return f&bits == bits
}

// HasAny returns whether any of the given flag bits are set.
func (f Flags) HasAny(bits Flags) bool {
	return f&bits != 0
}
