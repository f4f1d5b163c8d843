package jvm

import (
	"github.com/SmileNJsx/scala/report"
	"github.com/SmileNJsx/scala/symbols"
)

// builder constructs class descriptors for one request chain.  A single
// top-level DescriptorOf call creates one builder; every recursive descriptor
// request triggered by that call flows through the same builder, so the
// builder knows which symbols its own chain is currently constructing and can
// hand their incomplete descriptors back when the class graph is cyclic.
type builder struct {
	ctx *Context

	// The set of symbols whose info this chain is currently computing.
	building map[*symbols.Symbol]struct{}

	// Descriptors owned by another builder that this chain took incomplete
	// to break a cross-builder wait cycle.  DescriptorOf settles them before
	// it returns.
	deferred []*ClassDescriptor
}

// getOrBuild returns the unique descriptor for the given class symbol,
// registering and populating a new one on a cache miss.
func (b *builder) getOrBuild(sym *symbols.Symbol) *ClassDescriptor {
	ctx := b.ctx
	uni := ctx.Universe

	report.AssertThat(sym != nil, "requested a class descriptor for a nil symbol")
	report.AssertThat(sym.IsClass(), "requested a class descriptor for non-class symbol %s", sym)
	report.AssertThat(!uni.IsBottomClass(sym), "no class descriptor exists for bottom class %s", sym)
	report.AssertThat(!uni.IsPrimitive(sym) || ctx.CompilingPrimitives,
		"descriptor for primitive class %s requested outside the primitive library", sym)

	ctx.mu.Lock()
	if d, ok := ctx.descriptors[sym]; ok {
		if _, mine := b.building[sym]; mine {
			// A cyclic reference routed back into this chain: hand out the
			// incomplete descriptor rather than deadlocking against
			// ourselves.  Its info becomes readable once the chain returns.
			ctx.mu.Unlock()
			return d
		}

		if owner := ctx.owners[d]; owner != nil && ctx.waitWouldCycle(b, owner) {
			// Another worker entered the same reference cycle from the other
			// end and is (transitively) waiting on a construction of ours.
			// Blocking here would wedge both chains, so take the incomplete
			// descriptor the way a same-chain cycle does.
			b.deferred = append(b.deferred, d)
			ctx.mu.Unlock()
			return d
		}

		ctx.waiting[b] = d
		ctx.mu.Unlock()

		<-d.done

		ctx.mu.Lock()
		delete(ctx.waiting, b)
		ctx.mu.Unlock()
		return d
	}

	// Register the descriptor before computing its info so that recursive
	// requests during construction resolve to this same instance.
	d := &ClassDescriptor{
		InternalName: sym.BinaryName,
		sym:          sym,
		done:         make(chan struct{}),
	}
	ctx.descriptors[sym] = d
	ctx.owners[d] = b
	ctx.mu.Unlock()

	b.building[sym] = struct{}{}
	d.info = b.buildInfo(sym)
	delete(b.building, sym)
	close(d.done)

	ctx.mu.Lock()
	delete(ctx.owners, d)
	ctx.mu.Unlock()

	return d
}

// buildInfo computes the full info payload for a class symbol.
func (b *builder) buildInfo(sym *symbols.Symbol) *ClassInfo {
	uni := b.ctx.Universe

	var super *ClassDescriptor
	if sym != uni.ObjectClass {
		superSym := sym.Super

		if sym.IsInterface() {
			report.AssertThat(superSym == uni.ObjectClass,
				"trait %s must directly extend %s", sym, uni.ObjectClass)
		} else {
			// The primitive value classes are exempt while the primitive
			// library itself is being compiled.
			validSuper := superSym != nil && superSym.IsClass() && !superSym.IsInterface()
			report.AssertThat(validSuper || uni.IsPrimitive(sym),
				"class %s lacks a valid non-trait superclass", sym)
		}

		if superSym != nil {
			super = b.getOrBuild(superSym)
		}
	}

	ifaceSyms := minimizeInterfaces(sym, b.parentInterfaces(sym))
	interfaces := make([]*ClassDescriptor, len(ifaceSyms))
	for i, iface := range ifaceSyms {
		interfaces[i] = b.getOrBuild(iface)
	}

	memberSyms := memberClassSymbols(sym)
	members := make([]*ClassDescriptor, len(memberSyms))
	for i, m := range memberSyms {
		members[i] = b.getOrBuild(m)
	}

	return &ClassInfo{
		Super:         super,
		Interfaces:    interfaces,
		Flags:         ClassFlags(sym),
		MemberClasses: members,
		Nested:        b.buildNestedInfo(sym),
	}
}

// parentInterfaces returns the declared direct parent interfaces of a class,
// including interfaces implied by annotation markers.
func (b *builder) parentInterfaces(sym *symbols.Symbol) []*symbols.Symbol {
	parents := make([]*symbols.Symbol, 0, len(sym.Mixins)+1)
	parents = append(parents, sym.Mixins...)

	if sym.HasMarker(symbols.MarkerRemote) {
		parents = append(parents, b.ctx.Universe.RemoteInterface)
	}

	return parents
}

// memberClassSymbols collects every class symbol declared inside the given
// class or its companion, reduced by canonical member selection wherever the
// same member name is declared twice across the pair.
func memberClassSymbols(sym *symbols.Symbol) []*symbols.Symbol {
	var decls []*symbols.Symbol
	for _, m := range sym.Members {
		if m.IsClass() {
			decls = append(decls, m)
		}
	}

	if comp := sym.Companion; comp != nil {
		for _, m := range comp.Members {
			if m.IsClass() {
				decls = append(decls, m)
			}
		}
	}

	byName := make(map[string][]*symbols.Symbol)
	var order []string
	for _, d := range decls {
		if _, ok := byName[d.Name]; !ok {
			order = append(order, d.Name)
		}
		byName[d.Name] = append(byName[d.Name], d)
	}

	var out []*symbols.Symbol
	for _, name := range order {
		group := byName[name]
		switch len(group) {
		case 1:
			out = append(out, group[0])
		case 2:
			out = append(out, canonicalMembers(sym, group[0], group[1])...)
		default:
			report.ICE("class %s declares %d member classes named %s, expected one or two",
				sym, len(group), name)
		}
	}

	return out
}

// canonicalMembers decides which of a same-named member-class pair survives.
// A foreign-interop module class is a front-end fabrication standing in for
// the statics of the class it is paired with, so the class symbol alone
// represents both; a native class/module pair keeps both symbols.  A
// different interop boundary would swap out this policy.
func canonicalMembers(owner, a, b *symbols.Symbol) []*symbols.Symbol {
	if a.IsModuleClass() && a.Flags.Has(symbols.FlagJavaDefined) {
		report.AssertThat(!b.IsModuleClass(), "member pair %s of %s has no class symbol", a.Name, owner)
		return []*symbols.Symbol{b}
	}

	if b.IsModuleClass() && b.Flags.Has(symbols.FlagJavaDefined) {
		report.AssertThat(!a.IsModuleClass(), "member pair %s of %s has no class symbol", b.Name, owner)
		return []*symbols.Symbol{a}
	}

	return []*symbols.Symbol{a, b}
}
