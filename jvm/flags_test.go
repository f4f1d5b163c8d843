package jvm

import (
	"testing"

	"github.com/SmileNJsx/scala/symbols"
)

func TestClassFlagsPlainClass(t *testing.T) {
	f := newFixture()
	c := f.class("C", 0)

	flags := ClassFlags(c)

	want := uint16(ACC_PUBLIC | ACC_SUPER)
	if flags != want {
		t.Errorf("expected flags 0x%04x, got 0x%04x", want, flags)
	}
}

func TestClassFlagsTopLevelModule(t *testing.T) {
	f := newFixture()
	m := f.module("Foo", f.pkg, 0)

	flags := ClassFlags(m)

	if flags&ACC_FINAL == 0 {
		t.Errorf("top-level module class must be final")
	}
	if flags&ACC_PUBLIC == 0 {
		t.Errorf("top-level module class must be public")
	}
}

func TestClassFlagsModuleConstructorIsPrivate(t *testing.T) {
	f := newFixture()
	m := f.module("Foo", f.pkg, 0)
	ctor := symbols.NewMethod("<init>", m, symbols.FlagConstructor)

	flags := ClassFlags(ctor)

	if flags&ACC_PRIVATE == 0 {
		t.Errorf("module class constructor must be private")
	}
	if flags&ACC_FINAL != 0 {
		t.Errorf("constructors are never final")
	}
}

func TestClassFlagsAbstractSuppressesFinal(t *testing.T) {
	f := newFixture()
	c := f.class("Marker", symbols.FlagFinal|symbols.FlagDeferred)

	flags := ClassFlags(c)

	if flags&ACC_ABSTRACT == 0 {
		t.Errorf("deferred class must be abstract")
	}
	if flags&ACC_FINAL != 0 {
		t.Errorf("abstract and final must never be set together")
	}
}

func TestClassFlagsExclusivity(t *testing.T) {
	f := newFixture()

	combos := []symbols.Flags{
		0,
		symbols.FlagFinal,
		symbols.FlagDeferred,
		symbols.FlagFinal | symbols.FlagDeferred,
		symbols.FlagFinal | symbols.FlagPrivate,
		symbols.FlagDeferred | symbols.FlagEnum,
	}

	for _, combo := range combos {
		c := f.class("C", combo)
		flags := ClassFlags(c)
		if flags&ACC_ABSTRACT != 0 && flags&ACC_FINAL != 0 {
			t.Errorf("flags 0x%04x for modifier set %b set both abstract and final", flags, combo)
		}
	}
}

func TestClassFlagsFinalityIgnoresLateFlags(t *testing.T) {
	f := newFixture()
	c := f.class("C", 0)

	// a later phase stamps the class final for unrelated reasons
	c.Flags |= symbols.FlagFinal

	if ClassFlags(c)&ACC_FINAL != 0 {
		t.Errorf("finality added after declaration must not be emitted")
	}
}

func TestClassFlagsNoFinalInsideInterface(t *testing.T) {
	f := newFixture()
	i := f.trait("I")
	m := symbols.NewMethod("f", i, symbols.FlagFinal)

	if ClassFlags(m)&ACC_FINAL != 0 {
		t.Errorf("members declared inside a trait are never final")
	}
}

func TestClassFlagsDirectBits(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name string
		in   symbols.Flags
		want uint16
	}{
		{"static", symbols.FlagStatic, ACC_STATIC},
		{"bridge", symbols.FlagBridge, ACC_BRIDGE | ACC_SYNTHETIC},
		{"artifact", symbols.FlagArtifact, ACC_SYNTHETIC},
		{"enum", symbols.FlagEnum, ACC_ENUM},
		{"varargs", symbols.FlagVarargs, ACC_VARARGS},
		{"synchronized", symbols.FlagSynchronized, ACC_SYNCHRONIZED},
	}

	for _, tc := range cases {
		owner := f.class("Owner"+tc.name, 0)
		m := symbols.NewMethod("f", owner, tc.in)
		flags := ClassFlags(m)
		if flags&tc.want != tc.want {
			t.Errorf("%s: expected bits 0x%04x in 0x%04x", tc.name, tc.want, flags)
		}
	}
}

func TestFieldFlagsFinalityInversion(t *testing.T) {
	f := newFixture()
	owner := f.class("C", 0)

	cases := []struct {
		name      string
		flags     symbols.Flags
		wantFinal bool
	}{
		{"immutable", 0, true},
		{"mutable", symbols.FlagMutable, false},
		{"lazy", symbols.FlagLazy, false},
	}

	for _, tc := range cases {
		fld := symbols.NewField("x", owner, tc.flags)
		got := FieldFlags(fld)&ACC_FINAL != 0
		if got != tc.wantFinal {
			t.Errorf("%s field: final = %t, want %t", tc.name, got, tc.wantFinal)
		}
	}
}

func TestFieldFlagsMarkers(t *testing.T) {
	f := newFixture()
	owner := f.class("C", 0)

	fld := symbols.NewField("x", owner, symbols.FlagMutable)
	fld.Annotations = []symbols.Marker{symbols.MarkerTransient, symbols.MarkerVolatile}

	flags := FieldFlags(fld)
	if flags&ACC_TRANSIENT == 0 {
		t.Errorf("transient marker not translated")
	}
	if flags&ACC_VOLATILE == 0 {
		t.Errorf("volatile marker not translated")
	}
}
