package symbols

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
)

// This file implements a TOML description format for class-symbol graphs.
// The production inbound interface of the backend is an in-memory graph
// handed over by the front end; the TOML form exists so the descriptor dump
// tool and test fixtures can describe graphs without a front end attached.

// tomlGraphFile represents a graph file as it is encoded in TOML.
type tomlGraphFile struct {
	Graph   *tomlGraph   `toml:"graph"`
	Classes []*tomlClass `toml:"classes"`
}

// tomlGraph represents the graph header.
type tomlGraph struct {
	Name                string `toml:"name"`
	CompilingPrimitives bool   `toml:"compiling-primitives"`
}

// tomlClass represents one class symbol as it is encoded in TOML.
type tomlClass struct {
	Name        string   `toml:"name"`
	Kind        string   `toml:"kind"`
	Package     string   `toml:"package,omitempty"`
	Owner       string   `toml:"owner,omitempty"`
	Local       bool     `toml:"local,omitempty"`
	Super       string   `toml:"super,omitempty"`
	Mixins      []string `toml:"mixins,omitempty"`
	Flags       []string `toml:"flags,omitempty"`
	Annotations []string `toml:"annotations,omitempty"`
	Companion   string   `toml:"companion,omitempty"`
	LiftedTo    string   `toml:"lifted-to,omitempty"`
}

// Graph is a loaded class-symbol graph together with the universe its
// references were resolved against.
type Graph struct {
	// The name of the graph, for display purposes only.
	Name string

	// Whether this graph represents the compilation of the primitive library.
	CompilingPrimitives bool

	// The universe the graph was resolved against.
	Universe *Universe

	// The loaded class symbols, in declaration order.
	Classes []*Symbol
}

var kindNames = map[string]int{
	"class":  KindClass,
	"trait":  KindTrait,
	"module": KindModule,
}

var flagNames = map[string]Flags{
	"final":        FlagFinal,
	"deferred":     FlagDeferred,
	"static":       FlagStatic,
	"bridge":       FlagBridge,
	"artifact":     FlagArtifact,
	"varargs":      FlagVarargs,
	"enum":         FlagEnum,
	"synchronized": FlagSynchronized,
	"private":      FlagPrivate,
	"mutable":      FlagMutable,
	"lazy":         FlagLazy,
	"impl":         FlagImplClass,
	"java":         FlagJavaDefined,
	"anonymous":    FlagAnonymous,
}

var markerNames = map[string]Marker{
	"remote":    MarkerRemote,
	"transient": MarkerTransient,
	"volatile":  MarkerVolatile,
}

// LoadGraph loads and resolves a symbol graph from a TOML file.  Errors here
// are expected user errors (a malformed or inconsistent graph file), not
// compiler defects, so they are returned rather than asserted.
func LoadGraph(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tgf := &tomlGraphFile{}
	if err := toml.Unmarshal(buff, tgf); err != nil {
		return nil, err
	}

	if tgf.Graph == nil || tgf.Graph.Name == "" {
		return nil, fmt.Errorf("missing graph name in %s", path)
	}

	graph := &Graph{
		Name:                tgf.Graph.Name,
		CompilingPrimitives: tgf.Graph.CompilingPrimitives,
		Universe:            NewUniverse(),
	}

	ld := &graphLoader{
		uni:      graph.Universe,
		packages: make(map[string]*Symbol),
		classes:  make(map[string]*Symbol),
	}
	ld.registerWellKnown()

	// First pass: create every class symbol so that the second pass can
	// resolve references between them regardless of declaration order.
	for _, tc := range tgf.Classes {
		sym, err := ld.createClass(tc)
		if err != nil {
			return nil, err
		}

		graph.Classes = append(graph.Classes, sym)
	}

	// Second pass: wire superclasses, mixins, companions, and relocations.
	for i, tc := range tgf.Classes {
		if err := ld.resolveClass(graph.Classes[i], tc); err != nil {
			return nil, err
		}
	}

	return graph, nil
}

// graphLoader holds the intermediate state of a graph load.
type graphLoader struct {
	uni      *Universe
	packages map[string]*Symbol
	classes  map[string]*Symbol
}

// registerWellKnown makes the universe's symbols referencable by binary name.
func (ld *graphLoader) registerWellKnown() {
	ld.classes[ld.uni.ObjectClass.BinaryName] = ld.uni.ObjectClass
	ld.classes[ld.uni.RemoteInterface.BinaryName] = ld.uni.RemoteInterface
	for _, p := range ld.uni.PrimitiveClasses {
		ld.classes[p.BinaryName] = p
	}
}

// packageFor returns the package symbol for a slash-separated path, creating
// the chain of package symbols on demand.
func (ld *graphLoader) packageFor(path string) *Symbol {
	if path == "" {
		return ld.uni.RootPackage
	}

	if pkg, ok := ld.packages[path]; ok {
		return pkg
	}

	parent := ld.uni.RootPackage
	if ndx := strings.LastIndexByte(path, '/'); ndx != -1 {
		parent = ld.packageFor(path[:ndx])
	}

	pkg := NewPackage(path[strings.LastIndexByte(path, '/')+1:], parent)
	ld.packages[path] = pkg
	return pkg
}

// createClass creates the symbol for one TOML class entry.
func (ld *graphLoader) createClass(tc *tomlClass) (*Symbol, error) {
	if tc.Name == "" {
		return nil, fmt.Errorf("class entry missing a name")
	}

	kind, ok := kindNames[tc.Kind]
	if !ok {
		return nil, fmt.Errorf("class %s has unknown kind `%s`", tc.Name, tc.Kind)
	}

	var flags Flags
	for _, name := range tc.Flags {
		bit, ok := flagNames[name]
		if !ok {
			return nil, fmt.Errorf("class %s has unknown flag `%s`", tc.Name, name)
		}
		flags |= bit
	}

	var owner *Symbol
	switch {
	case tc.Owner != "":
		enc, ok := ld.classes[tc.Owner]
		if !ok {
			return nil, fmt.Errorf("class %s declared inside unknown class %s", tc.Name, tc.Owner)
		}

		owner = enc
		if tc.Local {
			// A local class's lexical home is a method body, not the class
			// itself.
			owner = enc.Declare(NewMethod("<local>", enc, 0))
		}
	default:
		owner = ld.packageFor(tc.Package)
	}

	sym := NewClass(tc.Name, kind, owner, flags)

	for _, name := range tc.Annotations {
		marker, ok := markerNames[name]
		if !ok {
			return nil, fmt.Errorf("class %s has unknown annotation `%s`", tc.Name, name)
		}
		sym.Annotations = append(sym.Annotations, marker)
	}

	if owner.IsClass() {
		owner.Declare(sym)
	}

	if other, ok := ld.classes[sym.BinaryName]; ok && other != sym {
		return nil, fmt.Errorf("duplicate class %s", sym.BinaryName)
	}
	ld.classes[sym.BinaryName] = sym

	return sym, nil
}

// resolveClass wires the references of one created class symbol.
func (ld *graphLoader) resolveClass(sym *Symbol, tc *tomlClass) error {
	if tc.Super != "" {
		super, ok := ld.classes[tc.Super]
		if !ok {
			return fmt.Errorf("class %s extends unknown class %s", sym, tc.Super)
		}
		sym.Super = super
	} else if sym != ld.uni.ObjectClass {
		sym.Super = ld.uni.ObjectClass
	}

	for _, name := range tc.Mixins {
		mixin, ok := ld.classes[name]
		if !ok {
			return fmt.Errorf("class %s mixes in unknown trait %s", sym, name)
		}
		sym.Mixins = append(sym.Mixins, mixin)
	}

	if tc.Companion != "" {
		comp, ok := ld.classes[tc.Companion]
		if !ok {
			return fmt.Errorf("class %s paired with unknown companion %s", sym, tc.Companion)
		}
		Pair(sym, comp)
	}

	if tc.LiftedTo != "" {
		target, ok := ld.classes[tc.LiftedTo]
		if !ok {
			return fmt.Errorf("class %s lifted to unknown class %s", sym, tc.LiftedTo)
		}
		sym.Relocate(target, 0)
		target.Declare(sym)
	}

	return nil
}
