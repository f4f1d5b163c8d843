package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SmileNJsx/scala/report"
	"github.com/SmileNJsx/scala/symbols"
)

func testGraph() *symbols.Graph {
	uni := symbols.NewUniverse()
	pkg := symbols.NewPackage("p", uni.RootPackage)

	cls := symbols.NewClass("C", symbols.KindClass, pkg, 0)
	cls.Super = uni.ObjectClass

	return &symbols.Graph{
		Name:     "demo",
		Universe: uni,
		Classes:  []*symbols.Symbol{cls},
	}
}

func TestCompileWritesListing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.txt")
	profile := &BuildProfile{
		Name:          "demo",
		OutputPath:    out,
		TargetRelease: 17,
		LogLevel:      report.LogLevelSilent,
	}

	NewBackend(testGraph(), profile).Compile()

	buff, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read descriptor listing: %s", err)
	}

	listing := string(buff)
	for _, want := range []string{"target Java 17", "class p/C", "super: java/lang/Object"} {
		if !strings.Contains(listing, want) {
			t.Errorf("listing missing %q:\n%s", want, listing)
		}
	}
}

func TestProfilePrimitiveGateReachesContext(t *testing.T) {
	graph := testGraph()
	graph.Classes = append(graph.Classes, graph.Universe.PrimitiveClasses...)

	profile := &BuildProfile{
		Name:                "primitives",
		TargetRelease:       DefaultTargetRelease,
		CompilingPrimitives: true,
		LogLevel:            report.LogLevelSilent,
	}

	// primitive descriptors are only buildable when the gate is set, so this
	// completing at all proves the profile flag reached the backend context
	NewBackend(graph, profile).Compile()
}
