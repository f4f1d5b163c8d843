package cmd

import (
	"fmt"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/SmileNJsx/scala/jvm"
	"github.com/SmileNJsx/scala/report"
	"github.com/SmileNJsx/scala/symbols"

	"github.com/pterm/pterm"
)

// Backend drives descriptor construction for every class in a loaded symbol
// graph and renders the results.  It stands where the class-file emitter
// would: everything it prints is exactly the descriptor surface the emitter
// consumes.
type Backend struct {
	// The symbol graph being compiled.
	graph *symbols.Graph

	// The backend context for this run.
	ctx *jvm.Context

	// The current build profile.
	profile *BuildProfile
}

// NewBackend creates a new backend for the given graph and profile.
func NewBackend(graph *symbols.Graph, profile *BuildProfile) *Backend {
	ctx := jvm.NewContext(graph.Universe)

	// either the project file or the graph itself may declare the primitive
	// library build
	ctx.CompilingPrimitives = graph.CompilingPrimitives || profile.CompilingPrimitives

	return &Backend{
		graph:   graph,
		ctx:     ctx,
		profile: profile,
	}
}

// Compile builds the descriptor for every class in the graph and renders the
// results in declaration order.  Construction runs one worker per class, as
// it would with concurrently compiling units; the shared cache guarantees
// each class still gets exactly one descriptor.
func (b *Backend) Compile() {
	descs := make([]*jvm.ClassDescriptor, len(b.graph.Classes))

	var wg sync.WaitGroup
	for i, cls := range b.graph.Classes {
		wg.Add(1)
		go func(i int, cls *symbols.Symbol) {
			defer wg.Done()
			descs[i] = b.ctx.DescriptorOf(cls)
		}(i, cls)
	}
	wg.Wait()

	if b.profile.LogLevel >= report.LogLevelVerbose {
		report.PrintInfoMessage("Graph", b.graph.Name)
		report.PrintInfoMessage("Target", fmt.Sprintf("Java %d (class file %d.0)",
			b.profile.TargetRelease, b.profile.ClassfileMajorVersion()))
		for _, d := range descs {
			b.renderDescriptor(d)
		}
	}

	if b.profile.OutputPath != "" {
		b.writeListing(descs)
	}
}

// renderDescriptor prints the emitter-facing surface of one descriptor.
func (b *Backend) renderDescriptor(d *jvm.ClassDescriptor) {
	pterm.Println()
	report.InfoStyleBG.Print("Class")
	report.InfoColorFG.Println(" " + d.InternalName)

	for _, line := range descriptorLines(d.Info()) {
		pterm.Println(line)
	}
}

// writeListing writes the plain-text descriptor listing to the profile's
// output path.
func (b *Backend) writeListing(descs []*jvm.ClassDescriptor) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph %s (target Java %d, class file %d.0)\n",
		b.graph.Name, b.profile.TargetRelease, b.profile.ClassfileMajorVersion())

	for _, d := range descs {
		fmt.Fprintf(&sb, "\nclass %s\n", d.InternalName)
		for _, line := range descriptorLines(d.Info()) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}

	if err := ioutil.WriteFile(b.profile.OutputPath, []byte(sb.String()), 0644); err != nil {
		report.ReportFatal("unable to write descriptor listing to `%s`: %s",
			b.profile.OutputPath, err.Error())
	}
}

// descriptorLines formats the emitter-facing fields of one descriptor, shared
// by the console renderer and the listing writer.
func descriptorLines(info *jvm.ClassInfo) []string {
	lines := []string{fmt.Sprintf("  flags: 0x%04x (%s)", info.Flags, classFlagString(info.Flags))}

	if info.Super != nil {
		lines = append(lines, fmt.Sprintf("  super: %s", info.Super.InternalName))
	}

	for _, iface := range info.Interfaces {
		lines = append(lines, fmt.Sprintf("  interface: %s", iface.InternalName))
	}

	for _, member := range info.MemberClasses {
		lines = append(lines, fmt.Sprintf("  member: %s", member.InternalName))
	}

	if nested := info.Nested; nested != nil {
		lines = append(lines,
			fmt.Sprintf("  nested in: %s", nested.EnclosingClass.InternalName),
			fmt.Sprintf("    outer name: %s", orNone(nested.OuterName)),
			fmt.Sprintf("    inner name: %s", orNone(nested.InnerName)),
			fmt.Sprintf("    static: %t", nested.IsStaticNested))
	}

	return lines
}

// classFlagNames orders the class-level flag bits for display.
var classFlagNames = []struct {
	bit  uint16
	name string
}{
	{jvm.ACC_PUBLIC, "public"},
	{jvm.ACC_PRIVATE, "private"},
	{jvm.ACC_FINAL, "final"},
	{jvm.ACC_SUPER, "super"},
	{jvm.ACC_INTERFACE, "interface"},
	{jvm.ACC_ABSTRACT, "abstract"},
	{jvm.ACC_STATIC, "static"},
	{jvm.ACC_SYNTHETIC, "synthetic"},
	{jvm.ACC_ENUM, "enum"},
}

// classFlagString renders an access-flag bitmask using the class-level
// flag names.
func classFlagString(flags uint16) string {
	var names []string
	for _, fn := range classFlagNames {
		if flags&fn.bit != 0 {
			names = append(names, fn.name)
		}
	}

	return strings.Join(names, " ")
}

// orNone substitutes a placeholder for an absent attribute name.
func orNone(name string) string {
	if name == "" {
		return "<none>"
	}

	return name
}
