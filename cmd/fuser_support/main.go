// fuser_support prints the operator-support table of the fusion backend: the set of
// fully-qualified operator names the graph partitioner will hand to it.
//
// Usage:
//
//	fuser_support [-use_only_legacy_ops] [-filter=substring] [-output=file]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/fuser/pkg/core/fuser"
	"github.com/gomlx/fuser/pkg/core/ops"
	_ "github.com/gomlx/fuser/pkg/core/refs" // Registers the canonical reference decompositions.
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagLegacyOnly = flag.Bool("use_only_legacy_ops", false,
		"Build the table from the hand-curated legacy list only, "+
			"skipping the decomposition registry and the primitives namespace.")
	flagFilter = flag.String("filter", "",
		"Only report operators whose name contains this substring.")
	flagOutput = flag.String("output", "",
		"If set, also write the operator names to this file, one per line.")
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if len(flag.Args()) > 0 {
		klog.Errorf("Unexpected arguments %q. See 'fuser_support -help'.", flag.Args())
		os.Exit(1)
	}

	support := fuser.New(ops.Decompositions, ops.Prims, *flagLegacyOnly)
	names := support.SupportedOps()
	if *flagFilter != "" {
		filtered := make([]string, 0, len(names))
		for _, name := range names {
			if strings.Contains(name, *flagFilter) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}

	if *flagOutput != "" {
		must.M(os.WriteFile(*flagOutput, []byte(strings.Join(names, "\n")+"\n"), 0644))
	}

	table := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 {
				return headerRowStyle
			}
			if row%2 == 0 {
				return oddRowStyle
			}
			return evenRowStyle
		}).
		Headers("Operator", "Namespace")
	for _, name := range names {
		table.Row(name, namespaceOf(name))
	}
	fmt.Println(table)
	fmt.Printf("%s operators supported by the fusion backend.\n", humanize.Comma(int64(len(names))))
	if !fuser.HasNativeFusion() {
		fmt.Println("Note: no native fusion binding is registered in this build.")
	}
}

// namespaceOf reports which part of the operator namespace a qualified name comes from,
// e.g. "core" for "ops.core.add"; builtins like "getattr" have no namespace.
func namespaceOf(name string) string {
	rest, found := strings.CutPrefix(name, "ops.")
	if !found {
		return "builtin"
	}
	if idx := strings.Index(rest, "."); idx > 0 {
		return rest[:idx]
	}
	return "builtin"
}
