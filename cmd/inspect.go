package cmd

import (
	"fmt"
	"io"
	"strings"

	"param-host/core/reconcile"
	"param-host/feature/integrity/checks"
	"param-host/feature/parameters"

	"github.com/spf13/cobra"
)

var inspectDocument string

// inspectCmd prints what a document reconciles to.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the plug tree a document reconciles to",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		h, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer h.logger.Sync()

		svc, err := h.open(ctx, "inspect", inspectDocument)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Source: %s\n\n", svc.Source())
		printPlugs(out, svc.Plugs(), 0)

		fmt.Fprintln(out, "\nAdapters:")
		for _, name := range svc.Adapters() {
			fmt.Fprintf(out, "  %s\n", name)
		}

		return svc.WithView(func(v reconcile.View) {
			printShape(out, checks.CheckShape(v, svc.ExcludeKey()))
		})
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectDocument, "document", "d", "", "Document path or object key (default: configured source)")
}

func printPlugs(w io.Writer, node parameters.PlugNode, depth int) {
	indent := strings.Repeat("  ", depth)
	if node.Value != nil {
		fmt.Fprintf(w, "%s%s (%s) = %v\n", indent, node.Name, node.Type, node.Value)
	} else {
		fmt.Fprintf(w, "%s%s (%s)\n", indent, node.Name, node.Type)
	}
	for _, child := range node.Children {
		printPlugs(w, child, depth+1)
	}
}

func printShape(w io.Writer, report *checks.ShapeReport) {
	fmt.Fprintf(w, "\nShape: %s\n", report.Status)
	for _, section := range []struct {
		label string
		paths []string
	}{
		{"Excluded", report.Excluded},
		{"Unadapted", report.Unadapted},
		{"Missing", report.Missing},
		{"Stale", report.Stale},
	} {
		if len(section.paths) > 0 {
			fmt.Fprintf(w, "  %s: %s\n", section.label, strings.Join(section.paths, ", "))
		}
	}
}
