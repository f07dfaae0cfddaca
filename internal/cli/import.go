package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quadrel/quadrel/internal/store"
)

// ImportResult holds the outcome of an import for JSON output.
type ImportResult struct {
	Graphs int `json:"graphs"`
	Quads  int `json:"quads"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <manifest.cue>",
		Short: "Import quadruples from a CUE manifest",
		Long: `Import quadruples from a CUE quad manifest.

Each named graph in the manifest is merged in its own transaction:
either every quadruple of the graph lands or none of it does.
Re-importing the same manifest is a no-op.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runImport(opts *RootOptions, manifestPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	manifest, loadErrors := LoadManifest(manifestPath, LoadModeCollectAll)
	if len(loadErrors) > 0 {
		for _, err := range loadErrors {
			formatter.VerboseLog("%v", err)
		}
		first := loadErrors[0]
		code := ErrCodeGeneric
		if loadErr, ok := first.(*LoadError); ok {
			code = loadErr.Code
		}
		formatter.Error(code, first.Error(), fmt.Sprintf("%d error(s) in manifest", len(loadErrors)))
		return WrapExitError(ExitCommandError, "manifest load failed", first)
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer s.Close()

	for _, graph := range manifest.Graphs {
		formatter.VerboseLog("merging %d quad(s) into %s", len(graph.Quads), graph.Name)
		if err := s.MergeGraph(cmd.Context(), graph.Quads, graph.Name); err != nil {
			formatter.Error(ErrCodeStoreFailed, err.Error(), graph.Name)
			return WrapExitError(ExitFailure, fmt.Sprintf("merge graph %s", graph.Name), err)
		}
	}

	result := ImportResult{Graphs: len(manifest.Graphs), Quads: manifest.QuadCount()}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("✓ Imported %d quadruple(s) across %d graph(s)", result.Quads, result.Graphs))
}
