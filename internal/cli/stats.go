package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quadrel/quadrel/internal/store"
)

// StatsResult holds store statistics for JSON output.
type StatsResult struct {
	Quads int64 `json:"quads"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stats",
		Short:         "Show store statistics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := store.Open(opts.DBPath)
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer s.Close()

	n, err := s.Count(cmd.Context())
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "count", err)
	}

	if opts.Format == "json" {
		return formatter.Success(StatsResult{Quads: n})
	}
	return formatter.Success(fmt.Sprintf("%d quadruple(s) stored", n))
}
