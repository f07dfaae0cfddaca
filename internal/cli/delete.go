package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quadrel/quadrel/internal/rdf"
	"github.com/quadrel/quadrel/internal/store"
)

// DeleteResult holds the outcome of a delete for JSON output.
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

// deleteFlags holds the mutually exclusive delete targets.
type deleteFlags struct {
	id        string
	context   string
	subject   string
	predicate string
	object    string
	literal   string
	all       bool
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete quadruples by identity or component",
		Long: `Delete quadruples from the store.

Exactly one target must be given: --id for a single quadruple, one of
--context/--subject/--predicate/--object/--literal for every quadruple
matching that component, or --all to clear the store. Object and literal
deletes are distinct: each touches only rows of its own flavor.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, flags, cmd)
		},
	}

	cmd.Flags().StringVar(&flags.id, "id", "", "delete the quadruple with this identity")
	cmd.Flags().StringVar(&flags.context, "context", "", "delete every quadruple in this context")
	cmd.Flags().StringVar(&flags.subject, "subject", "", "delete every quadruple with this subject")
	cmd.Flags().StringVar(&flags.predicate, "predicate", "", "delete every quadruple with this predicate")
	cmd.Flags().StringVar(&flags.object, "object", "", "delete every quadruple with this resource object")
	cmd.Flags().StringVar(&flags.literal, "literal", "", "delete every quadruple with this literal object")
	cmd.Flags().BoolVar(&flags.all, "all", false, "delete every quadruple")

	return cmd
}

func runDelete(opts *RootOptions, flags *deleteFlags, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	targets := 0
	for _, name := range []string{"id", "context", "subject", "predicate", "object", "literal", "all"} {
		if cmd.Flags().Changed(name) {
			targets++
		}
	}
	if targets != 1 {
		err := fmt.Errorf("exactly one delete target required, got %d", targets)
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid delete target", err)
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer s.Close()

	var deleted int64
	switch {
	case cmd.Flags().Changed("id"):
		id, parseErr := strconv.ParseUint(flags.id, 10, 64)
		if parseErr != nil {
			formatter.Error(ErrCodeGeneric, fmt.Sprintf("invalid id %q", flags.id), nil)
			return WrapExitError(ExitCommandError, "invalid id", parseErr)
		}
		deleted, err = s.DeleteByID(cmd.Context(), id)
	case cmd.Flags().Changed("context"):
		deleted, err = s.DeleteByComponent(cmd.Context(), rdf.KindContext, flags.context)
	case cmd.Flags().Changed("subject"):
		deleted, err = s.DeleteByComponent(cmd.Context(), rdf.KindSubject, flags.subject)
	case cmd.Flags().Changed("predicate"):
		deleted, err = s.DeleteByComponent(cmd.Context(), rdf.KindPredicate, flags.predicate)
	case cmd.Flags().Changed("object"):
		deleted, err = s.DeleteByComponent(cmd.Context(), rdf.KindObject, flags.object)
	case cmd.Flags().Changed("literal"):
		deleted, err = s.DeleteByComponent(cmd.Context(), rdf.KindLiteral, flags.literal)
	case flags.all:
		deleted, err = s.Clear(cmd.Context())
	}
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "delete", err)
	}

	if opts.Format == "json" {
		return formatter.Success(DeleteResult{Deleted: deleted})
	}
	return formatter.Success(fmt.Sprintf("✓ Deleted %d quadruple(s)", deleted))
}
