package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quadrel/quadrel/internal/pattern"
	"github.com/quadrel/quadrel/internal/rdf"
	"github.com/quadrel/quadrel/internal/store"
)

// QuadView is the output representation of one stored quadruple.
type QuadView struct {
	ID        string `json:"id"` // decimal quad identity, usable with delete --id
	Context   string `json:"context"`
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	Flavor    string `json:"flavor"`
}

// queryFlags holds the optional pattern bindings. A flag left unset is an
// unbound component.
type queryFlags struct {
	context   string
	subject   string
	predicate string
	object    string
	literal   string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Retrieve quadruples matching a pattern",
		Long: `Retrieve every quadruple matching the bound components.

Any combination of --context, --subject and --predicate may be bound,
plus at most one of --object (resource) and --literal. With no flags the
whole store is returned.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, flags, cmd)
		},
	}

	cmd.Flags().StringVar(&flags.context, "context", "", "bind the context (named graph)")
	cmd.Flags().StringVar(&flags.subject, "subject", "", "bind the subject")
	cmd.Flags().StringVar(&flags.predicate, "predicate", "", "bind the predicate")
	cmd.Flags().StringVar(&flags.object, "object", "", "bind the object as a resource")
	cmd.Flags().StringVar(&flags.literal, "literal", "", "bind the object as a literal")

	return cmd
}

func runQuery(opts *RootOptions, flags *queryFlags, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	p := patternFromFlags(flags, cmd)
	if err := p.Validate(); err != nil {
		formatter.Error(ErrCodeBothObjectKinds, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid pattern", err)
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer s.Close()

	quads, err := s.Select(cmd.Context(), p)
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "select", err)
	}

	views := make([]QuadView, 0, len(quads))
	for _, q := range quads {
		views = append(views, quadView(q))
	}

	if opts.Format == "json" {
		return formatter.Success(views)
	}

	for _, v := range views {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t[%s]\t%s\n",
			v.Context, v.Subject, v.Predicate, v.Object, v.Flavor, v.ID)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d quadruple(s)\n", len(views))
	return nil
}

// patternFromFlags maps the changed flags onto pattern bindings. Only
// flags the caller actually set become bound components, so an explicit
// empty string still binds.
func patternFromFlags(flags *queryFlags, cmd *cobra.Command) pattern.Pattern {
	var p pattern.Pattern
	if cmd.Flags().Changed("context") {
		p.Context = pattern.Bind(flags.context)
	}
	if cmd.Flags().Changed("subject") {
		p.Subject = pattern.Bind(flags.subject)
	}
	if cmd.Flags().Changed("predicate") {
		p.Predicate = pattern.Bind(flags.predicate)
	}
	if cmd.Flags().Changed("object") {
		p.Object = pattern.Bind(flags.object)
	}
	if cmd.Flags().Changed("literal") {
		p.Literal = pattern.Bind(flags.literal)
	}
	return p
}

func quadView(q rdf.Quad) QuadView {
	return QuadView{
		ID:        strconv.FormatUint(rdf.QuadID(q), 10),
		Context:   q.Context,
		Subject:   q.Subject,
		Predicate: q.Predicate,
		Object:    q.Object,
		Flavor:    q.Flavor.String(),
	}
}
