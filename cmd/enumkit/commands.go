package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/c360studio/enumkit/enum"
)

// newListCmd lists the registered vocabularies.
func newListCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered vocabularies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets := enum.Sets()
			slog.Debug("Listing vocabularies", "count", len(sets))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVARIANTS")
			for _, set := range sets {
				fmt.Fprintf(w, "%s\t%d\n", set.Name(), set.Len())
			}
			return w.Flush()
		},
	}
}

// newShowCmd renders one vocabulary's ordered variants.
func newShowCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "show <vocabulary>",
		Short: "Show a vocabulary's declared name/value pairs in declaration order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, ok := enum.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown vocabulary %q", args[0])
			}
			return render(cmd.OutOrStdout(), set, s.format)
		},
	}
}

// newCheckCmd tests whether a value is a member of a vocabulary.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <vocabulary> <value>",
		Short: "Test whether a value is one of a vocabulary's declared values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, ok := enum.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown vocabulary %q", args[0])
			}

			for _, candidate := range candidates(args[1]) {
				if set.IsValue(candidate) {
					fmt.Fprintf(cmd.OutOrStdout(), "%q is a value of %s\n", args[1], set.Name())
					return nil
				}
			}
			return fmt.Errorf("%q is not a value of %s", args[1], set.Name())
		},
	}
}

// candidates expands a raw command-line argument into the scalar readings a
// membership test should consider. The raw string always comes first;
// numeric and boolean readings follow when the argument parses as one.
func candidates(raw string) []any {
	out := []any{raw}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		out = append(out, n)
	} else if f, err := strconv.ParseFloat(raw, 64); err == nil {
		out = append(out, f)
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		out = append(out, b)
	}
	return out
}
