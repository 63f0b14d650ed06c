package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cognicore/treener/pkg/treener"
	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/ner"
	"github.com/cognicore/treener/pkg/treener/store"
)

func (a *app) open(cmd *cobra.Command) (*treener.Engine, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	return treener.Open(cmd.Context(), cfg, a.logger)
}

func (a *app) openStore(cmd *cobra.Command) (*treener.Engine, store.Store, error) {
	e, err := a.open(cmd)
	if err != nil {
		return nil, nil, err
	}
	if e.Store() == nil {
		e.Close()
		return nil, nil, fmt.Errorf("%w: store backend is none", internalerr.ErrStoreUnavailable)
	}
	return e, e.Store(), nil
}

func (a *app) annotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotate FILE...",
		Short: "Label the trees in the given files and store them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			report, annotateErr := e.AnnotateFiles(cmd.Context(), args)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "trees\t%d\n", report.Trees)
			fmt.Fprintf(w, "leaves\t%d\n", report.Stats.Leaves)
			for _, l := range ner.Labels {
				fmt.Fprintf(w, "%s\t%d\n", l, report.Stats.Counts[l])
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if annotateErr != nil {
				return fmt.Errorf("%d of %d files failed: %w", len(report.Failed), len(args), annotateErr)
			}
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print the word and label of every leaf of a stored tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, st, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			labels, err := st.Labels(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, l := range labels {
				fmt.Fprintf(out, "%s\t%s\n", l.Word, l.Label)
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, st, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			recs, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range recs {
				fmt.Fprintf(w, "%s\t%d\t%d\n", r.Name, r.Leaves, r.Entities)
			}
			return w.Flush()
		},
	}
}
