package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Utility-Gods/charswap/internal/db"
	"github.com/Utility-Gods/charswap/internal/menu"
)

var errHistoryDisabled = errors.New("history is disabled")

func newHistoryCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded replacements, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := historyStore(e)
			if err != nil {
				return err
			}

			records, err := store.GetReplacements(limit)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), menu.RenderHistory(records))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of records to show (0 for all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded replacement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := historyStore(e)
			if err != nil {
				return err
			}
			if err := store.FlushDB(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})

	return cmd
}

func historyStore(e *env) (*db.Store, error) {
	if e.cfg == nil || !e.cfg.HistoryEnabled {
		return nil, errHistoryDisabled
	}
	if e.store == nil {
		return nil, fmt.Errorf("history database %s could not be opened", e.cfg.HistoryPath)
	}
	return e.store, nil
}
