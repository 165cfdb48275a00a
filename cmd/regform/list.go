package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sandeepkv93/regform/internal/storage"
	"github.com/spf13/cobra"
)

func newListCommand(root *rootFlags) *cobra.Command {
	var filter storage.RegistrationListFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored registrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *root)
			if err != nil {
				return err
			}
			logFile, err := setupLogging(cfg.DebugLogPath)
			if err != nil {
				return err
			}
			defer logFile.Close()

			repo, err := storage.OpenSQLite(cfg.DBPath)
			if err != nil {
				return err
			}
			defer repo.Close()
			return printRegistrations(cmd.Context(), cmd.OutOrStdout(), repo, filter)
		},
	}
	cmd.Flags().StringVar(&filter.Email, "email", "", "only registrations for this email")
	cmd.Flags().StringVar(&filter.PaymentMethod, "method", "", "only registrations paid with this method")
	cmd.Flags().StringVar(&filter.ActivityID, "activity", "", "only registrations that include this activity id")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "maximum rows to print")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "rows to skip")
	return cmd
}

func printRegistrations(ctx context.Context, w io.Writer, repo storage.Repository, filter storage.RegistrationListFilter) error {
	if ctx == nil {
		ctx = context.Background()
	}
	items, err := repo.ListRegistrations(ctx, filter)
	if err != nil {
		return fmt.Errorf("list registrations: %w", err)
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "no registrations")
		return err
	}
	for _, r := range items {
		if _, err := fmt.Fprintf(w, "%s  %s  %-24s %-11s $%-4d %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.ID, r.Email, r.PaymentMethod, r.TotalCost, strings.Join(r.ActivityIDs, ","),
		); err != nil {
			return err
		}
	}
	return nil
}
