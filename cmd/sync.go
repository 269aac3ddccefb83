package cmd

import (
	"fmt"

	"param-host/core/document"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncDocument string
	syncSession  string
	syncRestore  bool
	syncSave     bool
	syncExport   string
)

// syncCmd reconciles once and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile a document once and print its values",
	Long: `Loads a parameter document, reconciles plugs for it, optionally restores
the session's saved plug values, pushes values and optionally saves or exports
them. The resulting values are printed as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		h, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer h.logger.Sync()

		svc, err := h.open(ctx, syncSession, syncDocument)
		if err != nil {
			return err
		}
		logg := h.logger.With(zap.String("session", svc.Session()))

		if syncRestore {
			res, err := svc.Restore(ctx)
			if err != nil {
				return fmt.Errorf("restore: %w", err)
			}
			logg.Info("Plug values restored",
				zap.Int("applied", res.Applied),
				zap.Strings("missing", res.Missing),
				zap.Int("failed", len(res.Failed)))
		}

		if err := svc.Refresh(); err != nil {
			return fmt.Errorf("push values: %w", err)
		}

		if syncSave {
			n, err := svc.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
			logg.Info("Plug values saved", zap.Int("plugs", n))
		}

		if syncExport != "" {
			key, err := svc.Export(ctx, document.Format(syncExport))
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			logg.Info("Values exported", zap.String("key", key))
		}

		values, err := svc.Values()
		if err != nil {
			return err
		}
		data, err := document.Marshal(values, document.FormatJSON)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVarP(&syncDocument, "document", "d", "", "Document path or object key (default: configured source)")
	syncCmd.Flags().StringVar(&syncSession, "session", "default", "Session name for snapshots and exports")
	syncCmd.Flags().BoolVar(&syncRestore, "restore", false, "Restore the session's saved plug values first")
	syncCmd.Flags().BoolVar(&syncSave, "save", false, "Save plug values after syncing")
	syncCmd.Flags().StringVar(&syncExport, "export", "", "Export values to the bucket in this format (yaml, json, toml)")
}
