package cmd

import (
	"context"
	"fmt"

	"param-host/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixFlag           bool
	integrityDocument string
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the storage bucket, database and plug tree",
	Long:  `Runs every integrity check. Use a subcommand to run one check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), checkAll)
	},
}

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkStructure)
	},
}

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Check that stored parameter documents build",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkDocuments)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the snapshot table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkSchema)
	},
}

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Check that the plug tree matches the document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkShape)
	},
}

type integrityCheck int

const (
	checkStructure integrityCheck = 1 << iota
	checkDocuments
	checkSchema
	checkShape

	checkAll = checkStructure | checkDocuments | checkSchema | checkShape
)

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, documentsCmd, schemaCmd, shapeCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
	shapeCmd.Flags().StringVarP(&integrityDocument, "document", "d", "", "Document path or object key (default: configured source)")
}

// runIntegrityChecks logs every finding and returns an error only when a
// check could not run.
func runIntegrityChecks(ctx context.Context, which integrityCheck) error {
	h, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	logg := h.logger
	defer logg.Sync()

	var shape integrity.ShapeSource
	if which&checkShape != 0 {
		svc, err := h.open(ctx, "integrity", integrityDocument)
		if err != nil {
			return err
		}
		shape = svc
	}

	svc := integrity.NewService(h.store, h.cfg.Storage.Bucket, logg, h.db, shape)
	fixOnly := which == checkStructure && fixFlag

	if which&checkStructure != 0 {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fixOnly:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Fixing missing folders...")
			if err := svc.FixStructure(ctx, missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run 'integrity structure --fix' to create missing folders.")
		}
	}

	if which&checkDocuments != 0 {
		logg.Info("Checking parameter documents...")
		report, err := svc.CheckDocuments(ctx)
		if err != nil {
			return fmt.Errorf("documents check failed: %w", err)
		}
		logg.Info("Documents checked", zap.Int("valid", len(report.Valid)))
		for key, reason := range report.Invalid {
			logg.Warn("Invalid document", zap.String("key", key), zap.String("error", reason))
		}
	}

	if which&checkSchema != 0 {
		logg.Info("Checking snapshot schema...")
		report, err := svc.CheckSchema()
		switch {
		case err != nil:
			logg.Error("Schema check failed", zap.Error(err))
		case !report.Exists:
			logg.Warn("Snapshot table does not exist", zap.String("table", report.Table))
		case len(report.MissingColumns) > 0:
			logg.Warn("Missing Columns", zap.String("table", report.Table), zap.Strings("columns", report.MissingColumns))
		default:
			logg.Info("Snapshot schema matches.", zap.String("table", report.Table))
		}
	}

	if which&checkShape != 0 {
		logg.Info("Checking plug tree shape...")
		report, err := svc.CheckShape()
		if err != nil {
			return fmt.Errorf("shape check failed: %w", err)
		}
		fields := []zap.Field{
			zap.Strings("excluded", report.Excluded),
			zap.Strings("unadapted", report.Unadapted),
		}
		if report.Status == "ok" {
			logg.Info("Plug tree matches parameters.", fields...)
		} else {
			logg.Warn("Plug tree drifted from parameters",
				append(fields, zap.Strings("missing", report.Missing), zap.Strings("stale", report.Stale))...)
		}
	}

	return nil
}
