// Package cmd provides the auditeasy CLI commands.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stpaulnss/auditeasy/internal/adapters/database/sqlite"
	"github.com/stpaulnss/auditeasy/internal/adapters/genai"
	"github.com/stpaulnss/auditeasy/internal/core/services"
	"github.com/stpaulnss/auditeasy/internal/platform/appctx"
	"github.com/stpaulnss/auditeasy/internal/platform/config"
)

var (
	debug bool

	cfg   *config.Config
	store *sqlite.Store
	svcs  *services.ServicesContainer
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "auditeasy",
	Short: "NSS unit ledger and compliance reporting",
	Long: `auditeasy keeps the financial ledger of a college NSS unit:
receipts and payment vouchers with sequence validation, running balances,
audit trails, spreadsheet export/import, utilization certificates and an
external compliance audit.

Example:
  auditeasy add --type EXPENSE --amount 450 --desc "Camp transport advance"
  auditeasy ledger --category "Special Camp"
  auditeasy export --out NSS_Audit_Sheet.xlsx`,
	SilenceUsage: true,
	PersistentPreRunE: func(cobraCmd *cobra.Command, args []string) error {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		store, err = sqlite.Open(cfg.DBPath)
		if err != nil {
			return err
		}

		generator := genai.NewClient(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAITimeout)
		svcs = services.NewServicesContainer(
			sqlite.NewLedgerRepository(store),
			sqlite.NewProfileRepository(store),
			generator,
		)
		return nil
	},
	PersistentPostRunE: func(cobraCmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// opCtx returns the context every service call runs under: the base logger
// and the configured (simulated) acting user.
func opCtx() context.Context {
	ctx := appctx.WithLogger(context.Background(), slog.Default())
	return appctx.WithActor(ctx, cfg.ActorEmail)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(ucCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(clearBankCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(auditCmd)
}
