// Root command and session wiring for the chronicler CLI.
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dukaforge/chronicler/internal/jsondb"
	"github.com/dukaforge/chronicler/internal/mapper"
	"github.com/dukaforge/chronicler/internal/paths"
	"github.com/dukaforge/chronicler/pkg/types"
)

// Global flag values.
var (
	flagConfig   string
	flagDatabase string
)

// session bundles everything a command needs against one open database:
// the store handle, the resolver bound to it, and the session logger. It
// is constructed once per invocation.
type session struct {
	id       string
	cfg      types.Config
	db       *jsondb.Store
	resolver *mapper.Resolver
	log      *zap.SugaredLogger
}

// sess is the session opened by the persistent pre-run for the current
// command.
var sess *session

var rootCmd = &cobra.Command{
	Use:   "chronicler",
	Short: "Chronicler manages a narrative catalogue and exports addon data",
	Long: `Chronicler is an editor-side tool for the Chronicles catalogue. It
stores events, characters, factions, collections, and localized strings in
a single JSON database file, and exports the resolved catalogue as the
script and manifest archive the addon runtime consumes.`,
	PersistentPreRunE:  openSession,
	PersistentPostRunE: closeSession,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: config.yaml in CWD or the platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "database file or directory (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(vocabCmd)
}

// openSession loads config, builds the logger, and opens the database.
func openSession(cmd *cobra.Command, args []string) error {
	// Commands that never touch the database skip the session.
	switch cmd.Name() {
	case "version", "vocab":
		return nil
	}

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Database, err = paths.ResolveDatabase(flagDatabase, cfg.Database)
	if err != nil {
		return fmt.Errorf("resolve database: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := buildLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	id := uuid.Must(uuid.NewV7()).String()
	slog := log.Sugar().With("session", id)

	db, err := jsondb.Open(cfg.Database, cfg.Schema(), slog)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sess = &session{
		id:       id,
		cfg:      cfg,
		db:       db,
		resolver: mapper.NewResolver(db, slog),
		log:      slog,
	}
	return nil
}

// closeSession flushes the logger.
func closeSession(cmd *cobra.Command, args []string) error {
	if sess != nil {
		_ = sess.log.Sync()
	}
	return nil
}

// buildLogger constructs the production zap logger at the configured level.
func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = parsed
	}
	return cfg.Build()
}
