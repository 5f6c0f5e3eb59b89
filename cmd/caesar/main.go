// Package main provides the CLI entrypoint for caesar.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/caesar/internal/cipher"
	"github.com/verte-zerg/caesar/internal/config"
	"github.com/verte-zerg/caesar/internal/model"
	"github.com/verte-zerg/caesar/internal/report"
	"github.com/verte-zerg/caesar/internal/server"
	"github.com/verte-zerg/caesar/internal/store"
	"github.com/verte-zerg/caesar/internal/tui"
	"github.com/verte-zerg/caesar/pkg/logger"
)

const (
	defaultShift     = 3
	defaultHost      = "127.0.0.1"
	defaultPort      = 5000
	defaultStaticDir = "./web"
	defaultLogLevel  = "info"
)

var (
	rootText        string
	rootShift       int
	rootEncrypt     bool
	rootDecrypt     bool
	rootBruteForce  bool
	rootAnalyze     bool
	rootInteractive bool

	serveHost      string
	servePort      int
	serveStaticDir string

	historyKind  string
	historySince string
	historyLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "caesar",
		Short:         "Caesar cipher CLI and web API",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().StringVarP(&rootText, "text", "t", "", "text to process")
	rootCmd.Flags().IntVarP(&rootShift, "shift", "s", defaultShift, "shift value (1-25)")
	rootCmd.Flags().BoolVarP(&rootEncrypt, "encrypt", "e", false, "encrypt the text")
	rootCmd.Flags().BoolVarP(&rootDecrypt, "decrypt", "d", false, "decrypt the text")
	rootCmd.Flags().BoolVarP(&rootBruteForce, "brute-force", "b", false, "try all 25 shifts")
	rootCmd.Flags().BoolVarP(&rootAnalyze, "analyze", "a", false, "analyze text statistics")
	rootCmd.Flags().BoolVarP(&rootInteractive, "interactive", "i", false, "run in interactive mode")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "shift", &rootShift, fileCfg.Cipher.Shift)

	if rootInteractive {
		return runInteractive(fileCfg)
	}

	if rootText == "" {
		return fmt.Errorf("text is required: use --text or --interactive")
	}

	st := openHistory(fileCfg)
	if st != nil {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	out := cmd.OutOrStdout()
	switch {
	case rootBruteForce:
		recordOperation(st, model.OpBruteForce, 0, rootText)
		return report.RenderBruteForce(out, rootText, cipher.BruteForce(rootText))
	case rootAnalyze:
		recordOperation(st, model.OpAnalyze, 0, rootText)
		return report.RenderAnalysis(out, rootText, cipher.Analyze(rootText))
	case rootEncrypt:
		if err := cipher.ValidateShift(rootShift); err != nil {
			return err
		}
		recordOperation(st, model.OpEncrypt, rootShift, rootText)
		return report.RenderResult(out, rootText, cipher.Encrypt(rootText, rootShift), model.OpEncrypt)
	case rootDecrypt:
		if err := cipher.ValidateShift(rootShift); err != nil {
			return err
		}
		recordOperation(st, model.OpDecrypt, rootShift, rootText)
		return report.RenderResult(out, rootText, cipher.Decrypt(rootText, rootShift), model.OpDecrypt)
	default:
		return fmt.Errorf("specify an operation: --encrypt, --decrypt, --brute-force, --analyze, or --interactive")
	}
}

func runInteractive(fileCfg config.FileConfig) error {
	st := openHistory(fileCfg)
	if st != nil {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}
	program := tea.NewProgram(tui.NewModel(st), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveHost, "host", defaultHost, "listen host")
	cmd.Flags().IntVar(&servePort, "port", defaultPort, "listen port")
	cmd.Flags().StringVar(&serveStaticDir, "static", defaultStaticDir, "static files directory")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	// Local overrides such as PORT live in .env; a missing file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logErrf("failed to load .env: %v\n", err)
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "host", &serveHost, fileCfg.Server.Host)
	applyIntConfig(cmd, "port", &servePort, fileCfg.Server.Port)
	applyStringConfig(cmd, "static", &serveStaticDir, fileCfg.Server.StaticDir)

	if !cmd.Flags().Changed("port") {
		if v := os.Getenv("PORT"); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid PORT value %q: %w", v, err)
			}
			servePort = port
		}
	}

	log := logger.New(loggerConfig(fileCfg))
	st := openHistory(fileCfg)
	if st != nil {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	srv := server.New(server.Config{
		Host:      serveHost,
		Port:      servePort,
		StaticDir: serveStaticDir,
	}, log, st)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func loggerConfig(fileCfg config.FileConfig) logger.Config {
	cfg := logger.Config{
		Level:   defaultLogLevel,
		LogDir:  config.DefaultLogDir(),
		Console: true,
	}
	if fileCfg.Logging.Level != nil {
		cfg.Level = *fileCfg.Logging.Level
	}
	if fileCfg.Logging.Dir != nil && *fileCfg.Logging.Dir != "" {
		cfg.LogDir = *fileCfg.Logging.Dir
	}
	if fileCfg.Logging.Console != nil {
		cfg.Console = *fileCfg.Logging.Console
	}
	return cfg
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded operations",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyKind, "kind", "", "filter by operation kind")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N operations")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st, err := store.Open(historyDBPath(fileCfg))
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ops, err := st.ListOperations(cmd.Context(), model.HistoryFilter{
		Kind:  historyKind,
		Since: sinceTime,
		Last:  historyLast,
	})
	if err != nil {
		return fmt.Errorf("failed to list operations: %w", err)
	}
	return report.RenderHistory(cmd.OutOrStdout(), ops)
}

func historyDBPath(fileCfg config.FileConfig) string {
	if fileCfg.History.DBPath != nil && *fileCfg.History.DBPath != "" {
		return *fileCfg.History.DBPath
	}
	return config.DefaultDBPath()
}

// openHistory opens the history store when recording is enabled. Failures
// disable recording rather than aborting the operation.
func openHistory(fileCfg config.FileConfig) *store.Store {
	if fileCfg.History.Enabled != nil && !*fileCfg.History.Enabled {
		return nil
	}
	st, err := store.Open(historyDBPath(fileCfg))
	if err != nil {
		logErrf("failed to open history db: %v\n", err)
		return nil
	}
	return st
}

func recordOperation(st *store.Store, kind string, shift int, text string) {
	if st == nil {
		return
	}
	op := model.Operation{
		CreatedAt: time.Now(),
		Kind:      kind,
		Shift:     shift,
		InputLen:  len([]rune(text)),
		Source:    model.SourceCLI,
	}
	if _, err := st.InsertOperation(context.Background(), op); err != nil {
		logErrf("failed to record operation: %v\n", err)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# caesar configuration
# Uncomment a value to enable it. CLI flags override config values.

[cipher]
# shift = %d              # Default shift value

[server]
# host = %q      # Listen host
# port = %d             # Listen port
# static-dir = %q  # Static files directory

[history]
# enabled = true         # Record operation metadata
# db-path = ""           # Defaults to the XDG data directory

[logging]
# level = %q         # debug, info, warn, error
# dir = ""               # Defaults to the XDG data directory
# console = true         # Mirror server logs to stdout
`,
		defaultShift,
		defaultHost,
		defaultPort,
		defaultStaticDir,
		defaultLogLevel,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
