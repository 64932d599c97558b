// Package main provides the CLI entrypoint for tuidrill.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuidrill/internal/app"
	"github.com/verte-zerg/tuidrill/internal/config"
	"github.com/verte-zerg/tuidrill/internal/dictionary"
	"github.com/verte-zerg/tuidrill/internal/report"
	"github.com/verte-zerg/tuidrill/internal/tui"
)

const (
	defaultShuffle       = true
	defaultWrapSelection = false
)

var (
	drillDir      string
	drillShuffle  bool
	drillWrap     bool
	drillDebugLog bool

	listDir  string
	checkDir string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuidrill",
		Short:         "TUI vocabulary drill trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDrillCmd,
	}

	rootCmd.Flags().StringVar(&drillDir, "dir", config.DefaultDictionaryDir(), "dictionary directory")
	rootCmd.Flags().BoolVar(&drillShuffle, "shuffle", defaultShuffle, "shuffle item order")
	rootCmd.Flags().BoolVar(&drillWrap, "wrap", defaultWrapSelection, "wrap around when moving through the dictionary list")
	rootCmd.Flags().BoolVar(&drillDebugLog, "debug-log", false, "write a debug log to "+config.DefaultLogPath())

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dir", &drillDir, fileCfg.Drill.Dir)
	applyBoolConfig(cmd, "shuffle", &drillShuffle, fileCfg.Drill.Shuffle)
	applyBoolConfig(cmd, "wrap", &drillWrap, fileCfg.Drill.WrapSelection)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tuidrill needs an interactive terminal; use `tuidrill list` to inspect dictionaries")
	}

	closeLog, err := setupLog(drillDebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := dictionary.Scan(drillDir)
	if err != nil {
		// An unreadable directory is reported in the UI as an empty catalog.
		log.Printf("scan %s: %v", drillDir, err)
	}
	for path, derr := range catalog.Broken() {
		log.Printf("skipping broken dictionary %s: %v", path, derr)
	}
	log.Print(catalogSummary(catalog))

	model := newDrillModel(catalog, drillShuffle, drillWrap)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if result, ok := model.Result(); ok {
		if err := report.RenderSummary(cmd.OutOrStdout(), result.SetName, result.Stats); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

func newDrillModel(catalog *dictionary.Catalog, shuffle, wrap bool) *tui.Model {
	ctrl := app.New(catalog,
		app.WithShuffle(shuffle),
		app.WithWrapSelection(wrap),
	)
	return tui.NewModel(ctrl, catalog.Dir())
}

// catalogSummary reports how many scanned dictionaries decoded cleanly.
func catalogSummary(catalog *dictionary.Catalog) string {
	return fmt.Sprintf("%d of %d dictionaries usable in %s", len(catalog.Usable()), len(catalog.Entries()), catalog.Dir())
}

// setupLog routes the standard logger to the debug log or discards it. The TUI
// owns stdout and stderr while it runs.
func setupLog(enabled bool) (func(), error) {
	if !enabled {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	path := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "tuidrill")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}, nil
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dictionaries",
		Args:  cobra.NoArgs,
		RunE:  runListCmd,
	}
	cmd.Flags().StringVar(&listDir, "dir", config.DefaultDictionaryDir(), "dictionary directory")
	return cmd
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	dir, err := resolveDir(cmd, &listDir)
	if err != nil {
		return err
	}
	catalog, rows, err := inspectDir(dir)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		logErrf("No dictionaries found in %s\n", dir)
		return fmt.Errorf("no dictionaries found")
	}
	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	out := cmd.OutOrStdout()
	if err := report.RenderCatalog(out, rows, width); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(out, "\n%s\n", catalogSummary(catalog)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate dictionary files",
		Args:  cobra.NoArgs,
		RunE:  runCheckCmd,
	}
	cmd.Flags().StringVar(&checkDir, "dir", config.DefaultDictionaryDir(), "dictionary directory")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	dir, err := resolveDir(cmd, &checkDir)
	if err != nil {
		return err
	}
	_, rows, err := inspectDir(dir)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no dictionaries found in %s", dir)
	}
	invalid, err := report.RenderCheck(cmd.OutOrStdout(), rows)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d dictionaries are invalid", invalid, len(rows))
	}
	return nil
}

func resolveDir(cmd *cobra.Command, dir *string) (string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dir", dir, fileCfg.Drill.Dir)
	return *dir, nil
}

func inspectDir(dir string) (*dictionary.Catalog, []report.CatalogRow, error) {
	catalog, err := dictionary.Scan(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read dictionary directory: %w", err)
	}
	entries := catalog.Entries()
	rows := make([]report.CatalogRow, 0, len(entries))
	for _, entry := range entries {
		set, unknown, err := dictionary.LoadFile(entry.ID)
		rows = append(rows, report.CatalogRow{Path: entry.ID, Set: set, Unknown: unknown, Err: err})
	}
	return catalog, rows, nil
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

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuidrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[drill]
# dir = %q   # Dictionary directory
# shuffle = %t              # Shuffle item order
# wrap-selection = %t      # Wrap around in the dictionary list
`,
		config.DefaultDictionaryDir(),
		defaultShuffle,
		defaultWrapSelection,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
