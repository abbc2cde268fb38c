package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/busemann/internal/config"
	"github.com/san-kum/busemann/internal/inlet"
	"github.com/san-kum/busemann/internal/storage"
	"github.com/san-kum/busemann/internal/tui"
	"github.com/san-kum/busemann/internal/viz"
)

const envPrefix = "BUSEMANN"

var (
	dataDir    string
	logger     *slog.Logger
	theme      viz.Theme
	configFile string
	preset     string
	noSave     bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "busemann",
		Short:        "Busemann supersonic inlet design toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		// no subcommand opens the interactive prompt
		RunE: runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("data", "~/.busemann", "design store directory")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("theme", viz.DefaultTheme.Name, "report theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.Bool("no-color", false, "disable colored log output")
	for _, name := range []string{"data", "log-level", "theme", "no-color"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}

	addDesignFlags(rootCmd)
	rootCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the final design")

	rootCmd.AddCommand(
		newDesignCmd(),
		newInteractiveCmd(),
		newSweepCmd(),
		newFlowCmd(),
		newListCmd(),
		newShowCmd(),
		newPlotCmd(),
		newExportCmd(),
		newPresetsCmd(),
	)
	return rootCmd
}

// initConfig resolves persistent settings from flags and BUSEMANN_*
// environment variables, then installs the logger.
func initConfig() error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	dir, err := homedir.Expand(viper.GetString("data"))
	if err != nil {
		return fmt.Errorf("expand data directory: %w", err)
	}
	dataDir = dir

	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log-level"))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    viper.GetBool("no-color"),
	}))
	slog.SetDefault(logger)

	theme = viz.ThemeByName(viper.GetString("theme"))
	return nil
}

// resolveConfig layers defaults, the preset, the config file and finally
// any design flag the user set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.Resolve(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: pair %v, recovery %v)",
				preset, config.ListPresets("pair"), config.ListPresets("recovery"))
		}
	}

	if configFile != "" {
		path, err := homedir.Expand(configFile)
		if err != nil {
			return nil, err
		}
		if err := config.LoadInto(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	applyDesignFlags(cmd, cfg)
	return cfg, cfg.Validate()
}

func openStore() (*storage.Store, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func save(in *inlet.Inlet) error {
	if noSave || in == nil {
		return nil
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	id, err := st.Save(in)
	if err != nil {
		return err
	}
	logger.Info("design saved", "id", id, "dir", st.Dir())
	fmt.Printf("design id: %s\n", id)
	return nil
}

func newInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "design an inlet from an interactive prompt",
		RunE:  runInteractive,
	}
	addDesignFlags(cmd)
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the final design")
	return cmd
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base, err := cfg.ToDesign()
	if err != nil {
		return err
	}

	// the alt screen hides log output, keep the designer quiet
	d := inlet.NewDesigner(inlet.WithLogger(slog.New(slog.DiscardHandler)))
	in, err := tui.Run(cmd.Context(), d, base, theme)
	if err != nil {
		return err
	}
	if in == nil {
		return nil
	}
	fmt.Println(viz.Report(in, theme))
	return save(in)
}
