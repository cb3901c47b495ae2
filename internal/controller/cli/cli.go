// Package cli is the cobra command surface. Commands stay thin: they parse
// flags into option sets, call the partitions usecase and render the result
// in the requested output format.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhmc-toolkit/zhmc/config"
	"github.com/zhmc-toolkit/zhmc/internal/cache"
	"github.com/zhmc-toolkit/zhmc/internal/repository/hmcrest"
	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions"
	"github.com/zhmc-toolkit/zhmc/pkg/logger"
	secrets "github.com/zhmc-toolkit/zhmc/pkg/secrets/vault"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// App carries the dependencies shared by all commands. Tests inject their
// own Feature and writer; production wiring happens in initialize.
type App struct {
	cfg    *config.Config
	log    logger.Interface
	parts  partitions.Feature
	format string
	out    io.Writer
	in     io.Reader
}

// Execute runs the root command and returns the process exit code.
func Execute(version string) int {
	a := &App{out: os.Stdout, in: os.Stdin}

	root := NewRootCmd(a, version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+friendlyMessage(err))

		return 1
	}

	return 0
}

// NewRootCmd builds the zhmc command tree.
func NewRootCmd(a *App, version string) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "zhmc",
		Short:         "Manage partitions of IBM Z machines in DPM mode",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (default ~/.zhmc/config.yml)")
	root.PersistentFlags().StringVarP(&a.format, "output-format", "o", "", "output format: table or json")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// Help and completion work without a session.
		if cmd.Name() == "help" || cmd.Name() == cobra.ShellCompRequestCmd {
			return nil
		}

		return a.initialize(cmd.Context(), configPath)
	}

	root.AddCommand(newPartitionCmd(a))

	return root
}

// initialize loads configuration and wires the usecase behind a REST
// session. It is a no-op when a Feature was injected up front.
func (a *App) initialize(ctx context.Context, configPath string) error {
	if a.parts != nil {
		if a.format == "" {
			a.format = formatTable
		}

		return nil
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	a.cfg = cfg
	a.log = logger.New(cfg.Log.Level)
	logger.SetupStdLog(a.log)

	if a.format == "" {
		a.format = cfg.Output.Format
	}

	if a.format != formatTable && a.format != formatJSON {
		return fmt.Errorf("unknown output format %q (expected table or json)", a.format)
	}

	if cfg.Secrets.Address != "" {
		vaultClient, err := secrets.NewClient(cfg.Secrets)
		if err != nil {
			return fmt.Errorf("secrets error: %w", err)
		}

		password, err := vaultClient.GetKeyValue(ctx, cfg.Secrets.PasswordKey)
		if err != nil {
			return fmt.Errorf("secrets error: %w", err)
		}

		cfg.HMC.Password = password
	}

	client, err := hmcrest.New(cfg.HMC, a.log)
	if err != nil {
		return err
	}

	a.parts = partitions.New(client, a.log, cache.New(cfg.Cache.TTL))

	return nil
}
