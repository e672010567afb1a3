// cmd/emis-dashboard/main.go
//
// Entry point for the EMIS dashboard. Running it without a subcommand opens
// the terminal dashboard for the current directory.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/emis-dashboard/internal/inspect"
	"github.com/kingrea/emis-dashboard/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var projectDir string

	root := &cobra.Command{
		Use:           "emis-dashboard",
		Short:         "Emergency management dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if projectDir != "" {
				return nil
			}
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			projectDir = cwd
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), projectDir)
		},
	}
	root.PersistentFlags().StringVar(&projectDir, "dir", "", "project directory holding .emis/ (default: working directory)")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Open the terminal dashboard",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTUI(cmd.Context(), projectDir)
			},
		},
		newServeCmd(&projectDir),
		newDumpCmd(&projectDir),
		newConfigCmd(&projectDir),
	)
	return root
}

func runTUI(ctx context.Context, projectDir string) error {
	rt, err := newRuntime(projectDir)
	if err != nil {
		return err
	}
	defer rt.Close()

	srv := rt.inspectServer()
	if err := srv.Start(ctx); err != nil && !errors.Is(err, inspect.ErrDisabled) {
		rt.logger.Printf("inspect: %v", err)
	}
	defer srv.Shutdown(context.Background())

	app := tui.NewApp(rt.dashboard, tui.WithLogbook(rt.journal), tui.WithContext(ctx))
	defer app.Close()
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func newServeCmd(projectDir *string) *cobra.Command {
	var refresh time.Duration
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the dashboard headless and serve it over the inspect endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := newRuntime(*projectDir)
			if err != nil {
				return err
			}
			defer rt.Close()

			srv := rt.inspectServer()
			if err := srv.Start(ctx); err != nil {
				return err
			}
			defer srv.Shutdown(context.Background())
			fmt.Fprintf(cmd.OutOrStdout(), "inspect server listening on %s\n", srv.BaseURL())

			_ = rt.dashboard.LoadAll(ctx)
			if refresh <= 0 {
				<-ctx.Done()
				return nil
			}
			ticker := time.NewTicker(refresh)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					_ = rt.dashboard.LoadAll(ctx)
				}
			}
		},
	}
	cmd.Flags().DurationVar(&refresh, "refresh", 0, "reload every list at this interval (0 disables)")
	return cmd
}

func newDumpCmd(projectDir *string) *cobra.Command {
	var slice string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Load every list once and print the dashboard state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(*projectDir)
			if err != nil {
				return err
			}
			defer rt.Close()

			loadErr := rt.dashboard.LoadAll(cmd.Context())
			var out any = rt.dashboard.State()
			if slice != "" {
				raw, err := json.Marshal(out)
				if err != nil {
					return err
				}
				var slices map[string]json.RawMessage
				if err := json.Unmarshal(raw, &slices); err != nil {
					return err
				}
				part, ok := slices[slice]
				if !ok {
					return fmt.Errorf("unknown slice %q", slice)
				}
				out = part
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return err
			}
			if loadErr != nil {
				return fmt.Errorf("load: %w", loadErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&slice, "slice", "", "print a single slice, e.g. alerts or contacts")
	return cmd
}

func newConfigCmd(projectDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Change persisted dashboard settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "store-map-points [true|false]",
		Short: "Let loaded alerts replace the map points layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", args[0])
			}
			rt, err := newRuntime(*projectDir)
			if err != nil {
				return err
			}
			defer rt.Close()
			if err := rt.config.SetStoreMapPoints(enabled); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "alerts.store_map_points = %t\n", enabled)
			return nil
		},
	})
	return cmd
}
