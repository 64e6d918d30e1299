package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aydenstechdungeon/modalkit/fiber"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured modals over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("addr", "", "listen address (overrides the config)")
	cmd.Flags().Bool("dev", false, "reload the config file when it changes")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if cmd.Flags().Changed("dev") {
		cfg.DevMode, _ = cmd.Flags().GetBool("dev")
	}

	printer := NewColorPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	server := fiber.NewServer(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DevMode && path != "" {
		go func() {
			if err := server.WatchConfig(ctx, path, fiber.DefaultDebounce); err != nil {
				printer.Warning("Config watcher stopped: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Listen(cfg.Addr)
	}()
	printer.Success("Serving %d modal(s) on %s", len(cfg.Modals), cfg.Addr)
	if cfg.DevMode && path != "" {
		fmt.Fprintln(cmd.OutOrStdout(), printer.Dim("  watching "+path))
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	printer.Info("Shutting down")
	return server.Shutdown(5 * time.Second)
}
