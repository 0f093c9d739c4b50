package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opcvmsim/fund-simulator/internal/calculation"
	"github.com/opcvmsim/fund-simulator/internal/config"
	"github.com/opcvmsim/fund-simulator/internal/registry"
	"github.com/opcvmsim/fund-simulator/internal/server"
	"github.com/opcvmsim/fund-simulator/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if registryFile != "" {
				cfg.RegistryFile = registryFile
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: true})

			var (
				reg      registry.Registry
				defaults registry.CategoryDefaults
			)
			if cfg.RegistryFile != "" {
				fileReg, fileDefaults, err := registry.LoadFile(cfg.RegistryFile)
				if err != nil {
					return err
				}
				reg, defaults = fileReg, fileDefaults
				log.Info().Str("file", cfg.RegistryFile).Msg("loaded fund registry")
			} else {
				reg, defaults = registry.Builtin(), registry.BuiltinDefaults()
				log.Info().Msg("using built-in fund registry")
			}

			engine := calculation.NewSimulationEngine(reg, defaults)
			engine.SetLogger(logger.Printf{L: log})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Config{Log: log, Engine: engine, Port: cfg.Port})
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8000, "HTTP listen port (overrides OPCVM_PORT)")
	return cmd
}
