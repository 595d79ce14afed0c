package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/turbinedocs/doccheck/internal/config"
	"github.com/turbinedocs/doccheck/internal/mcp"
)

// NewServeCommand creates the MCP stdio server command.
func NewServeCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the doccheck tools over the Model Context Protocol (stdio)",
		Long: `Serve runs an MCP server on stdin/stdout exposing structure_check,
form_fields, form_compare and sif_fill as tools for agent clients.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			cfg.Version = version

			setupLogging(cfg)

			server, err := mcp.NewServer(cfg)
			if err != nil {
				return err
			}

			if cfg.IsDebug() {
				log.Printf("Starting with configuration: %s", cfg.String())
			}

			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().String("dir", ".", "default documentation directory")
	cmd.Flags().String("spec", "turbine", "default checklist specification")
	cmd.Flags().String("loglevel", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	cmd.Flags().Int64("maxfilesize", config.DefaultMaxFileSize, "maximum PDF file size in bytes")

	return cmd
}

// setupLogging keeps log output off stdout so it cannot interfere with the
// MCP protocol; non-debug runs discard it entirely.
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if !cfg.IsDebug() {
		log.SetOutput(io.Discard)
	}
}
