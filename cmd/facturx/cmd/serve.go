package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/facturx/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	schemaDir    string
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for invoice generation and validation.

The API provides endpoints for:
  - POST /api/v1/generate        - Generate Factur-X XML from a document
  - POST /api/v1/validate        - Validate a document
  - POST /api/v1/validate/schema - Validate XML against the XSD schemas
  - GET  /api/v1/profiles        - List supported profiles
  - GET  /health                 - Health check

Examples:
  # Start server on default port
  facturx serve

  # Start with schema validation enabled
  facturx serve --schema-dir ./xsd

  # Start in debug mode
  facturx serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().StringVar(&schemaDir, "schema-dir", "", "Directory with the Factur-X XSD schemas")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      serverAddr,
		SchemaDir:    schemaDir,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", serverAddr)
	return srv.Run()
}
