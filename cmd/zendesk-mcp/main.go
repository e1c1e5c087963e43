package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hellausefulsoftware/zendesk-mcp/internal/config"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/directory"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/logging"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/mcpserver"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/support"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/zendesk"
)

const version = "1.0.0"

func main() {
	logging.Initialize(nil)

	var logLevel string
	var logJSON bool
	var httpAddr string

	rootCmd := &cobra.Command{
		Use:   "zendesk-mcp",
		Short: "MCP server exposing Zendesk helpdesk operations",
		Long:  `An MCP server that lets AI assistants read tickets and comments, post confirmed replies, look up an agent's open tickets, score ticket urgency, and export the help center knowledge base.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Use a subcommand or --help for available commands.")
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Output logs in JSON format")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		var level logging.LogLevel
		switch logLevel {
		case "debug":
			level = logging.LogLevelDebug
		case "info":
			level = logging.LogLevelInfo
		case "warn":
			level = logging.LogLevelWarn
		case "error":
			level = logging.LogLevelError
		default:
			level = logging.LogLevelInfo
		}

		// Logs must never touch stdout: it carries the protocol stream.
		logging.Initialize(&logging.Config{
			Level:      level,
			Output:     os.Stderr,
			JSONFormat: logJSON,
		})
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio by default)",
		Run: func(cmd *cobra.Command, args []string) {
			runServe(httpAddr)
		},
	}
	serveCmd.Flags().StringVar(&httpAddr, "http", "", "Serve streamable HTTP on this address instead of stdio (e.g. :8086)")

	configureCmd := &cobra.Command{
		Use:   "configure",
		Short: "Interactively write the configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			runConfigure()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("zendesk-mcp " + version)
		},
	}

	rootCmd.AddCommand(serveCmd, configureCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func runServe(httpAddr string) {
	cfg, err := config.Load()
	if err != nil {
		logging.Error("failed to load configuration", "error", err)
		fmt.Fprintln(os.Stderr, "Run 'zendesk-mcp configure' or set ZENDESK_SUBDOMAIN, ZENDESK_EMAIL, and ZENDESK_API_TOKEN.")
		os.Exit(1)
	}

	store, err := zendesk.NewClient(cfg.Zendesk.Subdomain, cfg.Zendesk.Email, cfg.Zendesk.Token)
	if err != nil {
		logging.Error("failed to create Zendesk client", "error", err)
		os.Exit(1)
	}

	dir := directory.New(cfg.Directory.Path)
	logging.Info("agent directory loaded", "entries", dir.Len())

	svc := support.NewService(store, dir)
	srv := mcpserver.New(svc, version)

	if httpAddr == "" && cfg.Server.HTTPAddr != "" {
		httpAddr = cfg.Server.HTTPAddr
	}

	if httpAddr != "" {
		err = srv.ServeHTTP(httpAddr)
	} else {
		err = srv.ServeStdio()
	}
	if err != nil {
		logging.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func runConfigure() {
	configurator := config.NewConfigurator()

	subdomain, err := config.Prompt("Zendesk subdomain (the part before .zendesk.com)")
	if err != nil {
		logging.Error("failed to read input", "error", err)
		os.Exit(1)
	}
	configurator.SetSubdomain(subdomain)

	email, err := config.Prompt("Zendesk account email")
	if err != nil {
		logging.Error("failed to read input", "error", err)
		os.Exit(1)
	}
	configurator.SetEmail(email)

	token, err := config.Prompt("Zendesk API token")
	if err != nil {
		logging.Error("failed to read input", "error", err)
		os.Exit(1)
	}
	configurator.SetToken(token)

	rosterPath, err := config.Prompt("Agent roster file (leave empty for the bundled roster)")
	if err != nil {
		logging.Error("failed to read input", "error", err)
		os.Exit(1)
	}
	if rosterPath != "" {
		configurator.SetDirectoryPath(rosterPath)
	}

	if err := configurator.Save(); err != nil {
		logging.Error("failed to save configuration", "error", err)
		os.Exit(1)
	}

	fmt.Println("Configuration saved to " + config.GetConfigPath())
}
