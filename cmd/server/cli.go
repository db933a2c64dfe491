package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/movies-api/internal/config"
	"github.com/JaimeStill/movies-api/internal/infrastructure"
	"github.com/JaimeStill/movies-api/pkg/logging"
	"github.com/JaimeStill/movies-api/pkg/openapi"
	"github.com/JaimeStill/movies-api/pkg/routes"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies-api",
		Short: "Movie collection CRUD service",
		Long: `movies-api serves a movie collection over HTTP with generated API documentation.

Configuration is read from config.toml in the working directory, an optional
config.<SERVICE_ENV>.toml overlay and environment variables.
Running without a subcommand starts the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newOpenAPICmd())
	cmd.AddCommand(newRoutesCmd())

	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default command)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	if err := srv.Start(); err != nil {
		srv.Shutdown(cfg.ShutdownTimeoutDuration())
		return fmt.Errorf("start server: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return srv.Shutdown(cfg.ShutdownTimeoutDuration())
}

func newOpenAPICmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the generated OpenAPI document",
		Long: `Build the API document exactly as the server would and print it.

Examples:
  movies-api openapi
  movies-api openapi --format yaml
  movies-api openapi --output openapi.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("invalid format %q: must be json or yaml", format)
			}

			_, modules, stop, err := buildModules(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer stop()

			spec := modules.API.Spec
			if format == "json" && output != "" {
				return openapi.WriteJSON(spec, output)
			}

			var data []byte
			if format == "yaml" {
				data, err = openapi.MarshalYAML(spec)
			} else {
				data, err = openapi.MarshalJSON(spec)
			}
			if err != nil {
				return err
			}

			if output != "" {
				return os.WriteFile(output, data, 0644)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the HTTP routes the server exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, modules, stop, err := buildModules(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer stop()

			writeRoutes(cmd.OutOrStdout(), modules.Routes(cfg))
			return nil
		},
	}
}

func writeRoutes(out io.Writer, entries []routes.Entry) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tSUMMARY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", methodColor(e.Method).Sprint(e.Method), e.Path, e.Summary)
	}
	w.Flush()
}

func methodColor(method string) *color.Color {
	switch method {
	case "GET":
		return color.New(color.FgGreen)
	case "POST":
		return color.New(color.FgYellow)
	case "PUT", "PATCH":
		return color.New(color.FgBlue)
	case "DELETE":
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}

// buildModules assembles the modules against the memory store without
// starting a listener. Logs go to logOut so command output stays clean.
func buildModules(logOut io.Writer) (*config.Config, *Modules, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	cfg.Store.Backend = config.BackendMemory

	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	infra.Logger = logging.NewWriter(&cfg.Logging, logOut)

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	stop := func() {
		infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration())
	}
	return cfg, modules, stop, nil
}
