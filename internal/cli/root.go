// Package cli defines the command line interface. Running the binary with
// no arguments writes SAMPLE_CASES.xlsx into the working directory.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/locvowork/case_upload_template/internal/bootstrap"
	"github.com/locvowork/case_upload_template/internal/casetemplate"
	"github.com/locvowork/case_upload_template/internal/logger"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func NewRootCommand(app *bootstrap.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "casetemplate",
		Short:         "Generate the sample case upload spreadsheet",
		Long:          "casetemplate writes SAMPLE_CASES.xlsx, a header row plus ten sample cases, ready to upload.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Initialize(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, app, casetemplate.PresetSample)
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Generate DEMO_CASES.xlsx with fifteen bordered demo cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, app, casetemplate.PresetDemo)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the templates for download over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), app)
		},
	})

	return rootCmd
}

// generate writes the preset to its output path and prints the summary.
// Nothing is printed when the write fails.
func generate(cmd *cobra.Command, app *bootstrap.App, name string) error {
	ctx := logger.WithFields(cmd.Context(), map[string]interface{}{"preset": name})

	p, err := casetemplate.Lookup(name)
	if err != nil {
		return err
	}
	if err := app.Templates.Generate(ctx, name, p.OutputPath); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range p.Summary(p.OutputPath) {
		fmt.Fprintln(out, line)
	}
	return nil
}

func serve(ctx context.Context, app *bootstrap.App) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.InfoLog(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}
