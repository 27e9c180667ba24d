package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Flyrell/habitplant/internal/report"
	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatPDF  = "pdf"

	defaultJSONExport = "habit-plant-export.json"
	defaultPDFExport  = "habit-plant-report.pdf"
)

var exportCmd = LeafCommand{
	Use:   "export [file]",
	Short: "Export habits as JSON or a PDF report ('-' writes stdout)",
	Args:  cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "format", Shorthand: "f", Usage: "output format: json or pdf", Default: formatJSON},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		target := ""
		if len(args) > 0 {
			target = args[0]
		}
		format, _ := cmd.Flags().GetString("format")

		return runExport(cmd, homeDir, target, format, time.Now)
	},
}.Build()

func runExport(cmd *cobra.Command, homeDir, target, format string, now func() time.Time) error {
	if format != formatJSON && format != formatPDF {
		return fmt.Errorf("unknown export format '%s' (use json or pdf)", format)
	}
	if target == "" {
		target = defaultJSONExport
		if format == formatPDF {
			target = defaultPDFExport
		}
	}

	a, err := openApp(cmd, homeDir, now)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		if format == formatJSON {
			return a.store.Export(w)
		}
		data, err := report.Build(a.store.Habits(), a.store.Today(), a.cfg.RecentDays, a.now())
		if err != nil {
			return err
		}
		return report.WritePDF(data, w)
	}

	if target == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	a.logger.Debug("export written")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d habits to %s\n", len(a.store.Habits()), Primary(target))
	return nil
}
