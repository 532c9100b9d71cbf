package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"signalhtml/internal/backup"
	"signalhtml/internal/export"
	"signalhtml/internal/render"
	"signalhtml/internal/store"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var backupDir string
	var outputDir string
	var title string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every conversation in a backup to HTML",
		Long: `Reads the decrypted backup in the given directory and writes one HTML
page per conversation thread into the output directory, together with an
index page and a stylesheet. Attachment files are referenced in place,
not copied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(backupDir, outputDir, title)
		},
	}

	cmd.Flags().StringVarP(&backupDir, "backup", "b", "", "directory containing the decrypted backup (required)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to write the pages into (required)")
	cmd.Flags().StringVar(&title, "title", "", "page title (overrides the configured one)")
	cmd.MarkFlagRequired("backup")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runExport(backupDir, outputDir, title string) error {
	start := time.Now()
	cfg := loadConfig()
	log := setupLogger(cfg)
	if title != "" {
		cfg.Export.Title = title
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbVersion, err := backup.Check(backupDir)
	if err != nil {
		return err
	}
	if !backup.Supported(dbVersion) {
		log.Warn("backup has an untested database version, continuing anyway",
			"version", dbVersion, "supported", backup.SupportedVersion)
	}

	st, err := store.Open(backup.DatabasePath(backupDir), log)
	if err != nil {
		return err
	}
	defer st.Close()

	renderer, err := render.NewHTMLRenderer(outputDir, cfg.Export.Title, cfg.Export.TimeFormat, log)
	if err != nil {
		return err
	}

	locator := backup.NewLocator(backupDir, log)
	exporter := export.NewExporter(st, renderer, locator, log)

	stats, err := exporter.Run(ctx)
	if err != nil {
		return err
	}
	if err := renderer.WriteIndex(); err != nil {
		return err
	}

	log.Info("export finished",
		"threads", stats.Threads,
		"sms", stats.SMSMessages,
		"mms", stats.MMSMessages,
		"attachments", stats.Attachments,
		"missing", stats.MissingAttachments,
		"output", outputDir,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
