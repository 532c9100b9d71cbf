package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"signalhtml/internal/backup"
	"signalhtml/internal/config"
	"signalhtml/internal/store"

	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var backupDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run diagnostic checks on a backup directory",
		Long: `Verifies that the backup directory contains everything an export
needs: the decrypted database, the version marker and the attachment
files. Reports pass/fail for each check.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(backupDir)
		},
	}

	cmd.Flags().StringVarP(&backupDir, "backup", "b", "", "directory containing the decrypted backup (required)")
	cmd.MarkFlagRequired("backup")
	return cmd
}

func runCheck(backupDir string) error {
	fmt.Printf("signalhtml check v%s\n", version)
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	passed := 0
	failed := 0
	warned := 0

	// 1. Backup directory exists
	if info, err := os.Stat(backupDir); err != nil {
		printFail("Backup directory", fmt.Sprintf("not found: %s", backupDir))
		failed++
		printSummary(passed, warned, failed)
		return fmt.Errorf("%d check(s) failed", failed)
	} else if !info.IsDir() {
		printFail("Backup directory", fmt.Sprintf("not a directory: %s", backupDir))
		failed++
		printSummary(passed, warned, failed)
		return fmt.Errorf("%d check(s) failed", failed)
	}
	printPass("Backup directory", backupDir)
	passed++

	// 2. Database file and version marker
	dbVersion, err := backup.Check(backupDir)
	if err != nil {
		printFail("Backup layout", err.Error())
		failed++
	} else {
		printPass("Backup layout", "database and version marker present")
		passed++

		if backup.Supported(dbVersion) {
			printPass("Database version", dbVersion)
			passed++
		} else {
			printWarn("Database version", fmt.Sprintf("%s is untested (supported: %s)", dbVersion, backup.SupportedVersion))
			warned++
		}
	}

	// 3. Database opens and has threads
	if err == nil {
		st, openErr := store.Open(backup.DatabasePath(backupDir), logger)
		if openErr != nil {
			printFail("Database", openErr.Error())
			failed++
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			threads, qryErr := st.Threads(ctx)
			cancel()
			st.Close()
			if qryErr != nil {
				printFail("Database", qryErr.Error())
				failed++
			} else {
				printPass("Database", fmt.Sprintf("%d thread(s)", len(threads)))
				passed++
			}
		}
	}

	// 4. Attachment files present
	attachments, globErr := filepath.Glob(filepath.Join(backupDir, "Attachment_*.bin"))
	if globErr == nil && len(attachments) > 0 {
		printPass("Attachments", fmt.Sprintf("%d file(s)", len(attachments)))
		passed++
	} else {
		printWarn("Attachments", "no attachment files found")
		warned++
	}

	// 5. Config file
	cfgPath := config.ExpandPath(resolveConfigPath())
	if _, err := os.Stat(cfgPath); err != nil {
		printWarn("Config file", fmt.Sprintf("not found at %s, defaults will be used", cfgPath))
		warned++
	} else if _, err := config.Load(cfgPath); err != nil {
		printFail("Config file", err.Error())
		failed++
	} else {
		printPass("Config file", cfgPath)
		passed++
	}

	printSummary(passed, warned, failed)
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

func printSummary(passed, warned, failed int) {
	fmt.Printf("\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("Results: %d passed, %d warnings, %d failed\n", passed, warned, failed)
	if failed > 0 {
		fmt.Printf("\nPlease fix the failed checks before exporting.\n")
	} else if warned > 0 {
		fmt.Printf("\nThe export should work but consider the warnings.\n")
	} else {
		fmt.Printf("\nAll checks passed! The backup is ready to export.\n")
	}
}

func printPass(check, detail string) {
	fmt.Printf("  [PASS] %-20s %s\n", check, detail)
}

func printFail(check, detail string) {
	fmt.Printf("  [FAIL] %-20s %s\n", check, detail)
}

func printWarn(check, detail string) {
	fmt.Printf("  [WARN] %-20s %s\n", check, detail)
}
