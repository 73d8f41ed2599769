package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"photoscan/internal/apperr"
	"photoscan/internal/catalog"
	"photoscan/internal/cleanup"
	"photoscan/internal/logging"
	"photoscan/internal/metrics"
	"photoscan/internal/scanner"
	"photoscan/internal/sidecar"
)

func main() {
	metrics.InitializeMetrics()
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(apperr.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:           "photoscan",
	Short:         "Scan photo trees into sidecar metadata records",
	Version:       sidecar.ProducerVersion,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("log-level")
		if name == "" {
			return nil
		}
		level, ok := logging.ParseLevel(name)
		if !ok {
			return apperr.Userf("unknown log level %q", name)
		}
		logging.SetLevel(level)
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan PATH",
	Short: "Scan a file or directory and write sidecars",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recursive, _ := cmd.Flags().GetBool("recursive")
		include, _ := cmd.Flags().GetString("include")
		exclude, _ := cmd.Flags().GetString("exclude")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		maxThreads, _ := cmd.Flags().GetInt("max-threads")
		jsonOut, _ := cmd.Flags().GetBool("json")
		metricsListen, _ := cmd.Flags().GetString("metrics-listen")

		if maxThreads < 0 {
			return apperr.Userf("--max-threads must be positive, got %d", maxThreads)
		}
		if metricsListen != "" {
			serveMetrics(metricsListen)
		}

		opts := scanner.Options{
			Recursive:  recursive,
			Include:    parsePatterns(include),
			Exclude:    parsePatterns(exclude),
			DryRun:     dryRun,
			MaxWorkers: maxThreads,
		}
		if !jsonOut {
			opts.Progress = newProgressPrinter(args[0], os.Stdout)
		}

		start := time.Now()
		result, err := scanner.ScanPath(args[0], opts)
		if err != nil {
			return err
		}

		if jsonOut {
			return printJSON(newResponse(result, start, time.Now()))
		}
		fmt.Printf("\nProcessed %d files in %.2fs\n", result.TotalFiles, time.Since(start).Seconds())
		fmt.Printf("  Successful: %d\n", result.Successful)
		fmt.Printf("  Failed: %d\n", result.Failed)
		fmt.Printf("  Skipped: %d\n", result.Skipped)
		return nil
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup PATH",
	Short: "Remove generated files (sidecars, backups, temp files, thumbnails)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recursive, _ := cmd.Flags().GetBool("recursive")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		jsonOut, _ := cmd.Flags().GetBool("json")

		opts, err := cleanupSelection(cmd)
		if err != nil {
			return err
		}
		opts.Recursive = recursive
		opts.DryRun = dryRun

		start := time.Now()
		result, err := cleanup.Run(args[0], opts)
		if err != nil {
			return err
		}

		if jsonOut {
			return printJSON(newResponse(result, start, time.Now()))
		}
		verb := "Deleted"
		if dryRun {
			verb = "Would delete"
		}
		for _, d := range result.Deleted {
			fmt.Printf("%s %s (%s, %d bytes)\n", verb, d.Path, d.Type, d.SizeBytes)
		}
		fmt.Printf("\n%s %d files, %d bytes (failed: %d)\n",
			verb, result.TotalFiles, result.TotalBytes, result.Failed)
		return nil
	},
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe PATH",
	Short: "Report originals with identical content hashes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		jsonOut, _ := cmd.Flags().GetBool("json")

		if dbPath == "" {
			dbPath = filepath.Join(os.TempDir(), "photoscan-catalog.db")
		}

		ctx := context.Background()
		start := time.Now()

		cat, err := catalog.Open(ctx, dbPath)
		if err != nil {
			return err
		}
		defer cat.Close()

		indexed, skipped, err := cat.IndexTree(ctx, args[0])
		if err != nil {
			return err
		}
		groups, err := cat.Duplicates(ctx)
		if err != nil {
			return err
		}

		if jsonOut {
			return printJSON(newResponse(groups, start, time.Now()))
		}
		fmt.Printf("Indexed %d sidecars (skipped %d unreadable)\n", indexed, skipped)
		if len(groups) == 0 {
			fmt.Println("No duplicates found.")
			return nil
		}
		for _, g := range groups {
			fmt.Printf("\n%s (%d bytes, %d copies)\n", g.Hash, g.SizeBytes, len(g.Paths))
			for _, p := range g.Paths {
				fmt.Printf("  %s\n", p)
			}
		}
		return nil
	},
}

// cleanupSelection maps the mutually exclusive --only-* flags to Options.
func cleanupSelection(cmd *cobra.Command) (cleanup.Options, error) {
	var selected []cleanup.Options
	for flag, opts := range map[string]cleanup.Options{
		"only-sidecars":   cleanup.SidecarsOnly(),
		"only-backups":    cleanup.BackupsOnly(),
		"only-temp":       cleanup.TempOnly(),
		"only-thumbnails": cleanup.ThumbnailsOnly(),
	} {
		if on, _ := cmd.Flags().GetBool(flag); on {
			selected = append(selected, opts)
		}
	}
	switch len(selected) {
	case 0:
		return cleanup.All(), nil
	case 1:
		return selected[0], nil
	default:
		return cleanup.Options{}, apperr.Userf("--only-* flags are mutually exclusive")
	}
}

// serveMetrics exposes the Prometheus registry for long-running scans.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		logging.Info("Serving metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logging.Warn("Metrics server stopped: %v", err)
		}
	}()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")

	scanCmd.Flags().BoolP("recursive", "r", false, "Recurse into subdirectories")
	scanCmd.Flags().String("include", "", "Comma-separated include globs, relative to PATH")
	scanCmd.Flags().String("exclude", "", "Comma-separated exclude globs, relative to PATH")
	scanCmd.Flags().Bool("dry-run", false, "Compute results without writing anything")
	scanCmd.Flags().Int("max-threads", 0, "Worker pool size (0 = auto)")
	scanCmd.Flags().String("metrics-listen", "", "Address to serve Prometheus metrics on (off by default)")

	cleanupCmd.Flags().BoolP("recursive", "r", false, "Recurse into subdirectories")
	cleanupCmd.Flags().Bool("dry-run", false, "Report deletions without performing them")
	cleanupCmd.Flags().Bool("only-sidecars", false, "Remove sidecar records only")
	cleanupCmd.Flags().Bool("only-backups", false, "Remove rotated backups only")
	cleanupCmd.Flags().Bool("only-temp", false, "Remove interrupted-write leftovers only")
	cleanupCmd.Flags().Bool("only-thumbnails", false, "Remove referenced thumbnails only")

	dedupeCmd.Flags().String("db", "", "Catalog database path (default: temp file)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(dedupeCmd)
}
