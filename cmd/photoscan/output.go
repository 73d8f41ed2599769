package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"photoscan/internal/apperr"
	"photoscan/internal/sidecar"
)

// response wraps a command's result with operation timing, the shape all
// --json output uses.
type response struct {
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
	DurationMs uint64 `json:"duration_ms"`
	Data       any    `json:"data"`
}

func newResponse(data any, start, end time.Time) response {
	return response{
		StartedAt:  sidecar.Timestamp(start),
		FinishedAt: sidecar.Timestamp(end),
		DurationMs: uint64(end.Sub(start).Milliseconds()),
		Data:       data,
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperr.Internalf("failed to serialize output: %v", err)
	}
	fmt.Println(string(out))
	return nil
}

// reportError prints a failed command's error to stderr. Under --json the
// error is a machine-readable object; otherwise a plain message.
func reportError(err error) {
	jsonOut, _ := rootCmd.PersistentFlags().GetBool("json")
	if !jsonOut {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	out, mErr := json.MarshalIndent(map[string]any{
		"error":     err.Error(),
		"kind":      apperr.KindOf(err).String(),
		"exit_code": apperr.ExitCode(err),
	}, "", "  ")
	if mErr != nil {
		fmt.Fprintf(os.Stderr, "{\"error\":%q}\n", err.Error())
		return
	}
	fmt.Fprintln(os.Stderr, string(out))
}

// parsePatterns splits a comma-separated flag value into individual globs.
func parsePatterns(s string) []string {
	if s == "" {
		return nil
	}
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// progressPrinter renders per-file completions as they happen, one line per
// file with the path shown relative to the scan root. Unicode markers are
// used only when writing to a terminal.
type progressPrinter struct {
	base    string
	w       io.Writer
	ok, bad string
	mu      sync.Mutex
}

func newProgressPrinter(base string, w io.Writer) *progressPrinter {
	p := &progressPrinter{base: base, w: w, ok: "ok", bad: "FAILED"}
	if f, isFile := w.(*os.File); isFile && term.IsTerminal(int(f.Fd())) {
		p.ok, p.bad = "✓", "✗"
	}
	return p
}

func (p *progressPrinter) FileStarted(string) {
	// Nothing to print at start; one line per file on completion.
}

func (p *progressPrinter) FileCompleted(path string, _ uint64, err error) {
	display := path
	if rel, rErr := filepath.Rel(p.base, path); rErr == nil {
		display = rel
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		fmt.Fprintf(p.w, "%s ... %s %v\n", display, p.bad, err)
		return
	}
	fmt.Fprintf(p.w, "%s ... %s\n", display, p.ok)
}
