package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/loopcontext/strsync"
)

// applyConfig holds flags for the apply command.
type applyConfig struct {
	res           string
	batch         string
	mode          string
	defaultLocale string
	locales       string
	dryRun        bool
	strict        bool
	verbose       bool
}

func usageApply() {
	fmt.Fprintf(os.Stderr, `usage: strsync apply [options]

Apply merges a batch of translation entries into per-locale strings.xml files.
Keys already present keep their existing value; files with nothing to add are
left untouched. A failure on one locale is reported and the run continues with
the next one.

Flags:
`)
	flag.CommandLine.PrintDefaults()
}

func parseApplyFlags(args []string) (*applyConfig, error) {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	fs.Usage = usageApply
	var cfg applyConfig
	fs.StringVar(&cfg.res, "res", "", "Android res/ directory holding the values*/strings.xml files. Required.")
	fs.StringVar(&cfg.batch, "batch", "", "Batch YAML file with the candidate entries per locale. Required.")
	fs.StringVar(&cfg.mode, "mode", "tree", "Insertion strategy: 'tree' (parse the XML) or 'text' (splice raw text).")
	fs.StringVar(&cfg.defaultLocale, "default-locale", "en", "Locale stored in the plain values/ directory.")
	fs.StringVar(&cfg.locales, "locales", "", "Comma-separated allowlist of locale codes; batch locales outside it are reported as unknown. Default: every locale in the batch.")
	fs.BoolVar(&cfg.dryRun, "dry-run", false, "Plan and report without writing any file.")
	fs.BoolVar(&cfg.strict, "strict", false, "Exit non-zero when any locale fails.")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Also report keys whose existing text differs from the batch.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// consoleObserver prints one progress line per locale as outcomes arrive.
type consoleObserver struct {
	verbose bool
}

func (o *consoleObserver) OnOutcome(out strsync.Outcome) {
	switch out.Status {
	case strsync.StatusAdded:
		fmt.Printf("strsync: %s: added %d entr%s (%s)\n", out.Locale, out.Added, plural(out.Added, "y", "ies"), out.Path)
	case strsync.StatusNoOp:
		fmt.Printf("strsync: %s: up-to-date\n", out.Locale)
	case strsync.StatusUnknownLocale:
		fmt.Printf("strsync: %s: unknown locale, no resource path configured\n", out.Locale)
	default:
		fmt.Printf("strsync: %s: %s: %v\n", out.Locale, out.Status, out.Err)
	}
	if o.verbose && len(out.Diverged) > 0 {
		fmt.Printf("strsync: %s: %d key(s) differ from batch (existing text kept): %s\n",
			out.Locale, len(out.Diverged), strings.Join(out.Diverged, ", "))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func runApply(cfg *applyConfig) error {
	table, mergeCfg, store, err := setupRun(cfg.res, cfg.batch, cfg.mode, cfg.defaultLocale, cfg.locales)
	if err != nil {
		return err
	}

	merger := strsync.NewMerger(mergeCfg, store)
	merger.DryRun = cfg.dryRun
	merger.Observer = &consoleObserver{verbose: cfg.verbose}

	report := merger.Run(table)

	fmt.Printf("strsync: %d locale(s) processed, %d updated, %d entr%s added",
		report.Processed, report.Updated, report.EntriesAdded, plural(report.EntriesAdded, "y", "ies"))
	if report.Failed > 0 {
		fmt.Printf(", %d failed", report.Failed)
	}
	fmt.Println()

	if cfg.strict && report.Failed > 0 {
		return fmt.Errorf("apply: %d locale(s) failed", report.Failed)
	}
	return nil
}

// setupRun loads and validates the batch and builds the merge config and
// store shared by apply and check.
func setupRun(res, batch, mode, defaultLocale, locales string) (strsync.CandidateTable, strsync.Config, strsync.ResourceStore, error) {
	var table strsync.CandidateTable
	var mergeCfg strsync.Config
	if res == "" {
		return table, mergeCfg, nil, fmt.Errorf("-res is required")
	}
	if batch == "" {
		return table, mergeCfg, nil, fmt.Errorf("-batch is required")
	}

	table, err := strsync.LoadBatch(batch)
	if err != nil {
		return table, mergeCfg, nil, err
	}

	known := table.LocaleCodes()
	if locales != "" {
		known = splitLocales(locales)
	}
	mergeCfg = strsync.Config{
		Root:        res,
		LocalePaths: strsync.AndroidLocalePaths(defaultLocale, known),
	}

	var store strsync.ResourceStore
	switch mode {
	case "tree":
		store = strsync.NewTreeStore()
	case "text":
		store = strsync.NewTextStore(table.Anchor)
	default:
		return table, mergeCfg, nil, fmt.Errorf("unknown -mode %q (want 'tree' or 'text')", mode)
	}
	return table, mergeCfg, store, nil
}

func splitLocales(s string) []string {
	var out []string
	for _, code := range strings.Split(s, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			out = append(out, code)
		}
	}
	return out
}
