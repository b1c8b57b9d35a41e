package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/loopcontext/strsync"
)

// checkConfig holds flags for the check command.
type checkConfig struct {
	res           string
	batch         string
	defaultLocale string
	locales       string
}

func usageCheck() {
	fmt.Fprintf(os.Stderr, `usage: strsync check [options]

Check is read-only: for every locale in the batch it reports which entries are
missing from the resource file and which keys already exist with different
text. Exits non-zero when any entry is missing or any locale fails, so it can
gate CI.

Flags:
`)
	flag.CommandLine.PrintDefaults()
}

func parseCheckFlags(args []string) (*checkConfig, error) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Usage = usageCheck
	var cfg checkConfig
	fs.StringVar(&cfg.res, "res", "", "Android res/ directory holding the values*/strings.xml files. Required.")
	fs.StringVar(&cfg.batch, "batch", "", "Batch YAML file with the candidate entries per locale. Required.")
	fs.StringVar(&cfg.defaultLocale, "default-locale", "en", "Locale stored in the plain values/ directory.")
	fs.StringVar(&cfg.locales, "locales", "", "Comma-separated allowlist of locale codes.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runCheck(cfg *checkConfig) error {
	table, mergeCfg, store, err := setupRun(cfg.res, cfg.batch, "tree", cfg.defaultLocale, cfg.locales)
	if err != nil {
		return err
	}

	merger := strsync.NewMerger(mergeCfg, store)
	merger.DryRun = true

	report := merger.Run(table)

	missing := 0
	for _, out := range report.Outcomes {
		switch out.Status {
		case strsync.StatusAdded:
			missing += out.Added
			fmt.Printf("strsync: %s: %d entr%s missing\n", out.Locale, out.Added, plural(out.Added, "y", "ies"))
		case strsync.StatusNoOp:
			fmt.Printf("strsync: %s: complete\n", out.Locale)
		default:
			fmt.Printf("strsync: %s: %s: %v\n", out.Locale, out.Status, out.Err)
		}
		if len(out.Diverged) > 0 {
			fmt.Printf("strsync: %s: diverging keys: %s\n", out.Locale, strings.Join(out.Diverged, ", "))
		}
	}

	if missing > 0 || report.Failed > 0 {
		return fmt.Errorf("check: %d entr%s missing, %d locale(s) failed", missing, plural(missing, "y", "ies"), report.Failed)
	}
	fmt.Printf("strsync: all %d locale(s) complete\n", report.Processed)
	return nil
}
