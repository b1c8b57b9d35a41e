package strsync

import (
	"os"
	"path/filepath"
)

// Status is the terminal state of one locale's processing.
type Status int

const (
	// StatusAdded means entries were merged and the file rewritten.
	StatusAdded Status = iota
	// StatusNoOp means every candidate key was already present; the file was
	// not rewritten.
	StatusNoOp
	// StatusUnknownLocale means the locale has no path in the config map.
	StatusUnknownLocale
	// StatusNotFound means the resource file is missing from disk.
	StatusNotFound
	// StatusParseFailed means the file could not be parsed.
	StatusParseFailed
	// StatusReadFailed means the file exists but reading it failed.
	StatusReadFailed
	// StatusAnchorMissing means the text-mode insertion marker was absent.
	StatusAnchorMissing
	// StatusWriteFailed means merged content could not be flushed to disk.
	StatusWriteFailed
)

func (s Status) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusNoOp:
		return "up-to-date"
	case StatusUnknownLocale:
		return "unknown locale"
	case StatusNotFound:
		return "file not found"
	case StatusParseFailed:
		return "parse failed"
	case StatusReadFailed:
		return "read failed"
	case StatusAnchorMissing:
		return "anchor missing"
	case StatusWriteFailed:
		return "write failed"
	}
	return "unknown"
}

// Failed reports whether the status is one of the failure states.
func (s Status) Failed() bool {
	return s != StatusAdded && s != StatusNoOp
}

// Outcome is the result of processing one locale.
type Outcome struct {
	Locale string
	Path   string
	Status Status
	// Added is the number of entries merged (StatusAdded only).
	Added int
	// Diverged lists candidate keys that already exist with different text.
	// The existing value always wins; this is a diagnostic.
	Diverged []string
	Err      error
}

// Observer receives each outcome as it is produced. Processing is sequential,
// so calls never overlap.
type Observer interface {
	OnOutcome(o Outcome)
}

// RunReport aggregates a full batch run.
type RunReport struct {
	Outcomes []Outcome
	// Processed counts all locales in the table, failures included.
	Processed int
	// Updated counts locales whose file was rewritten.
	Updated int
	// EntriesAdded counts entries merged across all locales.
	EntriesAdded int
	// Failed counts locales that ended in a failure state.
	Failed int
}

// Merger drives a batch run: per locale, resolve the resource file, read it,
// plan the missing entries, append and flush. Locales are processed one at a
// time in table order; a failure on one never aborts the rest.
type Merger struct {
	// DryRun plans and reports without writing any file.
	DryRun bool
	// Observer, when set, is notified of every outcome.
	Observer Observer

	cfg   Config
	store ResourceStore
}

// NewMerger returns a merger over the given config and store strategy.
func NewMerger(cfg Config, store ResourceStore) *Merger {
	return &Merger{cfg: cfg, store: store}
}

// Run processes every locale of the table in declared order and returns the
// aggregated report. Existing key sets are computed fresh from disk on every
// run.
func (m *Merger) Run(table CandidateTable) RunReport {
	var report RunReport
	for _, batch := range table.Locales {
		report.record(m.runLocale(batch), m.Observer)
	}
	return report
}

func (m *Merger) runLocale(batch LocaleBatch) Outcome {
	rel, ok := m.cfg.LocalePaths[batch.Code]
	if !ok {
		return Outcome{Locale: batch.Code, Status: StatusUnknownLocale}
	}
	path := filepath.Join(m.cfg.Root, rel)

	content, err := m.store.Read(path)
	if err != nil {
		return Outcome{Locale: batch.Code, Path: path, Status: statusForError(err, StatusReadFailed), Err: err}
	}

	planned := Plan(m.store.ExistingKeys(content), batch.Entries)
	diverged := Diverging(m.store, content, batch.Entries)
	if len(planned) == 0 {
		return Outcome{Locale: batch.Code, Path: path, Status: StatusNoOp, Diverged: diverged}
	}

	merged, err := m.store.Append(content, planned)
	if err != nil {
		return Outcome{Locale: batch.Code, Path: path, Status: statusForError(err, StatusWriteFailed), Diverged: diverged, Err: err}
	}

	if !m.DryRun {
		if err := os.WriteFile(path, m.store.Serialize(merged), 0644); err != nil {
			err = newStoreError(KindWrite, path, err)
			return Outcome{Locale: batch.Code, Path: path, Status: StatusWriteFailed, Diverged: diverged, Err: err}
		}
	}

	return Outcome{Locale: batch.Code, Path: path, Status: StatusAdded, Added: len(planned), Diverged: diverged}
}

// statusForError maps a store error kind to its status; errors carrying no
// kind get the calling phase's fallback.
func statusForError(err error, fallback Status) Status {
	switch errKind(err) {
	case KindNotFound:
		return StatusNotFound
	case KindParse:
		return StatusParseFailed
	case KindAnchor:
		return StatusAnchorMissing
	case KindWrite:
		return StatusWriteFailed
	default:
		return fallback
	}
}

func (r *RunReport) record(o Outcome, obs Observer) {
	r.Outcomes = append(r.Outcomes, o)
	r.Processed++
	switch {
	case o.Status == StatusAdded:
		r.Updated++
		r.EntriesAdded += o.Added
	case o.Status.Failed():
		r.Failed++
	}
	if obs != nil {
		obs.OnOutcome(o)
	}
}
