package strsync

// Entry is one translation entry: a string resource name and its text. The
// value is opaque to the merge core; escape sequences and inline markup are
// carried through unmodified.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// LocaleBatch is the ordered list of candidate entries for one locale.
type LocaleBatch struct {
	Code    string  `yaml:"code"`
	Entries []Entry `yaml:"entries"`
}

// CandidateTable is a batch of proposed entries, ordered by locale as
// declared. It is immutable during a run. Anchor, when set, names an existing
// entry after which the text strategy inserts; when empty, insertion happens
// at the end of the resource collection.
type CandidateTable struct {
	Anchor  string        `yaml:"anchor"`
	Locales []LocaleBatch `yaml:"locales"`
}

// Config describes where the per-locale resource files live. LocalePaths maps
// a locale code to the file path relative to Root; a locale missing from the
// map is a configuration mismatch reported for that locale, never a reason to
// abort the run. At most one file per locale.
type Config struct {
	Root        string            `yaml:"root"`
	LocalePaths map[string]string `yaml:"locale_paths"`
}
