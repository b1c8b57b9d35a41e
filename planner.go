package strsync

import "github.com/loopcontext/strsync/internal/xmlres"

// Plan returns the subsequence of candidates whose key is not in existing,
// preserving candidate order. A key repeated inside candidates survives only
// once (first occurrence wins). Pure function, no I/O.
func Plan(existing map[string]struct{}, candidates []Entry) []Entry {
	var planned []Entry
	seen := make(map[string]struct{}, len(candidates))
	for _, e := range candidates {
		if e.Key == "" {
			continue
		}
		if _, ok := existing[e.Key]; ok {
			continue
		}
		if _, ok := seen[e.Key]; ok {
			continue
		}
		seen[e.Key] = struct{}{}
		planned = append(planned, e)
	}
	return planned
}

// Diverging returns the keys (in candidate order) that already exist with a
// value different from the candidate's. Diagnostic only: the merge always
// keeps the existing value. Stores return values in rendered form, so a
// candidate matches when either its plain or its escaped text is current.
func Diverging(store ResourceStore, c Content, candidates []Entry) []string {
	var keys []string
	for _, e := range candidates {
		current, ok := store.Lookup(c, e.Key)
		if !ok {
			continue
		}
		if current != e.Value && current != xmlres.Escape(e.Value) {
			keys = append(keys, e.Key)
		}
	}
	return keys
}
