package strsync

//go:generate mockgen -source=$GOFILE -package mock_strsync -destination=test/mock/$GOFILE

// Content is the in-memory form of one resource file. Each store strategy has
// its own representation; callers treat it as opaque and pass it back to the
// store that produced it.
type Content interface{}

// ResourceStore reads a resource file into an addressable form, answers key
// membership, appends entries at the canonical insertion point and renders
// the result. Both strategies (structured tree and marker-based text) satisfy
// the same contract and must produce equivalent key sets and values.
type ResourceStore interface {
	// Read loads the file at path. It fails with a KindNotFound error when
	// the file does not exist and with KindParse when the content cannot be
	// interpreted (structured strategy only).
	Read(path string) (Content, error)

	// ExistingKeys returns the set of keys currently defined. Computed fresh
	// from content on every call; never cached across runs.
	ExistingKeys(c Content) map[string]struct{}

	// Lookup returns the current value of a key, for divergence diagnostics.
	Lookup(c Content, key string) (string, bool)

	// Append returns new content with entries inserted at the canonical
	// insertion point. No byte outside the insertion point is altered. The
	// text strategy fails with KindAnchor when its marker is absent.
	Append(c Content, entries []Entry) (Content, error)

	// Serialize renders content to bytes. The structured strategy re-renders
	// the tree in canonical form; the text strategy returns the text as is.
	Serialize(c Content) []byte
}
