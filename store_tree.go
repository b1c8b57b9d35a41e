package strsync

import (
	"fmt"
	"os"

	"github.com/loopcontext/strsync/internal/xmlres"
)

// TreeStore is the structured strategy: the file is parsed into a document
// tree and new entries become child elements at the end of the <resources>
// collection. Malformed files are rejected instead of guessed at.
type TreeStore struct{}

// NewTreeStore returns the structured-tree store.
func NewTreeStore() *TreeStore {
	return &TreeStore{}
}

type treeContent struct {
	doc *xmlres.Document
}

func (s *TreeStore) Read(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newStoreError(KindNotFound, path, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := xmlres.Parse(data)
	if err != nil {
		return nil, newStoreError(KindParse, path, err)
	}
	return treeContent{doc: doc}, nil
}

func (s *TreeStore) ExistingKeys(c Content) map[string]struct{} {
	doc := c.(treeContent).doc
	keys := make(map[string]struct{})
	for _, k := range doc.Keys() {
		keys[k] = struct{}{}
	}
	return keys
}

func (s *TreeStore) Lookup(c Content, key string) (string, bool) {
	return c.(treeContent).doc.Get(key)
}

func (s *TreeStore) Append(c Content, entries []Entry) (Content, error) {
	doc := c.(treeContent).doc
	for _, e := range entries {
		doc.Append(e.Key, e.Value)
	}
	return treeContent{doc: doc}, nil
}

func (s *TreeStore) Serialize(c Content) []byte {
	return c.(treeContent).doc.Marshal()
}
