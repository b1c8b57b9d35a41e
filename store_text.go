package strsync

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/loopcontext/strsync/internal/xmlres"
)

const closingTag = "</resources>"

var stringNameRegex = regexp.MustCompile(`<string name="([^"]+)"`)

// TextStore is the marker strategy: the file is treated as raw text and new
// entries are spliced in as literal lines. Nothing outside the insertion
// point changes, whitespace included. Reads never fail to parse; a file whose
// markers are missing fails at append time with KindAnchor instead of being
// modified at a guessed location.
//
// Anchor, when non-empty, names an existing entry; insertion happens right
// after the line holding that entry's closing tag. With an empty Anchor the
// block goes immediately before the closing </resources> tag.
type TextStore struct {
	Anchor string
}

// NewTextStore returns the marker-based text store. anchor may be empty.
func NewTextStore(anchor string) *TextStore {
	return &TextStore{Anchor: anchor}
}

type textContent struct {
	text string
}

func (s *TextStore) Read(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newStoreError(KindNotFound, path, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return textContent{text: string(data)}, nil
}

func (s *TextStore) ExistingKeys(c Content) map[string]struct{} {
	text := c.(textContent).text
	keys := make(map[string]struct{})
	for _, m := range stringNameRegex.FindAllStringSubmatch(text, -1) {
		keys[m[1]] = struct{}{}
	}
	return keys
}

func (s *TextStore) Lookup(c Content, key string) (string, bool) {
	text := c.(textContent).text
	// (?s) so values spanning multiple lines are matched too.
	re := regexp.MustCompile(`(?s)<string name="` + regexp.QuoteMeta(key) + `"[^>]*>(.*?)</string>`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (s *TextStore) Append(c Content, entries []Entry) (Content, error) {
	text := c.(textContent).text
	block := entryBlock(entries)

	if s.Anchor != "" {
		pos, err := s.anchorInsertPos(text)
		if err != nil {
			return nil, err
		}
		return textContent{text: text[:pos] + block + text[pos:]}, nil
	}

	idx := strings.Index(text, closingTag)
	if idx < 0 {
		return nil, newStoreError(KindAnchor, "", fmt.Errorf("no %s tag", closingTag))
	}
	return textContent{text: text[:idx] + block + text[idx:]}, nil
}

// anchorInsertPos locates the byte offset just past the newline that ends the
// anchor entry's line.
func (s *TextStore) anchorInsertPos(text string) (int, error) {
	marker := `<string name="` + s.Anchor + `"`
	markerPos := strings.Index(text, marker)
	if markerPos < 0 {
		return 0, newStoreError(KindAnchor, "", fmt.Errorf("anchor entry %q not present", s.Anchor))
	}
	closePos := strings.Index(text[markerPos:], "</string>")
	if closePos < 0 {
		return 0, newStoreError(KindAnchor, "", fmt.Errorf("anchor entry %q has no closing tag", s.Anchor))
	}
	lineEnd := markerPos + closePos + len("</string>")
	nl := strings.Index(text[lineEnd:], "\n")
	if nl < 0 {
		return 0, newStoreError(KindAnchor, "", fmt.Errorf("anchor entry %q has no line end", s.Anchor))
	}
	return lineEnd + nl + 1, nil
}

func (s *TextStore) Serialize(c Content) []byte {
	return []byte(c.(textContent).text)
}

// entryBlock renders entries as literal resource lines, one per entry, with
// the same indentation and escaping the tree strategy uses.
func entryBlock(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s<string name=%q>%s</string>\n", xmlres.Indent, e.Key, xmlres.Escape(e.Value))
	}
	return b.String()
}
