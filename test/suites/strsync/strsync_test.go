package test_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/loopcontext/strsync"
)

const emptyResources = `<?xml version="1.0" encoding="utf-8"?>
<resources>
</resources>
`

var _ = Describe("Resource Merge", func() {
	var root string
	var cfg strsync.Config

	writeLocale := func(rel, content string) string {
		path := filepath.Join(root, rel)
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	readLocale := func(rel string) string {
		data, err := os.ReadFile(filepath.Join(root, rel))
		Expect(err).NotTo(HaveOccurred())
		return string(data)
	}

	BeforeEach(func() {
		var err error
		root, err = os.MkdirTemp("", "strsync-suite")
		Expect(err).NotTo(HaveOccurred())
		cfg = strsync.Config{Root: root, LocalePaths: map[string]string{
			"en": filepath.Join("values", "strings.xml"),
			"fr": filepath.Join("values-fr", "strings.xml"),
		}}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(root)).To(Succeed())
	})

	Describe("adding entries to an empty collection", func() {
		It("appends the entry and reports the count", func() {
			writeLocale("values/strings.xml", emptyResources)

			merger := strsync.NewMerger(cfg, strsync.NewTreeStore())
			report := merger.Run(strsync.CandidateTable{Locales: []strsync.LocaleBatch{
				{Code: "en", Entries: []strsync.Entry{{Key: "k1", Value: "Hello"}}},
			}})

			Expect(report.Outcomes).To(HaveLen(1))
			Expect(report.Outcomes[0].Status).To(Equal(strsync.StatusAdded))
			Expect(report.Outcomes[0].Added).To(Equal(1))
			Expect(readLocale("values/strings.xml")).To(ContainSubstring(`<string name="k1">Hello</string>`))
		})
	})

	Describe("a key that already exists", func() {
		It("is a no-op and leaves the file byte-for-byte unchanged", func() {
			content := `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="k1">Hello</string>
</resources>
`
			writeLocale("values/strings.xml", content)

			merger := strsync.NewMerger(cfg, strsync.NewTreeStore())
			report := merger.Run(strsync.CandidateTable{Locales: []strsync.LocaleBatch{
				{Code: "en", Entries: []strsync.Entry{{Key: "k1", Value: "Hello"}}},
			}})

			Expect(report.Outcomes[0].Status).To(Equal(strsync.StatusNoOp))
			Expect(readLocale("values/strings.xml")).To(Equal(content))
		})

		It("keeps the existing value when the candidate differs", func() {
			writeLocale("values/strings.xml", `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="k1">Existing text</string>
</resources>
`)

			merger := strsync.NewMerger(cfg, strsync.NewTreeStore())
			report := merger.Run(strsync.CandidateTable{Locales: []strsync.LocaleBatch{
				{Code: "en", Entries: []strsync.Entry{
					{Key: "k1", Value: "Conflicting text"},
					{Key: "k2", Value: "Fresh"},
				}},
			}})

			Expect(report.Outcomes[0].Status).To(Equal(strsync.StatusAdded))
			Expect(report.Outcomes[0].Diverged).To(ConsistOf("k1"))
			merged := readLocale("values/strings.xml")
			Expect(merged).To(ContainSubstring("Existing text"))
			Expect(merged).NotTo(ContainSubstring("Conflicting text"))
			Expect(merged).To(ContainSubstring("Fresh"))
		})
	})

	Describe("a missing resource file", func() {
		It("is reported and does not stop the remaining locales", func() {
			writeLocale("values-fr/strings.xml", emptyResources)

			merger := strsync.NewMerger(cfg, strsync.NewTreeStore())
			entries := []strsync.Entry{{Key: "k1", Value: "v"}}
			report := merger.Run(strsync.CandidateTable{Locales: []strsync.LocaleBatch{
				{Code: "en", Entries: entries},
				{Code: "fr", Entries: entries},
			}})

			Expect(report.Outcomes[0].Status).To(Equal(strsync.StatusNotFound))
			Expect(report.Outcomes[1].Status).To(Equal(strsync.StatusAdded))
			Expect(report.Failed).To(Equal(1))
			Expect(report.Updated).To(Equal(1))
		})
	})

	Describe("text mode with an absent anchor", func() {
		It("fails the locale and leaves the file unchanged", func() {
			writeLocale("values/strings.xml", emptyResources)

			merger := strsync.NewMerger(cfg, strsync.NewTextStore("nonexistent_anchor"))
			report := merger.Run(strsync.CandidateTable{Locales: []strsync.LocaleBatch{
				{Code: "en", Entries: []strsync.Entry{{Key: "k1", Value: "v"}}},
			}})

			Expect(report.Outcomes[0].Status).To(Equal(strsync.StatusAnchorMissing))
			Expect(strsync.IsAnchorNotFound(report.Outcomes[0].Err)).To(BeTrue())
			Expect(readLocale("values/strings.xml")).To(Equal(emptyResources))
		})
	})

	Describe("running the same batch twice", func() {
		table := strsync.CandidateTable{Locales: []strsync.LocaleBatch{
			{Code: "en", Entries: []strsync.Entry{
				{Key: "b_second", Value: "2"},
				{Key: "a_first", Value: "1"},
				{Key: "c_third", Value: "3"},
			}},
		}}

		modes := map[string]func() strsync.ResourceStore{
			"tree": func() strsync.ResourceStore { return strsync.NewTreeStore() },
			"text": func() strsync.ResourceStore { return strsync.NewTextStore("") },
		}

		for name, newStore := range modes {
			name, newStore := name, newStore
			Context("in "+name+" mode", func() {
				It("is idempotent and preserves candidate order", func() {
					writeLocale("values/strings.xml", emptyResources)

					merger := strsync.NewMerger(cfg, newStore())
					first := merger.Run(table)
					Expect(first.EntriesAdded).To(Equal(3))
					afterFirst := readLocale("values/strings.xml")

					// Candidate order, not alphabetical order.
					Expect(indexOf(afterFirst, "b_second")).To(BeNumerically("<", indexOf(afterFirst, "a_first")))
					Expect(indexOf(afterFirst, "a_first")).To(BeNumerically("<", indexOf(afterFirst, "c_third")))

					second := merger.Run(table)
					Expect(second.Updated).To(Equal(0))
					Expect(second.Outcomes[0].Status).To(Equal(strsync.StatusNoOp))
					Expect(readLocale("values/strings.xml")).To(Equal(afterFirst))

					// No key appears more than once.
					re := regexp.MustCompile(`name="([^"]+)"`)
					seen := map[string]int{}
					for _, m := range re.FindAllStringSubmatch(afterFirst, -1) {
						seen[m[1]]++
					}
					for key, n := range seen {
						Expect(n).To(Equal(1), "key %s appears %d times", key, n)
					}
				})
			})
		}
	})
})

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}
