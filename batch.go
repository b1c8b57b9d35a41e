package strsync

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// LoadBatch reads a candidate table from a YAML file and validates it before
// any resource file is touched: locale codes must be parseable language tags,
// keys non-empty and unique within a locale.
func LoadBatch(path string) (CandidateTable, error) {
	var table CandidateTable
	data, err := os.ReadFile(path)
	if err != nil {
		return table, fmt.Errorf("read batch file: %w", err)
	}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return table, fmt.Errorf("parse batch YAML %s: %w", path, err)
	}
	if err := ValidateTable(table); err != nil {
		return table, fmt.Errorf("invalid batch %s: %w", path, err)
	}
	return table, nil
}

// ValidateTable checks table consistency. Values are deliberately not
// inspected; entry text is opaque to the merge.
func ValidateTable(table CandidateTable) error {
	if len(table.Locales) == 0 {
		return fmt.Errorf("no locales declared")
	}
	seenLocales := make(map[string]struct{}, len(table.Locales))
	for _, batch := range table.Locales {
		if batch.Code == "" {
			return fmt.Errorf("locale with empty code")
		}
		if _, err := language.Parse(batch.Code); err != nil {
			return fmt.Errorf("locale %q: %w", batch.Code, err)
		}
		if _, dup := seenLocales[batch.Code]; dup {
			return fmt.Errorf("locale %q declared twice", batch.Code)
		}
		seenLocales[batch.Code] = struct{}{}
		seenKeys := make(map[string]struct{}, len(batch.Entries))
		for _, e := range batch.Entries {
			if e.Key == "" {
				return fmt.Errorf("locale %q: entry with empty key", batch.Code)
			}
			if _, dup := seenKeys[e.Key]; dup {
				return fmt.Errorf("locale %q: key %q declared twice", batch.Code, e.Key)
			}
			seenKeys[e.Key] = struct{}{}
		}
	}
	return nil
}

// AndroidLocalePaths builds the conventional locale→path map for an Android
// res/ tree: the default locale lives in values/strings.xml, every other
// locale in values-<code>/strings.xml (region subtags in the -r form, e.g.
// pt-BR -> values-pt-rBR).
func AndroidLocalePaths(defaultLocale string, codes []string) map[string]string {
	paths := make(map[string]string, len(codes)+1)
	if defaultLocale != "" {
		paths[defaultLocale] = filepath.Join("values", "strings.xml")
	}
	for _, code := range codes {
		if code == defaultLocale {
			continue
		}
		paths[code] = filepath.Join("values-"+androidLocale(code), "strings.xml")
	}
	return paths
}

// androidLocale converts a BCP-47 tag to the Android values-dir form.
func androidLocale(code string) string {
	parts := strings.SplitN(code, "-", 2)
	if len(parts) == 2 && parts[1] != "" {
		return parts[0] + "-r" + parts[1]
	}
	return code
}

// LocaleCodes returns the table's locale codes in declared order.
func (t CandidateTable) LocaleCodes() []string {
	codes := make([]string, 0, len(t.Locales))
	for _, b := range t.Locales {
		codes = append(codes, b.Code)
	}
	return codes
}
