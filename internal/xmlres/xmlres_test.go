package xmlres

import (
	"bytes"
	"testing"
)

const canonical = `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <!-- App name -->
    <string name="app_name">Paperless</string>
    <string name="greeting">Hello &amp; welcome</string>
    <string name="count" translatable="false">42</string>
</resources>
`

func TestParse_Keys(t *testing.T) {
	doc, err := Parse([]byte(canonical))
	if err != nil {
		t.Fatal(err)
	}
	keys := doc.Keys()
	want := []string{"app_name", "greeting", "count"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestParse_ValuesKeptEscaped(t *testing.T) {
	doc, err := Parse([]byte(canonical))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := doc.Get("greeting")
	if !ok {
		t.Fatal("greeting not found")
	}
	// Values stay in rendered form; entities are never decoded away.
	if v != "Hello &amp; welcome" {
		t.Errorf("Get(greeting) = %q, want %q", v, "Hello &amp; welcome")
	}
	if !doc.Has("app_name") || doc.Has("missing") {
		t.Error("Has() misreports membership")
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unclosed element", `<?xml version="1.0"?><resources><string name="a">x`},
		{"mismatched tags", `<resources><string name="a">x</item></resources>`},
		{"no resources root", `<?xml version="1.0"?><other/>`},
		{"plain text", `this is not XML at all <`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.data)
			}
		})
	}
}

func TestParse_EmptyResources(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0" encoding="utf-8"?><resources></resources>`))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Keys()) != 0 {
		t.Errorf("empty resources has keys %v", doc.Keys())
	}
}

func TestMarshal_CanonicalRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(canonical))
	if err != nil {
		t.Fatal(err)
	}
	out := doc.Marshal()
	if !bytes.Equal(out, []byte(canonical)) {
		t.Errorf("round trip changed bytes:\ngot:\n%s\nwant:\n%s", out, canonical)
	}
}

func TestMarshal_AppendAtEnd(t *testing.T) {
	doc, err := Parse([]byte(canonical))
	if err != nil {
		t.Fatal(err)
	}
	doc.Append("farewell", "Bye")
	out := string(doc.Marshal())
	want := `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <!-- App name -->
    <string name="app_name">Paperless</string>
    <string name="greeting">Hello &amp; welcome</string>
    <string name="count" translatable="false">42</string>
    <string name="farewell">Bye</string>
</resources>
`
	if out != want {
		t.Errorf("append output:\n%s\nwant:\n%s", out, want)
	}
}

func TestMarshal_InlineMarkupPassthrough(t *testing.T) {
	src := `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="pages">Page <xliff:g id="num">%d</xliff:g> of <xliff:g id="total">%d</xliff:g></string>
</resources>
`
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if out := string(doc.Marshal()); out != src {
		t.Errorf("inline markup not preserved:\n%s\nwant:\n%s", out, src)
	}
}

func TestMarshal_EntityValuesSurviveAppend(t *testing.T) {
	src := `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="cmp">1 &lt; 2 &gt; 3</string>
    <string name="amp">Drag &amp; drop</string>
</resources>
`
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	doc.Append("farewell", "Bye")
	out := doc.Marshal()
	want := `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="cmp">1 &lt; 2 &gt; 3</string>
    <string name="amp">Drag &amp; drop</string>
    <string name="farewell">Bye</string>
</resources>
`
	if string(out) != want {
		t.Errorf("entities not preserved:\n%s\nwant:\n%s", out, want)
	}
	// The output must itself be well-formed input.
	if _, err := Parse(out); err != nil {
		t.Errorf("Marshal produced unparseable output: %v", err)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"1 < 2", "1 &lt; 2"},
		{"2 > 1", "2 &gt; 1"},
		{`don\'t touch android escapes`, `don\'t touch android escapes`},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
