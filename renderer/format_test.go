package renderer

import (
	"io"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "md", "html", "json"} {
		f, err := ParseFormat(s)
		if err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("ParseFormat(pdf) error = nil, want an error")
	}
}

func TestRender(t *testing.T) {
	md := ValuationMarkdown(sampleValuation(t))

	got, err := Render(Markdown, md, nil)
	if err != nil || got != md {
		t.Errorf("Render(md) = %q, %v, want the markdown unchanged", got, err)
	}

	got, err = Render(HTML, md, nil)
	if err != nil {
		t.Fatalf("Render(html) error = %v", err)
	}
	for _, want := range []string{"<h1>Portfolio value in USD</h1>", "<table>", "ETH</td>", "<strong>Total</strong>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render(html) does not contain %q:\n%s", want, got)
		}
	}

	got, err = Render(JSON, md, sampleValuation(t))
	if err != nil {
		t.Fatalf("Render(json) error = %v", err)
	}
	if !strings.Contains(got, `"currency": "USD"`) || !strings.HasSuffix(got, "}\n") {
		t.Errorf("Render(json) = %s", got)
	}

	got, err = Render(Text, md, nil)
	if err != nil {
		t.Fatalf("Render(text) error = %v", err)
	}
	if !strings.Contains(got, "ETH") {
		t.Errorf("Render(text) does not contain ETH:\n%s", got)
	}
}

func TestConditionalBlock(t *testing.T) {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool { io.WriteString(w, "dropped"); return false })
	ConditionalBlock(&b, func(w io.Writer) bool { io.WriteString(w, "kept"); return true })
	if got := b.String(); got != "kept" {
		t.Errorf("ConditionalBlock() wrote %q, want %q", got, "kept")
	}
}
