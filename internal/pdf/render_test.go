package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTranslateMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "no markup here", want: "no markup here"},
		{name: "bold span", in: "**1. PARTIES**", want: "<b>1. PARTIES</b>"},
		{
			name: "two bold spans one line",
			in:   "**Landlord:** Cymbal and **Tenant:** Apex",
			want: "<b>Landlord:</b> Cymbal and <b>Tenant:</b> Apex",
		},
		{name: "newline becomes break", in: "line one\nline two", want: "line one<br>line two"},
		{
			name: "bold and breaks together",
			in:   "**3. TERM OF LEASE**\nThe term shall be 10 years.",
			want: "<b>3. TERM OF LEASE</b><br>The term shall be 10 years.",
		},
		{name: "unclosed markers left alone", in: "**dangling", want: "**dangling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := translateMarkup(tt.in); got != tt.want {
				t.Errorf("translateMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderFile(t *testing.T) {
	t.Parallel()

	text := "LAND LEASE AGREEMENT\n\n**1. PARTIES**\nLandlord: Cymbal.\nTenant: Apex Logistics.\n\n**2. RENT**\nAnnual rent of $120,000 USD."
	filename := filepath.Join(t.TempDir(), "lease_agreement_1.pdf")

	if err := (Renderer{}).RenderFile(text, filename); err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading rendered file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("rendered file is empty")
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("rendered file does not start with PDF header, got %q", data[:8])
	}
}
