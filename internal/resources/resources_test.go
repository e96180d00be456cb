package resources

import (
	"strings"
	"testing"
)

func TestGuides(t *testing.T) {
	list, err := Guides()
	if err != nil {
		t.Fatalf("guides: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 guides, got %d", len(list))
	}

	seen := map[string]bool{}
	for _, r := range list {
		if seen[r.URI] {
			t.Fatalf("duplicate uri %s", r.URI)
		}
		seen[r.URI] = true
		if !strings.HasPrefix(r.URI, "guide://hallucination-detection/") {
			t.Fatalf("unexpected uri %s", r.URI)
		}
		if r.MIMEType != "text/markdown" {
			t.Fatalf("unexpected mime type %s", r.MIMEType)
		}
		if !strings.HasPrefix(r.Text, "# ") {
			t.Fatalf("guide %s should start with a heading", r.URI)
		}
	}
	if !strings.Contains(list[1].Text, "Step 1") {
		t.Fatalf("fact-check guide missing steps")
	}
}
