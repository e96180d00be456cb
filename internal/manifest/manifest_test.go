package manifest

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/exa-labs/exa-mcp-server/internal/tools"
)

func TestBuildFollowsCatalog(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	m := Build("exa-mcp-server", "v1.2.3", at, tools.Catalog())

	if m.Version != "1.2.3" {
		t.Fatalf("version = %q", m.Version)
	}
	if !m.GeneratedAt.Equal(at) {
		t.Fatalf("generated_at = %v", m.GeneratedAt)
	}
	catalog := tools.Catalog()
	if len(m.Tools) != len(catalog) {
		t.Fatalf("expected %d tools, got %d", len(catalog), len(m.Tools))
	}
	for i, e := range catalog {
		got := m.Tools[i]
		if got.ID != e.ID || got.Name != e.Name || got.InputSchema == nil || got.Description == "" {
			t.Fatalf("tool %d mismatch: %+v", i, got)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	raw, err := Marshal(Build("exa", "1.0.0", time.Unix(0, 0), tools.Catalog()))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if raw[len(raw)-1] != '\n' {
		t.Fatalf("expected trailing newline")
	}

	var decoded struct {
		Tools []struct {
			ID          string         `json:"id"`
			InputSchema map[string]any `json:"input_schema"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Tools[0].ID != tools.WebSearchID {
		t.Fatalf("first tool = %q", decoded.Tools[0].ID)
	}
	if decoded.Tools[0].InputSchema["type"] != "object" {
		t.Fatalf("schema = %v", decoded.Tools[0].InputSchema)
	}
}

func TestSignAndVerify(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	raw := []byte(`{"name":"exa"}` + "\n")

	sig, pubB64, err := Sign(raw, base64.StdEncoding.EncodeToString(priv))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(raw, sig, pubB64); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if err := Verify([]byte(`{"name":"other"}`), sig, pubB64); err == nil {
		t.Fatalf("expected verification failure for tampered manifest")
	}
	if err := Verify(raw, sig, "not-base64!"); err == nil {
		t.Fatalf("expected error for invalid public key")
	}
}

func TestSignRejectsBadKey(t *testing.T) {
	if _, _, err := Sign([]byte("x"), base64.StdEncoding.EncodeToString([]byte("short"))); err == nil {
		t.Fatalf("expected error for short key")
	}
}
