package manifest

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/exa-labs/exa-mcp-server/internal/tools"
)

// Manifest describes the tools a server release exposes.
type Manifest struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	Tools       []Tool    `json:"tools"`
}

// Tool is one catalog entry together with its MCP descriptor.
type Tool struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Summary          string             `json:"summary"`
	EnabledByDefault bool               `json:"enabled_by_default"`
	Description      string             `json:"description"`
	InputSchema      *jsonschema.Schema `json:"input_schema"`
}

// Build lists catalog in order under the given release name and version.
func Build(name, version string, at time.Time, catalog []tools.Entry) Manifest {
	m := Manifest{
		Name:        name,
		Version:     strings.TrimPrefix(version, "v"),
		GeneratedAt: at.UTC(),
		Tools:       make([]Tool, 0, len(catalog)),
	}
	for _, e := range catalog {
		d := e.Descriptor()
		m.Tools = append(m.Tools, Tool{
			ID:               e.ID,
			Name:             e.Name,
			Summary:          e.Summary,
			EnabledByDefault: e.EnabledByDefault,
			Description:      d.Description,
			InputSchema:      d.InputSchema,
		})
	}
	return m
}

// Marshal renders m exactly as it is written to disk and signed.
func Marshal(m Manifest) ([]byte, error) {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(raw, '\n'), nil
}

// Sign signs raw with a base64 ed25519 private key and returns the signature
// and the base64 public key.
func Sign(raw []byte, privKeyB64 string) ([]byte, string, error) {
	priv, err := base64.StdEncoding.DecodeString(privKeyB64)
	if err != nil {
		return nil, "", fmt.Errorf("decode privkey: %w", err)
	}
	if len(priv) != ed25519.PrivateKeySize {
		return nil, "", fmt.Errorf("invalid private key length: %d", len(priv))
	}
	key := ed25519.PrivateKey(priv)
	pub := key.Public().(ed25519.PublicKey)
	return ed25519.Sign(key, raw), base64.StdEncoding.EncodeToString(pub), nil
}

// Verify checks a manifest signature using a base64 public key.
func Verify(raw, sig []byte, pubKeyB64 string) error {
	pub, err := base64.StdEncoding.DecodeString(pubKeyB64)
	if err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		return errors.New("invalid public key length")
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), raw, sig) {
		return errors.New("signature verification failed")
	}
	return nil
}
