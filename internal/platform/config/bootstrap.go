package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"
)

// Validator kinds accepted in a bootstrap file.
const (
	ValidatorKindMock    = "mock"
	ValidatorKindGroth16 = "groth16"
)

// organizationAdminQuery must be present among the default queries.
const organizationAdminQuery = "ORGANIZATION_ADMIN"

// Bootstrap is the initial state loaded on first start: validators, the
// circuit-to-builder bindings, the global default queries and the initial
// protocol issuers.
type Bootstrap struct {
	Validators      []ValidatorConfig `json:"validators"`
	Builders        []BuilderConfig   `json:"builders"`
	DefaultQueries  []QueryConfig     `json:"defaultQueries"`
	ProtocolIssuers []string          `json:"protocolIssuers"`
}

// ValidatorConfig registers one proof validator under Ref.
type ValidatorConfig struct {
	Ref       string `json:"ref"`
	Kind      string `json:"kind"`
	CircuitID string `json:"circuitId"`
	// VerifyingKey is a snarkjs verification_key.json path, relative to the
	// bootstrap file. groth16 only.
	VerifyingKey string `json:"verifyingKey,omitempty"`
	// Inputs overrides the mock's named public-input positions.
	Inputs map[string]int `json:"inputs,omitempty"`
}

// BuilderConfig binds a circuit id to a builder name.
type BuilderConfig struct {
	CircuitID string `json:"circuitId"`
	Builder   string `json:"builder"`
}

type QueryConfig struct {
	Name         string        `json:"name"`
	Metadata     string        `json:"metadata"`
	Payload      hexutil.Bytes `json:"payload"`
	Validator    string        `json:"validator"`
	IsStatic     bool          `json:"isStatic"`
	IsGroupLevel bool          `json:"isGroupLevel"`
}

// LoadBootstrap reads and validates a bootstrap file. Relative verifying
// key paths are resolved against the file's directory.
func LoadBootstrap(path string) (*Bootstrap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bootstrap file: %w", err)
	}
	b, err := ParseBootstrap(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range b.Validators {
		if vk := b.Validators[i].VerifyingKey; vk != "" && !filepath.IsAbs(vk) {
			b.Validators[i].VerifyingKey = filepath.Join(dir, vk)
		}
	}
	return b, nil
}

// ParseBootstrap decodes and validates a bootstrap document.
func ParseBootstrap(raw []byte) (*Bootstrap, error) {
	var b Bootstrap
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("decode bootstrap: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Bootstrap) Validate() error {
	refs := make(map[string]struct{}, len(b.Validators))
	for i, v := range b.Validators {
		if strings.TrimSpace(v.Ref) == "" {
			return fmt.Errorf("validators[%d]: ref is required", i)
		}
		if _, dup := refs[v.Ref]; dup {
			return fmt.Errorf("validators[%d]: duplicate ref %q", i, v.Ref)
		}
		refs[v.Ref] = struct{}{}
		if v.CircuitID == "" {
			return fmt.Errorf("validators[%d]: circuitId is required", i)
		}
		switch v.Kind {
		case ValidatorKindMock:
		case ValidatorKindGroth16:
			if v.VerifyingKey == "" {
				return fmt.Errorf("validators[%d]: groth16 validator needs a verifyingKey", i)
			}
		default:
			return fmt.Errorf("validators[%d]: unknown validator kind %q", i, v.Kind)
		}
	}

	for i, e := range b.Builders {
		if e.CircuitID == "" || e.Builder == "" {
			return fmt.Errorf("builders[%d]: circuitId and builder are required", i)
		}
	}

	names := make(map[string]struct{}, len(b.DefaultQueries))
	for i, q := range b.DefaultQueries {
		if strings.TrimSpace(q.Name) == "" {
			return fmt.Errorf("defaultQueries[%d]: name is required", i)
		}
		if _, dup := names[q.Name]; dup {
			return fmt.Errorf("defaultQueries[%d]: duplicate query %q", i, q.Name)
		}
		names[q.Name] = struct{}{}
		if _, ok := refs[q.Validator]; !ok {
			return fmt.Errorf("defaultQueries[%d]: validator %q is not declared", i, q.Validator)
		}
	}
	if _, ok := names[organizationAdminQuery]; !ok {
		return fmt.Errorf("defaultQueries must include %s", organizationAdminQuery)
	}
	if dups := lo.FindDuplicates(b.ProtocolIssuers); len(dups) > 0 {
		return fmt.Errorf("protocolIssuers: duplicate ids %v", dups)
	}
	return nil
}
