package account

import (
	"encoding/json"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Credential is the opaque authorization payload forwarded to the signing
// service. Nothing in this program inspects its contents.
type Credential map[string]any

// Account describes who is using the signer
type Account struct {
	Name       string     `json:"name"`
	Admin      bool       `json:"admin"`
	Credential Credential `json:"credential"`
}

// Provider exposes the active account's credential. Implementations must be
// safe to read from the UI goroutine at any time.
type Provider interface {
	Auth() Credential
	Account() Account
}

// Static is a Provider backed by a fixed account
type Static struct {
	account Account
}

// NewStatic creates a provider that always returns acct
func NewStatic(acct Account) *Static {
	return &Static{account: acct}
}

// Auth returns the account credential
func (s *Static) Auth() Credential {
	return s.account.Credential
}

// Account returns the account description
func (s *Static) Account() Account {
	return s.account
}

// LoadFile reads an account file. Both YAML and JSON are accepted.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read account file: %w", err)
	}

	acct, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account file %s: %w", path, err)
	}

	return NewStatic(acct), nil
}

// Parse decodes an account document
func Parse(data []byte) (Account, error) {
	var acct Account
	if err := yaml.Unmarshal(data, &acct); err != nil {
		return Account{}, err
	}

	if len(acct.Credential) == 0 {
		return Account{}, fmt.Errorf("account has no credential")
	}
	if acct.Name == "" {
		acct.Name = "default"
	}

	return acct, nil
}

// FromJSON builds an admin account around an inline JSON credential.
// Inline credentials are assumed to carry admin rights since there is no
// account file to say otherwise.
func FromJSON(raw string) (*Static, error) {
	var cred Credential
	if err := json.Unmarshal([]byte(raw), &cred); err != nil {
		return nil, fmt.Errorf("failed to parse inline credential: %w", err)
	}
	if len(cred) == 0 {
		return nil, fmt.Errorf("inline credential is empty")
	}

	return NewStatic(Account{
		Name:       "inline",
		Admin:      true,
		Credential: cred,
	}), nil
}
