package types

import (
	"fmt"
	"strings"
)

// Params name the signing domain of delegation authorizations.
type Params struct {
	DomainName    string `json:"domain_name" yaml:"domain_name"`
	DomainVersion string `json:"domain_version" yaml:"domain_version"`
}

func NewParams(name, version string) Params {
	return Params{DomainName: name, DomainVersion: version}
}

func DefaultParams() Params {
	return NewParams("Governance Ledger", "1")
}

func (p Params) Validate() error {
	if strings.TrimSpace(p.DomainName) == "" {
		return fmt.Errorf("domain name cannot be blank")
	}
	if strings.TrimSpace(p.DomainVersion) == "" {
		return fmt.Errorf("domain version cannot be blank")
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf(`Votes Params:
  Domain Name:    %s
  Domain Version: %s`, p.DomainName, p.DomainVersion)
}
