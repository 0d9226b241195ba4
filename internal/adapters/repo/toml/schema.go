package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Active   string          `toml:"active,omitempty"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	return nil
}

type profileSchema struct {
	ID                string `toml:"id"`
	Name              string `toml:"name,omitempty"`
	ChainID           string `toml:"chain_id"`
	Endpoints         urls   `toml:"endpoints"`
	DappOrigin        string `toml:"dapp_origin,omitempty"`
	ReturnTempAccount bool   `toml:"return_temp_account,omitempty"`
}

type urls struct {
	Signing     string `toml:"signing"`
	AutoSigning string `toml:"auto_signing,omitempty"`
	RPC         string `toml:"rpc"`
	Metric      string `toml:"metric,omitempty"`
	Activation  string `toml:"activation,omitempty"`
}
