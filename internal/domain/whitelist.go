package domain

import (
	"slices"
	"strings"
)

const (
	TokenContract  AccountName = "eosio.token"
	TransferAction             = "transfer"
)

// WhitelistEntry pre-approves a contract for silent signing. For token
// transfers only the listed recipients are approved.
type WhitelistEntry struct {
	Contract   AccountName   `json:"contract"`
	Domain     string        `json:"domain,omitempty"`
	Recipients []AccountName `json:"recipients,omitempty"`
}

type Whitelist []WhitelistEntry

func (w Whitelist) Allows(action Action) bool {
	for _, entry := range w {
		if entry.Contract != action.Account {
			continue
		}
		if action.Is(TokenContract, TransferAction) {
			if slices.Contains(entry.Recipients, AccountName(action.Data.String("to"))) {
				return true
			}
			continue
		}
		return true
	}

	return false
}

// CanAutoSign reports whether every action of tx is whitelisted.
func CanAutoSign(tx Transaction, whitelist Whitelist) bool {
	for _, action := range tx.Actions {
		if !whitelist.Allows(action) {
			return false
		}
	}
	return true
}

// EngineRule disables auto-sign for user agents containing Contains but not
// Excludes (both matched case-insensitively).
type EngineRule struct {
	Contains string
	Excludes string
}

func (r EngineRule) Matches(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	if r.Contains == "" || !strings.Contains(ua, strings.ToLower(r.Contains)) {
		return false
	}
	if r.Excludes != "" && strings.Contains(ua, strings.ToLower(r.Excludes)) {
		return false
	}
	return true
}

// DefaultEngineRules covers engines that block popups opened outside a user
// gesture, which would break the interactive fallback.
var DefaultEngineRules = []EngineRule{
	{Contains: "safari", Excludes: "chrome"},
}

type AutoSignGate struct {
	Enabled   bool
	UserAgent string
	Rules     []EngineRule
}

func DefaultAutoSignGate() AutoSignGate {
	return AutoSignGate{Enabled: true, Rules: DefaultEngineRules}
}

func (g AutoSignGate) Permits() bool {
	if !g.Enabled {
		return false
	}
	if g.UserAgent == "" {
		return true
	}
	for _, rule := range g.Rules {
		if rule.Matches(g.UserAgent) {
			return false
		}
	}
	return true
}
