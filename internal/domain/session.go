package domain

import "encoding/json"

type User struct {
	Account       AccountName     `json:"account"`
	Keys          []string        `json:"keys"`
	IsTemporary   bool            `json:"isTemp,omitempty"`
	ProofVerified bool            `json:"isProofVerified"`
	CreateData    json.RawMessage `json:"createData,omitempty"`
	AvatarURL     string          `json:"avatarUrl,omitempty"`
	TrustScore    float64         `json:"trustScore,omitempty"`
}

// Session is the in-memory identity and whitelist of one logged-in user on
// one chain. It is never persisted.
type Session struct {
	User      User
	ChainID   string
	Whitelist Whitelist
}

func NewSession(user User, chainID string, whitelist Whitelist) *Session {
	return &Session{User: user, ChainID: chainID, Whitelist: cloneWhitelist(whitelist)}
}

func (s *Session) CanAutoSign(tx Transaction) bool {
	if s == nil {
		return false
	}
	return CanAutoSign(tx, s.Whitelist)
}

// ReplaceWhitelist swaps the whitelist wholesale; entries are never merged.
func (s *Session) ReplaceWhitelist(whitelist Whitelist) {
	s.Whitelist = cloneWhitelist(whitelist)
}

func (s *Session) ClearWhitelist() {
	s.Whitelist = nil
}

func cloneWhitelist(whitelist Whitelist) Whitelist {
	if whitelist == nil {
		return Whitelist{}
	}
	cloned := make(Whitelist, len(whitelist))
	for i, entry := range whitelist {
		entry.Recipients = append([]AccountName(nil), entry.Recipients...)
		cloned[i] = entry
	}
	return cloned
}

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
	StateSigning         State = "signing"
)
