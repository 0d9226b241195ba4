package domain

import (
	"encoding/json"
	"time"
)

// RequisitionInfo is a short-lived code the user enters in the wallet to
// activate a dapp.
type RequisitionInfo struct {
	Code   string `json:"code"`
	Expire int64  `json:"expire"`
}

func (r RequisitionInfo) ExpiresAt() time.Time {
	return time.Unix(r.Expire, 0)
}

func (r RequisitionInfo) Expired(now time.Time) bool {
	return now.Unix() > r.Expire
}

type ActivatedData struct {
	Account         AccountName     `json:"account"`
	Keys            []string        `json:"keys"`
	IsTemp          bool            `json:"isTemp,omitempty"`
	CreateData      json.RawMessage `json:"createData,omitempty"`
	AvatarURL       string          `json:"avatarUrl,omitempty"`
	TrustScore      float64         `json:"trustScore,omitempty"`
	IsProofVerified bool            `json:"isProofVerified,omitempty"`
	Token           string          `json:"token"`
}

func (a ActivatedData) User() User {
	return User{
		Account:       a.Account,
		Keys:          append([]string(nil), a.Keys...),
		IsTemporary:   a.IsTemp,
		ProofVerified: a.IsProofVerified,
		CreateData:    a.CreateData,
		AvatarURL:     a.AvatarURL,
		TrustScore:    a.TrustScore,
	}
}
