package domain

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	MessageTypeReady               = "READY"
	MessageTypeTransaction         = "TRANSACTION"
	MessageTypeTxSigned            = "TX_SIGNED"
	MessageTypeVerify              = "VERIFY"
	MessageTypeDeny                = "DENY"
	MessageTypeActivateRequisition = "ACTIVATE_REQUISITION"
)

// SerializedBytes marshals as a JSON array of byte values, the shape a
// Uint8Array takes on the wire. Base64 strings are accepted when decoding.
type SerializedBytes []byte

func (b SerializedBytes) MarshalJSON() ([]byte, error) {
	values := make([]int, len(b))
	for i, v := range b {
		values[i] = int(v)
	}
	return json.Marshal(values)
}

func (b *SerializedBytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	var values []int
	if err := json.Unmarshal(data, &values); err == nil {
		out := make([]byte, len(values))
		for i, v := range values {
			if v < 0 || v > 255 {
				return fmt.Errorf("serialized byte %d out of range: %d", i, v)
			}
			out[i] = byte(v)
		}
		*b = out
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return errors.New("serialized transaction must be a byte array or base64 string")
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode base64 serialized transaction: %w", err)
	}
	*b = decoded
	return nil
}

type LoginRequest struct {
	Type  string `json:"type,omitempty"`
	Nonce string `json:"nonce,omitempty"`
}

type LoginProof struct {
	Verified bool `json:"verified"`
	Data     struct {
		Referer   string `json:"referer"`
		Signature string `json:"signature"`
	} `json:"data"`
}

type LoginResult struct {
	Verified             bool            `json:"verified"`
	UserAccount          AccountName     `json:"userAccount"`
	PubKeys              []string        `json:"pubKeys"`
	WhitelistedContracts Whitelist       `json:"whitelistedContracts,omitempty"`
	IsTemp               bool            `json:"isTemp,omitempty"`
	CreateData           json.RawMessage `json:"createData,omitempty"`
	AvatarURL            string          `json:"avatar_url,omitempty"`
	TrustScore           float64         `json:"trustScore,omitempty"`
	Proof                *LoginProof     `json:"proof,omitempty"`
}

type SigningRequest struct {
	Type          string          `json:"type,omitempty"`
	Transaction   SerializedBytes `json:"transaction"`
	FreeBandwidth bool            `json:"freeBandwidth"`
	FeeFallback   bool            `json:"feeFallback"`
	ChainID       string          `json:"chainId,omitempty"`
	StartTime     int64           `json:"startTime,omitempty"`
	Version       string          `json:"waxjsVersion,omitempty"`
}

type SigningResult struct {
	Type                  string          `json:"type,omitempty"`
	Verified              bool            `json:"verified"`
	Signatures            []string        `json:"signatures"`
	SerializedTransaction SerializedBytes `json:"serializedTransaction"`
	WhitelistedContracts  Whitelist       `json:"whitelistedContracts,omitempty"`
	StartTime             int64           `json:"startTime,omitempty"`
}

type ProofRequest struct {
	Type        string  `json:"type"`
	Nonce       string  `json:"nonce"`
	ProofType   int     `json:"proof_type"`
	Description *string `json:"description"`
}

type ProofResult struct {
	Type        string      `json:"type"`
	Signature   string      `json:"signature"`
	Referer     string      `json:"referer"`
	AccountName AccountName `json:"accountName"`
}

// ExceptEnvelope is the error shape the silent endpoints answer with even on
// a 2xx status.
type ExceptEnvelope struct {
	Processed *struct {
		Except json.RawMessage `json:"except"`
	} `json:"processed"`
}

func (e ExceptEnvelope) Failed() bool {
	return e.Processed != nil && len(e.Processed.Except) > 0 && string(e.Processed.Except) != "null"
}

// SignOptions tune how the wallet may modify the transaction.
type SignOptions struct {
	// NoModify forbids the wallet from paying bandwidth by prepending actions.
	NoModify    bool
	FeeFallback bool
	ChainID     string
}

func DefaultSignOptions() SignOptions {
	return SignOptions{FeeFallback: true}
}

type SignedTransaction struct {
	SerializedTransaction []byte   `json:"serializedTransaction"`
	Signatures            []string `json:"signatures"`
}
