package codec

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
)

// JSON serializes transactions as their JSON document.
type JSON struct{}

var _ ports.TransactionCodec = JSON{}

func (JSON) Encode(tx domain.Transaction) ([]byte, error) {
	raw, err := json.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("encode transaction: %w", err)
	}
	return raw, nil
}

func (JSON) Decode(serialized []byte) (domain.Transaction, error) {
	var tx domain.Transaction
	if err := json.Unmarshal(serialized, &tx); err != nil {
		return domain.Transaction{}, fmt.Errorf("decode transaction: %w", err)
	}
	return tx, nil
}
