package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

type AccountName string

type Authorization struct {
	Actor      AccountName `json:"actor"`
	Permission string      `json:"permission"`
}

// ActionData is the decoded action payload. Only a handful of keys are ever
// inspected (to, receiver, payer, memo); everything else is carried opaquely.
// Numbers decode as json.Number so they re-encode digit for digit.
type ActionData map[string]any

func (d *ActionData) UnmarshalJSON(raw []byte) error {
	var decoded map[string]any
	if err := decodeExact(raw, &decoded); err != nil {
		return err
	}
	*d = decoded
	return nil
}

type Action struct {
	Account       AccountName     `json:"account"`
	Name          string          `json:"name"`
	Authorization []Authorization `json:"authorization"`
	Data          ActionData      `json:"data"`
}

type Transaction struct {
	Expiration            string            `json:"expiration,omitempty"`
	RefBlockNum           uint16            `json:"ref_block_num,omitempty"`
	RefBlockPrefix        uint32            `json:"ref_block_prefix,omitempty"`
	MaxNetUsageWords      uint32            `json:"max_net_usage_words,omitempty"`
	MaxCPUUsageMS         uint8             `json:"max_cpu_usage_ms,omitempty"`
	DelaySec              uint32            `json:"delay_sec,omitempty"`
	ContextFreeActions    []Action          `json:"context_free_actions,omitempty"`
	Actions               []Action          `json:"actions"`
	TransactionExtensions []json.RawMessage `json:"transaction_extensions,omitempty"`
}

func (d ActionData) String(key string) string {
	if d == nil {
		return ""
	}

	switch v := d[key].(type) {
	case string:
		return v
	case AccountName:
		return string(v)
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (a Action) Is(contract AccountName, name string) bool {
	return a.Account == contract && a.Name == name
}

func (a Action) AuthorizedBy(actor AccountName) bool {
	for _, auth := range a.Authorization {
		if auth.Actor == actor {
			return true
		}
	}
	return false
}

// Equal compares two actions the way they would compare once serialized:
// field by field, with payloads normalized through JSON so that a payload
// built in Go and one decoded off the wire compare equal.
func (a Action) Equal(other Action) bool {
	if a.Account != other.Account || a.Name != other.Name {
		return false
	}
	if len(a.Authorization) != len(other.Authorization) {
		return false
	}
	for i := range a.Authorization {
		if a.Authorization[i] != other.Authorization[i] {
			return false
		}
	}

	return reflect.DeepEqual(normalizeData(a.Data), normalizeData(other.Data))
}

func normalizeData(data ActionData) any {
	if len(data) == 0 {
		return map[string]any{}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return data
	}

	var normalized any
	if err := decodeExact(raw, &normalized); err != nil {
		return data
	}

	return normalized
}

func decodeExact(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func actionsEqual(left, right []Action) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !left[i].Equal(right[i]) {
			return false
		}
	}
	return true
}
