package domain

import (
	"fmt"
	"slices"
	"strings"
)

const (
	SystemContract AccountName = "eosio"
	NoopContract   AccountName = "boost.wax"
	NoopAction                 = "noop"
	BuyRAMBytes                = "buyrambytes"
	BuyRAM                     = "buyram"
	PowerUp                    = "powerup"
)

// AugmentationPolicy lists the actions a wallet backend may prepend to a
// transaction on behalf of the signing user.
type AugmentationPolicy struct {
	NoopContract  AccountName
	NoopAction    string
	FeeCollectors []AccountName
	FeeMemoPrefix string
	RAMActions    []string
	PowerUpAction string
}

var DefaultAugmentationPolicy = AugmentationPolicy{
	NoopContract:  NoopContract,
	NoopAction:    NoopAction,
	FeeCollectors: []AccountName{"gasfee.wax", "txfee.wax"},
	FeeMemoPrefix: "WAX fee for",
	RAMActions:    []string{BuyRAMBytes, BuyRAM},
	PowerUpAction: PowerUp,
}

// VerifyAugmentation checks augmented against original for user using the
// default policy.
func VerifyAugmentation(user AccountName, original, augmented Transaction) error {
	return DefaultAugmentationPolicy.Verify(user, original, augmented)
}

// Verify accepts augmented only when it ends with exactly the original
// actions and every prepended action authorized by user is a recognized fee
// payment or resource purchase for user.
func (p AugmentationPolicy) Verify(user AccountName, original, augmented Transaction) error {
	extra := len(augmented.Actions) - len(original.Actions)
	if extra < 0 || !actionsEqual(original.Actions, augmented.Actions[extra:]) {
		return &TamperError{
			Reason:    TamperModifiedActions,
			Original:  original.Actions,
			Augmented: augmented.Actions,
		}
	}

	prefix := augmented.Actions[:extra]
	for i, action := range prefix {
		if !action.AuthorizedBy(user) {
			continue
		}
		if p.isFeePayment(prefix, i) || p.isResourcePurchase(user, action) {
			continue
		}
		return &TamperError{
			Reason:    TamperExtraUserAction,
			Original:  original.Actions,
			Augmented: augmented.Actions,
			Index:     i,
		}
	}

	return nil
}

func (p AugmentationPolicy) isFeePayment(prefix []Action, i int) bool {
	action := prefix[i]
	if !action.Is(TokenContract, TransferAction) {
		return false
	}
	if !slices.Contains(p.FeeCollectors, AccountName(action.Data.String("to"))) {
		return false
	}
	if p.FeeMemoPrefix == "" || !strings.HasPrefix(action.Data.String("memo"), p.FeeMemoPrefix) {
		return false
	}
	if i == 0 {
		return false
	}

	marker := prefix[i-1]
	return marker.Is(p.NoopContract, p.NoopAction) && marker.AuthorizedBy(p.NoopContract)
}

func (p AugmentationPolicy) isResourcePurchase(user AccountName, action Action) bool {
	if action.Account != SystemContract {
		return false
	}
	if !slices.Contains(p.RAMActions, action.Name) && (p.PowerUpAction == "" || action.Name != p.PowerUpAction) {
		return false
	}

	return AccountName(action.Data.String("payer")) == user &&
		AccountName(action.Data.String("receiver")) == user
}

type TamperReason string

const (
	TamperModifiedActions TamperReason = "augmented transaction actions has modified actions from the original"
	TamperExtraUserAction TamperReason = "augmented transaction actions has an extra action from the original authorizing the user"
)

// TamperError reports a signed transaction that does not honor the caller's
// original intent.
type TamperError struct {
	Reason    TamperReason
	Original  []Action
	Augmented []Action
	Index     int
}

func (e *TamperError) Error() string {
	return fmt.Sprintf("%s\noriginal: %s\naugmented: %s", e.Reason, describeActions(e.Original), describeActions(e.Augmented))
}

func (e *TamperError) Is(target error) bool {
	return target == ErrTamper
}

func describeActions(actions []Action) string {
	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, fmt.Sprintf("%s::%s", action.Account, action.Name))
	}
	return "[" + strings.Join(names, ", ") + "]"
}
