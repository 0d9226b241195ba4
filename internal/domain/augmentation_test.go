package domain

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser AccountName = "user1.wam"

func transfer(from, to AccountName, quantity, memo string) Action {
	return Action{
		Account:       TokenContract,
		Name:          TransferAction,
		Authorization: []Authorization{{Actor: from, Permission: "active"}},
		Data: ActionData{
			"from":     from,
			"to":       to,
			"quantity": quantity,
			"memo":     memo,
		},
	}
}

func noopMarker() Action {
	return Action{
		Account:       NoopContract,
		Name:          NoopAction,
		Authorization: []Authorization{{Actor: NoopContract, Permission: "paybw"}},
		Data:          ActionData{},
	}
}

func resourceAction(name string, payer, receiver AccountName) Action {
	return Action{
		Account:       SystemContract,
		Name:          name,
		Authorization: []Authorization{{Actor: testUser, Permission: "active"}},
		Data: ActionData{
			"payer":    payer,
			"receiver": receiver,
			"bytes":    1,
		},
	}
}

func originalTransfer() Transaction {
	return Transaction{Actions: []Action{transfer(testUser, "user2.wam", "1.00000000 WAX", "test")}}
}

func TestVerifyAugmentationScenarios(t *testing.T) {
	t.Parallel()

	original := originalTransfer()
	userTransfer := original.Actions[0]

	tests := []struct {
		name      string
		augmented []Action
		wantErr   TamperReason
	}{
		{
			name:      "identical actions",
			augmented: []Action{userTransfer},
		},
		{
			name:      "action appended after the original",
			augmented: []Action{userTransfer, noopMarker()},
			wantErr:   TamperModifiedActions,
		},
		{
			name:      "original action dropped",
			augmented: []Action{noopMarker()},
			wantErr:   TamperModifiedActions,
		},
		{
			name:      "original action rewritten",
			augmented: []Action{transfer(testUser, "fake.wam", "1.00000000 WAX", "test")},
			wantErr:   TamperModifiedActions,
		},
		{
			name:      "ram bought for the user",
			augmented: []Action{resourceAction(BuyRAMBytes, testUser, testUser), userTransfer},
		},
		{
			name:      "ram bought for another account",
			augmented: []Action{resourceAction(BuyRAMBytes, testUser, "fake.wam"), userTransfer},
			wantErr:   TamperExtraUserAction,
		},
		{
			name:      "power up paid and received by the user",
			augmented: []Action{resourceAction(PowerUp, testUser, testUser), userTransfer},
		},
		{
			name:      "power up paid by the user for someone else",
			augmented: []Action{resourceAction(PowerUp, testUser, "fake.wam"), userTransfer},
			wantErr:   TamperExtraUserAction,
		},
		{
			name: "bandwidth fee after noop marker",
			augmented: []Action{
				noopMarker(),
				transfer(testUser, "gasfee.wax", "0.01000000 WAX", "WAX fee for 10 us CPU and 10 words NET"),
				userTransfer,
			},
		},
		{
			name: "fee charged without noop marker",
			augmented: []Action{
				transfer(testUser, "boost.wax", "0.01000000 WAX", "WAX fee for 10 us CPU and 10 words NET"),
				userTransfer,
			},
			wantErr: TamperExtraUserAction,
		},
		{
			name: "fee memo to unknown collector",
			augmented: []Action{
				noopMarker(),
				transfer(testUser, "fake.wam", "0.01000000 WAX", "WAX fee for 10 us CPU and 10 words NET"),
				userTransfer,
			},
			wantErr: TamperExtraUserAction,
		},
		{
			name: "fee transfer with unrecognized memo",
			augmented: []Action{
				noopMarker(),
				transfer(testUser, "gasfee.wax", "0.01000000 WAX", "tip"),
				userTransfer,
			},
			wantErr: TamperExtraUserAction,
		},
		{
			name: "wallet service action not authorized by the user",
			augmented: []Action{
				transfer("boost.wax", "fake.wam", "5.00000000 WAX", "anything"),
				userTransfer,
			},
		},
		{
			name:      "transfer from the user to an attacker",
			augmented: []Action{transfer(testUser, "fake.wam", "0.01000000 WAX", "WAX fee for 10 us CPU and 10 words NET"), userTransfer},
			wantErr:   TamperExtraUserAction,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := VerifyAugmentation(testUser, original, Transaction{Actions: tc.augmented})
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTamper)
			var tamper *TamperError
			require.ErrorAs(t, err, &tamper)
			assert.Equal(t, tc.wantErr, tamper.Reason)
			assert.Contains(t, err.Error(), string(tc.wantErr))
		})
	}
}

func TestVerifyAugmentationComparesDecodedPayloads(t *testing.T) {
	t.Parallel()

	original := originalTransfer()
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Transaction
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.NoError(t, VerifyAugmentation(testUser, original, decoded))
}

func TestVerifyAugmentationHonorsCustomPolicy(t *testing.T) {
	t.Parallel()

	policy := DefaultAugmentationPolicy
	policy.PowerUpAction = ""

	augmented := Transaction{Actions: append([]Action{resourceAction(PowerUp, testUser, testUser)}, originalTransfer().Actions...)}
	err := policy.Verify(testUser, originalTransfer(), augmented)
	assert.ErrorIs(t, err, ErrTamper)
}

func genUserAction() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(AccountName("user2.wam"), AccountName("shop.wam"), AccountName("game.wax")),
		gen.OneConstOf("1.00000000 WAX", "0.50000000 WAX", "12.00000000 WAX"),
		gen.AlphaString(),
	).Map(func(values []interface{}) Action {
		return transfer(testUser, values[0].(AccountName), values[1].(string), values[2].(string))
	})
}

func benignPrefix(kind int) []Action {
	switch kind {
	case 0:
		return []Action{noopMarker(), transfer(testUser, "gasfee.wax", "0.01000000 WAX", "WAX fee for 10 us CPU")}
	case 1:
		return []Action{resourceAction(BuyRAMBytes, testUser, testUser)}
	case 2:
		return []Action{resourceAction(PowerUp, testUser, testUser)}
	default:
		return []Action{transfer("boost.wax", "boost.wax", "0.00000001 WAX", "service")}
	}
}

func TestVerifyAugmentationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a transaction always verifies against itself", prop.ForAll(
		func(actions []Action) bool {
			tx := Transaction{Actions: actions}
			return VerifyAugmentation(testUser, tx, tx) == nil
		},
		gen.SliceOf(genUserAction()),
	))

	properties.Property("benign prefixes are accepted", prop.ForAll(
		func(actions []Action, kinds []int) bool {
			augmented := []Action{}
			for _, kind := range kinds {
				augmented = append(augmented, benignPrefix(kind)...)
			}
			augmented = append(augmented, actions...)
			return VerifyAugmentation(testUser, Transaction{Actions: actions}, Transaction{Actions: augmented}) == nil
		},
		gen.SliceOf(genUserAction()),
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.Property("a user transfer in the prefix is rejected", prop.ForAll(
		func(actions []Action, extra Action) bool {
			augmented := append([]Action{extra}, actions...)
			err := VerifyAugmentation(testUser, Transaction{Actions: actions}, Transaction{Actions: augmented})
			return err != nil && errorIsTamper(err)
		},
		gen.SliceOf(genUserAction()),
		genUserAction(),
	))

	properties.Property("a modified suffix is rejected", prop.ForAll(
		func(actions []Action, memo string) bool {
			if len(actions) == 0 {
				return true
			}
			modified := make([]Action, len(actions))
			copy(modified, actions)
			last := modified[len(modified)-1]
			last.Data = ActionData{"from": testUser, "to": "fake.wam", "quantity": "1.00000000 WAX", "memo": memo + "!"}
			modified[len(modified)-1] = last
			return VerifyAugmentation(testUser, Transaction{Actions: actions}, Transaction{Actions: modified}) != nil
		},
		gen.SliceOf(genUserAction()),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func errorIsTamper(err error) bool {
	tamper, ok := err.(*TamperError)
	return ok && tamper.Reason == TamperExtraUserAction
}
