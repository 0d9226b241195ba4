package application

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/adapters/codec"
	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
	"github.com/bnema/cloudwallet-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testWalletURL = "https://wallet.example"
	testChainID   = "chain-1"
	testAccount   = domain.AccountName("user1.wam")
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type signingFixture struct {
	channel  *mocks.MockChannel
	autoSign *mocks.MockAutoSignEndpoint
	metrics  *mocks.MockMetricsRecorder
	service  *SigningService
}

func newSigningFixture(t *testing.T, mutate func(*SigningConfig)) signingFixture {
	t.Helper()

	f := signingFixture{
		channel:  mocks.NewMockChannel(t),
		autoSign: mocks.NewMockAutoSignEndpoint(t),
		metrics:  mocks.NewMockMetricsRecorder(t),
	}
	cfg := SigningConfig{
		SigningURL: testWalletURL + "/",
		ChainID:    testChainID,
		Version:    "1.2.3",
		Gate:       domain.DefaultAutoSignGate(),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	f.service = NewSigningService(SigningDeps{
		Channel:  f.channel,
		AutoSign: f.autoSign,
		Codec:    codec.JSON{},
		Metrics:  f.metrics,
		Clock:    fixedClock{now: testNow},
	}, cfg)
	return f
}

func tokenTransfer(from, to domain.AccountName, memo string) domain.Action {
	return domain.Action{
		Account:       domain.TokenContract,
		Name:          domain.TransferAction,
		Authorization: []domain.Authorization{{Actor: from, Permission: "active"}},
		Data: domain.ActionData{
			"from":     string(from),
			"to":       string(to),
			"quantity": "1.00000000 WAX",
			"memo":     memo,
		},
	}
}

func userTransaction() domain.Transaction {
	return domain.Transaction{Actions: []domain.Action{tokenTransfer(testAccount, "user2.wam", "test")}}
}

func transferWhitelist() domain.Whitelist {
	return domain.Whitelist{{Contract: domain.TokenContract, Recipients: []domain.AccountName{"user2.wam"}}}
}

func encode(t *testing.T, tx domain.Transaction) []byte {
	t.Helper()
	raw, err := codec.JSON{}.Encode(tx)
	require.NoError(t, err)
	return raw
}

func walletMessage(t *testing.T, payload any) ports.Message {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return ports.Message{Origin: testWalletURL, SourceID: "surface-1", Data: raw}
}

func newClosableSurface(t *testing.T) *mocks.MockSurface {
	t.Helper()
	surface := mocks.NewMockSurface(t)
	surface.EXPECT().Close().Return(nil).Once()
	surface.EXPECT().ID().Return("surface-1").Maybe()
	return surface
}

// replyWith answers a Request by handing payload to the exchange handler.
func replyWith(t *testing.T, surface ports.Surface, payload any) func(context.Context, string, any, ports.Surface, string, ports.MessageHandler) (ports.Surface, error) {
	return func(_ context.Context, _ string, _ any, _ ports.Surface, _ string, handle ports.MessageHandler) (ports.Surface, error) {
		return surface, handle(walletMessage(t, payload))
	}
}

func verifiedLogin() domain.LoginResult {
	return domain.LoginResult{
		Verified:             true,
		UserAccount:          testAccount,
		PubKeys:              []string{"PUB_K1_a", "PUB_K1_b"},
		WhitelistedContracts: transferWhitelist(),
		AvatarURL:            "https://avatars.example/u1.png",
		TrustScore:           0.9,
	}
}

func TestSigningServiceLoginEstablishesSession(t *testing.T) {
	f := newSigningFixture(t, func(cfg *SigningConfig) { cfg.ReturnTempAccount = true })
	surface := newClosableSurface(t)

	f.channel.EXPECT().
		Request(mock.Anything, mock.Anything, nil, nil, "", mock.Anything).
		Run(func(_ context.Context, rawURL string, _ any, _ ports.Surface, _ string, _ ports.MessageHandler) {
			parsed, err := url.Parse(rawURL)
			require.NoError(t, err)
			assert.Equal(t, "/cloud-wallet/login", parsed.Path)
			assert.Equal(t, "true", parsed.Query().Get("returnTemp"))
			assert.Equal(t, "MS4yLjM=", parsed.Query().Get("v"))
			assert.Equal(t, "bm9uY2UtMQ==", parsed.Query().Get("n"))
		}).
		RunAndReturn(replyWith(t, surface, verifiedLogin())).
		Once()

	user, err := f.service.Login(context.Background(), "nonce-1")
	require.NoError(t, err)
	assert.Equal(t, testAccount, user.Account)
	assert.Equal(t, []string{"PUB_K1_a", "PUB_K1_b"}, user.Keys)
	assert.Equal(t, "https://avatars.example/u1.png", user.AvatarURL)
	assert.False(t, user.ProofVerified)

	assert.Equal(t, domain.StateAuthenticated, f.service.State())
	session := f.service.Session()
	require.NotNil(t, session)
	assert.Equal(t, testChainID, session.ChainID)
	assert.Equal(t, transferWhitelist(), session.Whitelist)

	again, err := f.service.Login(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, user, again)
}

func TestSigningServiceLoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		result  domain.LoginResult
		wantErr error
	}{
		{name: "declined", result: domain.LoginResult{Verified: false, UserAccount: testAccount, PubKeys: []string{"k"}}, wantErr: domain.ErrLoginDeclined},
		{name: "missing account", result: domain.LoginResult{Verified: true, PubKeys: []string{"k"}}, wantErr: domain.ErrNoAccount},
		{name: "missing keys", result: domain.LoginResult{Verified: true, UserAccount: testAccount}, wantErr: domain.ErrNoAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSigningFixture(t, nil)
			surface := newClosableSurface(t)
			f.channel.EXPECT().
				Request(mock.Anything, mock.Anything, nil, nil, "", mock.Anything).
				RunAndReturn(replyWith(t, surface, tt.result)).
				Once()

			_, err := f.service.Login(context.Background(), "")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.StateUnauthenticated, f.service.State())
			assert.Nil(t, f.service.Session())
		})
	}
}

func TestSigningServiceLoginPropagatesChannelOpenError(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.channel.EXPECT().
		Request(mock.Anything, mock.Anything, nil, nil, "", mock.Anything).
		Return(nil, domain.ErrChannelOpen).
		Once()

	_, err := f.service.Login(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrChannelOpen)
	assert.Equal(t, domain.StateUnauthenticated, f.service.State())
}

func TestSigningServiceConcurrentLoginsShareOneExchange(t *testing.T) {
	f := newSigningFixture(t, nil)
	surface := newClosableSurface(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.channel.EXPECT().
		Request(mock.Anything, mock.Anything, nil, nil, "", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ any, _ ports.Surface, _ string, handle ports.MessageHandler) (ports.Surface, error) {
			close(entered)
			<-release
			return surface, handle(walletMessage(t, verifiedLogin()))
		}).
		Once()

	var wg sync.WaitGroup
	results := make([]domain.User, 2)
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = f.service.Login(context.Background(), "")
	}()
	<-entered
	assert.Equal(t, domain.StateAuthenticating, f.service.State())

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = f.service.Login(context.Background(), "")
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, results[0], results[1])
}

func TestSigningServiceLoginVerifiesPlatformProof(t *testing.T) {
	chain := mocks.NewMockChainReader(t)
	verifier := mocks.NewMockSignatureVerifier(t)
	channel := mocks.NewMockChannel(t)
	surface := newClosableSurface(t)

	service := NewSigningService(SigningDeps{
		Channel: channel,
		Codec:   codec.JSON{},
		Proofs:  NewProofService(chain, verifier),
	}, SigningConfig{SigningURL: testWalletURL})

	result := verifiedLogin()
	result.Proof = &domain.LoginProof{Verified: true}
	result.Proof.Data.Referer = "https://dapp.example"
	result.Proof.Data.Signature = "SIG_K1_x"

	chain.EXPECT().ActivePermissionKey(mock.Anything, domain.ProofAccount).Return("PUB_K1_proof", nil).Once()
	verifier.EXPECT().
		Verify("SIG_K1_x", []byte("cloudwallet-verification-https://dapp.example-nonce-1-user1.wam"), "PUB_K1_proof").
		Return(true, nil).
		Once()
	channel.EXPECT().
		Request(mock.Anything, mock.Anything, nil, nil, "", mock.Anything).
		RunAndReturn(replyWith(t, surface, result)).
		Once()

	user, err := service.Login(context.Background(), "nonce-1")
	require.NoError(t, err)
	assert.True(t, user.ProofVerified)
}

func TestSigningServiceLoginFailsWhenProofKeyLookupFails(t *testing.T) {
	chain := mocks.NewMockChainReader(t)
	channel := mocks.NewMockChannel(t)
	surface := newClosableSurface(t)

	service := NewSigningService(SigningDeps{
		Channel: channel,
		Codec:   codec.JSON{},
		Proofs:  NewProofService(chain, mocks.NewMockSignatureVerifier(t)),
	}, SigningConfig{SigningURL: testWalletURL})

	result := verifiedLogin()
	result.Proof = &domain.LoginProof{Verified: true}

	chain.EXPECT().ActivePermissionKey(mock.Anything, domain.ProofAccount).Return("", errors.New("rpc down")).Once()
	channel.EXPECT().
		Request(mock.Anything, mock.Anything, nil, nil, "", mock.Anything).
		RunAndReturn(replyWith(t, surface, result)).
		Once()

	_, err := service.Login(context.Background(), "nonce-1")
	require.ErrorIs(t, err, domain.ErrKeyLookup)
	assert.Nil(t, service.Session())
}

func TestSigningServiceTryAutoLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newSigningFixture(t, nil)
		var during domain.State
		f.autoSign.EXPECT().Login(mock.Anything).
			Run(func(context.Context) { during = f.service.State() }).
			Return(verifiedLogin(), nil).
			Once()

		user, err := f.service.TryAutoLogin(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testAccount, user.Account)
		assert.Equal(t, domain.StateAuthenticating, during)
		assert.Equal(t, domain.StateAuthenticated, f.service.State())
	})

	t.Run("endpoint failure", func(t *testing.T) {
		f := newSigningFixture(t, nil)
		var during domain.State
		f.autoSign.EXPECT().Login(mock.Anything).
			Run(func(context.Context) { during = f.service.State() }).
			Return(domain.LoginResult{}, &domain.EndpointError{Op: "login", StatusCode: 401}).
			Once()

		_, err := f.service.TryAutoLogin(context.Background())
		require.ErrorIs(t, err, domain.ErrEndpoint)
		assert.Nil(t, f.service.Session())
		assert.Equal(t, domain.StateAuthenticating, during)
		assert.Equal(t, domain.StateUnauthenticated, f.service.State())
	})

	t.Run("declined login settles state", func(t *testing.T) {
		f := newSigningFixture(t, nil)
		f.autoSign.EXPECT().Login(mock.Anything).Return(domain.LoginResult{}, nil).Once()

		_, err := f.service.TryAutoLogin(context.Background())
		require.ErrorIs(t, err, domain.ErrLoginDeclined)
		assert.Equal(t, domain.StateUnauthenticated, f.service.State())
	})

	t.Run("unavailable", func(t *testing.T) {
		service := NewSigningService(SigningDeps{Channel: mocks.NewMockChannel(t), Codec: codec.JSON{}}, SigningConfig{SigningURL: testWalletURL})

		_, err := service.TryAutoLogin(context.Background())
		require.ErrorIs(t, err, ErrAutoSignUnavailable)
	})
}

func TestSigningServiceSignRequiresSession(t *testing.T) {
	f := newSigningFixture(t, nil)

	_, err := f.service.Sign(context.Background(), userTransaction(), nil, domain.DefaultSignOptions())
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestSigningServiceSignsSilentlyWhenWhitelisted(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, transferWhitelist())
	tx := userTransaction()
	serialized := encode(t, tx)

	f.autoSign.EXPECT().
		Sign(mock.Anything, mock.MatchedBy(func(req domain.SigningRequest) bool {
			return string(req.Transaction) == string(serialized) && req.FreeBandwidth && req.FeeFallback && req.ChainID == testChainID
		})).
		Return(domain.SigningResult{
			Verified:              true,
			Signatures:            []string{"SIG_K1_auto"},
			SerializedTransaction: serialized,
			WhitelistedContracts:  transferWhitelist(),
		}, nil).
		Once()
	f.metrics.EXPECT().RecordDuration(mock.Anything, MetricAutoSigning, time.Duration(0)).Return().Once()

	signed, err := f.service.Sign(context.Background(), tx, serialized, domain.DefaultSignOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"SIG_K1_auto"}, signed.Signatures)
	assert.Equal(t, serialized, signed.SerializedTransaction)
	assert.Equal(t, domain.StateAuthenticated, f.service.State())
}

func TestSigningServiceFallsBackToWalletWhenSilentEndpointFails(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, transferWhitelist())
	tx := userTransaction()
	serialized := encode(t, tx)
	surface := newClosableSurface(t)

	f.autoSign.EXPECT().
		Sign(mock.Anything, mock.Anything).
		Return(domain.SigningResult{}, &domain.EndpointError{Op: "signing", StatusCode: 500, Status: "500 Internal Server Error"}).
		Once()
	f.channel.EXPECT().
		Request(mock.Anything, testWalletURL+"/cloud-wallet/signing/", mock.Anything, nil, domain.MessageTypeTxSigned, mock.Anything).
		Run(func(_ context.Context, _ string, initial any, _ ports.Surface, _ string, _ ports.MessageHandler) {
			assert.Empty(t, f.service.Session().Whitelist, "whitelist must be cleared before the interactive fallback")
		}).
		RunAndReturn(replyWith(t, surface, domain.SigningResult{
			Type:                  domain.MessageTypeTxSigned,
			Verified:              true,
			Signatures:            []string{"SIG_K1_manual"},
			SerializedTransaction: serialized,
		})).
		Once()

	signed, err := f.service.Sign(context.Background(), tx, serialized, domain.DefaultSignOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"SIG_K1_manual"}, signed.Signatures)
	assert.Empty(t, f.service.Session().Whitelist)
	assert.False(t, f.service.Session().CanAutoSign(tx))
}

func TestSigningServiceSilentTamperIsNotRetried(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, transferWhitelist())
	tx := userTransaction()

	tampered := domain.Transaction{Actions: append([]domain.Action{tokenTransfer(testAccount, "fake.wam", "gift")}, tx.Actions...)}
	f.autoSign.EXPECT().
		Sign(mock.Anything, mock.Anything).
		Return(domain.SigningResult{
			Verified:              true,
			Signatures:            []string{"SIG_K1_auto"},
			SerializedTransaction: encode(t, tampered),
			WhitelistedContracts:  transferWhitelist(),
		}, nil).
		Once()
	f.metrics.EXPECT().RecordDuration(mock.Anything, MetricAutoSigning, mock.Anything).Return().Once()

	_, err := f.service.Sign(context.Background(), tx, nil, domain.DefaultSignOptions())
	require.ErrorIs(t, err, domain.ErrTamper)

	var tamper *domain.TamperError
	require.ErrorAs(t, err, &tamper)
	assert.Equal(t, domain.TamperExtraUserAction, tamper.Reason)
	assert.Empty(t, f.service.Session().Whitelist)
}

func TestSigningServiceInteractiveSigning(t *testing.T) {
	tx := userTransaction()
	fee := []domain.Action{
		{
			Account:       domain.NoopContract,
			Name:          domain.NoopAction,
			Authorization: []domain.Authorization{{Actor: domain.NoopContract, Permission: "paybw"}},
			Data:          domain.ActionData{},
		},
		tokenTransfer(testAccount, "gasfee.wax", "WAX fee for user1.wam"),
	}
	withFee := domain.Transaction{Actions: append(append([]domain.Action{}, fee...), tx.Actions...)}
	tampered := domain.Transaction{Actions: append([]domain.Action{tokenTransfer(testAccount, "fake.wam", "x")}, tx.Actions...)}
	modified := domain.Transaction{Actions: []domain.Action{tokenTransfer(testAccount, "user3.wam", "test")}}

	tests := []struct {
		name          string
		result        domain.SigningResult
		wantErr       error
		wantWhitelist domain.Whitelist
	}{
		{
			name:          "identical transaction",
			result:        domain.SigningResult{Type: domain.MessageTypeTxSigned, Verified: true, Signatures: []string{"SIG_K1_1"}, SerializedTransaction: encode(t, tx), WhitelistedContracts: transferWhitelist()},
			wantWhitelist: transferWhitelist(),
		},
		{
			name:          "fee prepended",
			result:        domain.SigningResult{Type: domain.MessageTypeTxSigned, Verified: true, Signatures: []string{"SIG_K1_1"}, SerializedTransaction: encode(t, withFee)},
			wantWhitelist: domain.Whitelist{},
		},
		{
			name:    "declined",
			result:  domain.SigningResult{Type: domain.MessageTypeTxSigned, Verified: false},
			wantErr: domain.ErrSigningDeclined,
		},
		{
			name:    "no signatures",
			result:  domain.SigningResult{Type: domain.MessageTypeTxSigned, Verified: true},
			wantErr: domain.ErrSigningDeclined,
		},
		{
			name:          "user transfer prepended",
			result:        domain.SigningResult{Type: domain.MessageTypeTxSigned, Verified: true, Signatures: []string{"SIG_K1_1"}, SerializedTransaction: encode(t, tampered), WhitelistedContracts: transferWhitelist()},
			wantErr:       domain.ErrTamper,
			wantWhitelist: domain.Whitelist{},
		},
		{
			name:          "original action rewritten",
			result:        domain.SigningResult{Type: domain.MessageTypeTxSigned, Verified: true, Signatures: []string{"SIG_K1_1"}, SerializedTransaction: encode(t, modified)},
			wantErr:       domain.ErrTamper,
			wantWhitelist: domain.Whitelist{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSigningFixture(t, nil)
			f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, nil)
			surface := newClosableSurface(t)

			f.channel.EXPECT().
				Request(mock.Anything, testWalletURL+"/cloud-wallet/signing/", mock.Anything, nil, domain.MessageTypeTxSigned, mock.Anything).
				RunAndReturn(replyWith(t, surface, tt.result)).
				Once()

			signed, err := f.service.Sign(context.Background(), tx, nil, domain.DefaultSignOptions())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.result.Signatures, signed.Signatures)
				assert.Equal(t, []byte(tt.result.SerializedTransaction), signed.SerializedTransaction)
			}
			switch {
			case tt.wantWhitelist == nil:
			case len(tt.wantWhitelist) == 0:
				assert.Empty(t, f.service.Session().Whitelist)
			default:
				assert.Equal(t, tt.wantWhitelist, f.service.Session().Whitelist)
			}
			assert.Equal(t, domain.StateAuthenticated, f.service.State())
		})
	}
}

func TestSigningServiceInteractiveRequestPayload(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, nil)
	tx := userTransaction()
	serialized := encode(t, tx)
	surface := newClosableSurface(t)

	f.channel.EXPECT().
		Request(mock.Anything, mock.Anything, mock.Anything, nil, domain.MessageTypeTxSigned, mock.Anything).
		Run(func(_ context.Context, _ string, initial any, _ ports.Surface, _ string, _ ports.MessageHandler) {
			request, ok := initial.(domain.SigningRequest)
			require.True(t, ok)
			assert.Equal(t, domain.MessageTypeTransaction, request.Type)
			assert.False(t, request.FreeBandwidth)
			assert.False(t, request.FeeFallback)
			assert.Equal(t, "other-chain", request.ChainID)
			assert.Equal(t, testNow.UnixMilli(), request.StartTime)
			assert.Equal(t, "1.2.3", request.Version)
			assert.Equal(t, serialized, []byte(request.Transaction))
		}).
		RunAndReturn(replyWith(t, surface, domain.SigningResult{
			Verified:   true,
			Signatures: []string{"SIG_K1_1"},
			StartTime:  testNow.Add(-3 * time.Second).UnixMilli(),
		})).
		Once()
	f.metrics.EXPECT().RecordDuration(mock.Anything, MetricManualSigningTime, 3*time.Second).Return().Once()

	signed, err := f.service.Sign(context.Background(), tx, serialized, domain.SignOptions{NoModify: true, ChainID: "other-chain"})
	require.NoError(t, err)
	assert.Equal(t, serialized, signed.SerializedTransaction, "unchanged transactions fall back to the original bytes")
}

func TestSigningServiceSignReusesPreparedSurface(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, nil)
	tx := userTransaction()
	prepared := newClosableSurface(t)

	f.channel.EXPECT().
		Open(mock.Anything, testWalletURL+"/cloud-wallet/signing/", nil, nil).
		Return(prepared, nil).
		Once()
	f.channel.EXPECT().
		Request(mock.Anything, mock.Anything, mock.Anything, prepared, domain.MessageTypeTxSigned, mock.Anything).
		RunAndReturn(replyWith(t, prepared, domain.SigningResult{Verified: true, Signatures: []string{"SIG_K1_1"}})).
		Once()

	require.NoError(t, f.service.PrepareTransaction(context.Background(), tx))
	require.NoError(t, f.service.PrepareTransaction(context.Background(), tx))

	_, err := f.service.Sign(context.Background(), tx, nil, domain.DefaultSignOptions())
	require.NoError(t, err)
}

func TestSigningServicePrepareSkipsAutoSignableTransactions(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, transferWhitelist())

	require.NoError(t, f.service.PrepareTransaction(context.Background(), userTransaction()))
}

func TestSigningServiceGateDisablesSilentPath(t *testing.T) {
	f := newSigningFixture(t, func(cfg *SigningConfig) {
		cfg.Gate.UserAgent = "Mozilla/5.0 (Macintosh) AppleWebKit/605.1.15 Version/17.0 Safari/605.1.15"
	})
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, transferWhitelist())
	surface := newClosableSurface(t)

	f.channel.EXPECT().
		Request(mock.Anything, mock.Anything, mock.Anything, nil, domain.MessageTypeTxSigned, mock.Anything).
		RunAndReturn(replyWith(t, surface, domain.SigningResult{Verified: true, Signatures: []string{"SIG_K1_1"}, WhitelistedContracts: transferWhitelist()})).
		Once()

	_, err := f.service.Sign(context.Background(), userTransaction(), nil, domain.DefaultSignOptions())
	require.NoError(t, err)
}

func TestSigningServiceSerializesSignCalls(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, nil)

	var inFlight, maxInFlight atomic.Int32
	f.channel.EXPECT().
		Request(mock.Anything, mock.Anything, mock.Anything, nil, domain.MessageTypeTxSigned, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ any, _ ports.Surface, _ string, handle ports.MessageHandler) (ports.Surface, error) {
			current := inFlight.Add(1)
			if current > maxInFlight.Load() {
				maxInFlight.Store(current)
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return nil, handle(walletMessage(t, domain.SigningResult{Verified: true, Signatures: []string{"SIG_K1_1"}}))
		}).
		Times(3)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Sign(context.Background(), userTransaction(), nil, domain.DefaultSignOptions())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestSigningServiceRequestProof(t *testing.T) {
	description := "prove it"

	t.Run("verified", func(t *testing.T) {
		f := newSigningFixture(t, nil)
		surface := newClosableSurface(t)
		f.channel.EXPECT().
			Request(mock.Anything, testWalletURL+"/cloud-wallet/verify", domain.ProofRequest{Type: domain.MessageTypeVerify, Nonce: "n-1", ProofType: 2, Description: &description}, nil, "", mock.Anything).
			RunAndReturn(replyWith(t, surface, domain.ProofResult{Type: domain.MessageTypeVerify, Signature: "SIG_K1_p", Referer: "https://dapp.example", AccountName: testAccount})).
			Once()

		result, err := f.service.RequestProof(context.Background(), "n-1", 2, &description)
		require.NoError(t, err)
		assert.Equal(t, "SIG_K1_p", result.Signature)
		assert.Equal(t, testAccount, result.AccountName)
	})

	t.Run("denied", func(t *testing.T) {
		f := newSigningFixture(t, nil)
		surface := newClosableSurface(t)
		f.channel.EXPECT().
			Request(mock.Anything, mock.Anything, mock.Anything, nil, "", mock.Anything).
			RunAndReturn(replyWith(t, surface, map[string]string{"type": domain.MessageTypeDeny})).
			Once()

		_, err := f.service.RequestProof(context.Background(), "n-1", 1, nil)
		require.ErrorIs(t, err, domain.ErrVerificationDenied)
		assert.True(t, domain.IsUserRefusal(err))
	})
}

func TestSigningServiceActivateRequisition(t *testing.T) {
	f := newSigningFixture(t, nil)
	surface := newClosableSurface(t)

	f.channel.EXPECT().
		Request(mock.Anything, testWalletURL+"/cloud-wallet/activate-requisition", domain.LoginRequest{Type: domain.MessageTypeActivateRequisition, Nonce: "n-2"}, nil, "", mock.Anything).
		RunAndReturn(replyWith(t, surface, verifiedLogin())).
		Once()

	user, err := f.service.ActivateRequisition(context.Background(), "n-2")
	require.NoError(t, err)
	assert.Equal(t, testAccount, user.Account)
	assert.Equal(t, domain.StateAuthenticated, f.service.State())
}

func TestSigningServiceLogoutClosesPreparedSurface(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, nil)
	prepared := newClosableSurface(t)
	f.channel.EXPECT().Open(mock.Anything, mock.Anything, nil, nil).Return(prepared, nil).Once()

	require.NoError(t, f.service.PrepareTransaction(context.Background(), userTransaction()))
	f.service.Logout()

	assert.Nil(t, f.service.Session())
	assert.Equal(t, domain.StateUnauthenticated, f.service.State())
}

func TestSigningServiceSwitchChainDropsWhitelist(t *testing.T) {
	f := newSigningFixture(t, nil)
	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, transferWhitelist())

	f.service.SwitchChain(testChainID)
	assert.Equal(t, transferWhitelist(), f.service.Session().Whitelist)

	f.service.SwitchChain("chain-2")
	session := f.service.Session()
	assert.Equal(t, "chain-2", session.ChainID)
	assert.Empty(t, session.Whitelist)
}

func TestSigningServiceStatus(t *testing.T) {
	f := newSigningFixture(t, nil)
	profile := domain.DefaultProfile()

	status := f.service.Status(profile)
	assert.Equal(t, domain.StateUnauthenticated, status.State)
	assert.Nil(t, status.User)

	f.service.Adopt(domain.User{Account: testAccount, Keys: []string{"k"}}, transferWhitelist())
	status = f.service.Status(profile)
	require.NotNil(t, status.User)
	assert.Equal(t, testAccount, status.User.Account)
	assert.Equal(t, transferWhitelist(), status.Whitelist)
}
