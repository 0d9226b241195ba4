package application

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultAutoSignTimeout    = 5 * time.Second
	DefaultInteractiveTimeout = 5 * time.Minute

	MetricAutoSigning       = "cloudwallet.metric.auto_signing"
	MetricManualSigningTime = "cloudwallet.metric.manual_sign_transaction_time"

	loginPath       = "/cloud-wallet/login"
	signingPath     = "/cloud-wallet/signing/"
	verifyPath      = "/cloud-wallet/verify"
	requisitionPath = "/cloud-wallet/activate-requisition"
)

var ErrAutoSignUnavailable = errors.New("auto-sign endpoint not configured")

type SigningConfig struct {
	SigningURL         string
	ChainID            string
	ReturnTempAccount  bool
	Version            string
	Gate               domain.AutoSignGate
	Policy             *domain.AugmentationPolicy
	AutoSignTimeout    time.Duration
	InteractiveTimeout time.Duration
}

// SigningConfigFromProfile fills the endpoint settings of profile and leaves
// the defaults for everything else.
func SigningConfigFromProfile(profile domain.Profile) SigningConfig {
	return SigningConfig{
		SigningURL:        profile.SigningURL,
		ChainID:           profile.ChainID,
		ReturnTempAccount: profile.ReturnTempAccount,
		Gate:              domain.DefaultAutoSignGate(),
	}
}

type SigningDeps struct {
	Channel  ports.Channel
	AutoSign ports.AutoSignEndpoint
	Codec    ports.TransactionCodec
	Proofs   *ProofService
	Metrics  ports.MetricsRecorder
	Clock    ports.Clock
	Logger   *zap.Logger
}

// SigningService owns the wallet session of one process: it logs the user
// in, decides between silent and interactive signing and verifies every
// signed transaction before handing it back.
type SigningService struct {
	channel  ports.Channel
	autoSign ports.AutoSignEndpoint
	codec    ports.TransactionCodec
	proofs   *ProofService
	metrics  ports.MetricsRecorder
	clock    ports.Clock
	logger   *zap.Logger
	cfg      SigningConfig

	logins singleflight.Group
	signMu sync.Mutex

	mu       sync.Mutex
	state    domain.State
	session  *domain.Session
	prepared ports.Surface
}

func NewSigningService(deps SigningDeps, cfg SigningConfig) *SigningService {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if cfg.Policy == nil {
		policy := domain.DefaultAugmentationPolicy
		cfg.Policy = &policy
	}
	if cfg.AutoSignTimeout <= 0 {
		cfg.AutoSignTimeout = DefaultAutoSignTimeout
	}
	if cfg.InteractiveTimeout <= 0 {
		cfg.InteractiveTimeout = DefaultInteractiveTimeout
	}
	cfg.SigningURL = strings.TrimRight(cfg.SigningURL, "/")

	return &SigningService{
		channel:  deps.Channel,
		autoSign: deps.AutoSign,
		codec:    deps.Codec,
		proofs:   deps.Proofs,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
		logger:   deps.Logger,
		cfg:      cfg,
		state:    domain.StateUnauthenticated,
	}
}

func (s *SigningService) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Session returns a copy of the current session, or nil when logged out.
func (s *SigningService) Session() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	return domain.NewSession(s.session.User, s.session.ChainID, s.session.Whitelist)
}

// Login returns the current user, asking the wallet for one when there is
// no session yet. Concurrent calls share one wallet exchange.
func (s *SigningService) Login(ctx context.Context, nonce string) (domain.User, error) {
	if session := s.Session(); session != nil {
		return session.User, nil
	}

	loginURL, err := s.loginURL(nonce)
	if err != nil {
		return domain.User{}, err
	}

	return s.walletLogin(ctx, "login", loginURL, nil, nonce)
}

// ActivateRequisition logs the user in through the wallet's requisition
// surface instead of the login surface.
func (s *SigningService) ActivateRequisition(ctx context.Context, nonce string) (domain.User, error) {
	if session := s.Session(); session != nil {
		return session.User, nil
	}

	request := domain.LoginRequest{Type: domain.MessageTypeActivateRequisition, Nonce: nonce}
	return s.walletLogin(ctx, "requisition", s.cfg.SigningURL+requisitionPath, request, nonce)
}

func (s *SigningService) walletLogin(ctx context.Context, key string, surfaceURL string, initial any, nonce string) (domain.User, error) {
	result, err, _ := s.logins.Do(key, func() (any, error) {
		if session := s.Session(); session != nil {
			return session.User, nil
		}

		s.setState(domain.StateAuthenticating)
		user, err := s.awaitLogin(ctx, surfaceURL, initial, nonce)
		if err != nil {
			s.settleState()
			return domain.User{}, err
		}
		return user, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return result.(domain.User), nil
}

func (s *SigningService) awaitLogin(ctx context.Context, surfaceURL string, initial any, nonce string) (domain.User, error) {
	exchangeCtx, cancel := context.WithTimeout(ctx, s.cfg.InteractiveTimeout)
	defer cancel()

	var user domain.User
	surface, err := s.channel.Request(exchangeCtx, surfaceURL, initial, nil, "", func(msg ports.Message) error {
		var result domain.LoginResult
		if err := msg.Decode(&result); err != nil {
			return fmt.Errorf("%w: decode login response: %w", domain.ErrUnexpectedResponse, err)
		}

		var err error
		user, err = s.receiveLogin(ctx, result, nonce)
		return err
	})
	closeSurface(surface, s.logger)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// TryAutoLogin asks the silent endpoint for the user. Failures are returned
// so the caller can decide whether to fall back to Login.
func (s *SigningService) TryAutoLogin(ctx context.Context) (domain.User, error) {
	if session := s.Session(); session != nil {
		return session.User, nil
	}
	if s.autoSign == nil {
		return domain.User{}, ErrAutoSignUnavailable
	}

	result, err, _ := s.logins.Do("auto-login", func() (any, error) {
		if session := s.Session(); session != nil {
			return session.User, nil
		}

		s.setState(domain.StateAuthenticating)
		user, err := s.silentLogin(ctx)
		if err != nil {
			s.settleState()
			return domain.User{}, err
		}
		return user, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return result.(domain.User), nil
}

func (s *SigningService) silentLogin(ctx context.Context) (domain.User, error) {
	result, err := s.autoSign.Login(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return s.receiveLogin(ctx, result, "")
}

func (s *SigningService) receiveLogin(ctx context.Context, result domain.LoginResult, nonce string) (domain.User, error) {
	if !result.Verified {
		return domain.User{}, domain.ErrLoginDeclined
	}
	if result.UserAccount == "" || len(result.PubKeys) == 0 {
		return domain.User{}, domain.ErrNoAccount
	}

	user := domain.User{
		Account:     result.UserAccount,
		Keys:        append([]string(nil), result.PubKeys...),
		IsTemporary: result.IsTemp,
		CreateData:  result.CreateData,
		AvatarURL:   result.AvatarURL,
		TrustScore:  result.TrustScore,
	}

	if proof := result.Proof; proof != nil && proof.Verified && nonce != "" && s.proofs != nil {
		verified, err := s.proofs.VerifyPlatformProof(ctx, proof.Data.Signature, proof.Data.Referer, nonce, result.UserAccount)
		if err != nil {
			return domain.User{}, err
		}
		user.ProofVerified = verified
	}

	s.Adopt(user, result.WhitelistedContracts)
	return user, nil
}

// Adopt installs user as the logged-in user with whitelist.
func (s *SigningService) Adopt(user domain.User, whitelist domain.Whitelist) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.NewSession(user, s.cfg.ChainID, whitelist)
	s.state = domain.StateAuthenticated
}

func (s *SigningService) Logout() {
	s.mu.Lock()
	prepared := s.prepared
	s.session = nil
	s.prepared = nil
	s.state = domain.StateUnauthenticated
	s.mu.Unlock()

	closeSurface(prepared, s.logger)
}

// SwitchChain points the session at chainID. The whitelist was granted for
// the previous chain and is dropped.
func (s *SigningService) SwitchChain(chainID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.ChainID = chainID
	if s.session != nil && s.session.ChainID != chainID {
		s.session.ChainID = chainID
		s.session.ClearWhitelist()
		s.logger.Info("whitelist cleared after chain switch", zap.String("chain_id", chainID))
	}
}

// PrepareTransaction opens the signing surface ahead of Sign when tx will
// need the interactive path.
func (s *SigningService) PrepareTransaction(ctx context.Context, tx domain.Transaction) error {
	if s.canAutoSign(tx) {
		return nil
	}

	s.mu.Lock()
	hasPrepared := s.prepared != nil
	s.mu.Unlock()
	if hasPrepared {
		return nil
	}

	surface, err := s.channel.Open(ctx, s.cfg.SigningURL+signingPath, nil, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prepared != nil {
		closeSurface(surface, s.logger)
		return nil
	}
	s.prepared = surface
	return nil
}

// Sign returns the wallet's signatures for tx. Whitelisted transactions go
// through the silent endpoint first; any silent failure other than tamper
// drops the whitelist and retries once through the wallet surface.
func (s *SigningService) Sign(ctx context.Context, tx domain.Transaction, serialized []byte, opts domain.SignOptions) (domain.SignedTransaction, error) {
	s.signMu.Lock()
	defer s.signMu.Unlock()

	if s.Session() == nil {
		return domain.SignedTransaction{}, domain.ErrNotAuthenticated
	}

	if len(serialized) == 0 {
		encoded, err := s.codec.Encode(tx)
		if err != nil {
			return domain.SignedTransaction{}, fmt.Errorf("serialize transaction: %w", err)
		}
		serialized = encoded
	}

	s.setState(domain.StateSigning)
	defer s.settleState()

	if s.canAutoSign(tx) {
		signed, err := s.signSilently(ctx, tx, serialized, opts)
		switch {
		case err == nil:
			return signed, nil
		case errors.Is(err, domain.ErrTamper):
			return domain.SignedTransaction{}, err
		case ctx.Err() != nil:
			return domain.SignedTransaction{}, ctx.Err()
		}

		s.logger.Info("silent signing failed, falling back to wallet", zap.Error(err))
		s.clearWhitelist()
	}

	return s.signInteractively(ctx, tx, serialized, opts)
}

func (s *SigningService) signSilently(ctx context.Context, tx domain.Transaction, serialized []byte, opts domain.SignOptions) (domain.SignedTransaction, error) {
	start := s.clock.Now()

	silentCtx, cancel := context.WithTimeout(ctx, s.cfg.AutoSignTimeout)
	defer cancel()

	result, err := s.autoSign.Sign(silentCtx, s.signingRequest(serialized, opts))
	if err != nil {
		return domain.SignedTransaction{}, err
	}
	s.recordDuration(ctx, MetricAutoSigning, s.clock.Now().Sub(start))

	return s.acceptSignatures(tx, serialized, result)
}

func (s *SigningService) signInteractively(ctx context.Context, tx domain.Transaction, serialized []byte, opts domain.SignOptions) (domain.SignedTransaction, error) {
	prepared := s.takePrepared()

	exchangeCtx, cancel := context.WithTimeout(ctx, s.cfg.InteractiveTimeout)
	defer cancel()

	request := s.signingRequest(serialized, opts)
	request.Type = domain.MessageTypeTransaction
	request.StartTime = s.clock.Now().UnixMilli()

	var result domain.SigningResult
	surface, err := s.channel.Request(exchangeCtx, s.cfg.SigningURL+signingPath, request, prepared, domain.MessageTypeTxSigned, func(msg ports.Message) error {
		if err := msg.Decode(&result); err != nil {
			return fmt.Errorf("%w: decode signing response: %w", domain.ErrUnexpectedResponse, err)
		}
		return nil
	})
	if surface == nil {
		surface = prepared
	}
	closeSurface(surface, s.logger)
	if err != nil {
		return domain.SignedTransaction{}, err
	}

	return s.acceptSignatures(tx, serialized, result)
}

func (s *SigningService) acceptSignatures(tx domain.Transaction, serialized []byte, result domain.SigningResult) (domain.SignedTransaction, error) {
	if !result.Verified || len(result.Signatures) == 0 {
		return domain.SignedTransaction{}, domain.ErrSigningDeclined
	}

	s.replaceWhitelist(result.WhitelistedContracts)
	if result.StartTime > 0 {
		elapsed := s.clock.Now().Sub(time.UnixMilli(result.StartTime))
		s.recordDuration(context.Background(), MetricManualSigningTime, elapsed)
	}

	signedBytes := []byte(result.SerializedTransaction)
	if len(signedBytes) == 0 {
		signedBytes = serialized
	}

	augmented, err := s.codec.Decode(signedBytes)
	if err != nil {
		return domain.SignedTransaction{}, fmt.Errorf("%w: decode signed transaction: %w", domain.ErrUnexpectedResponse, err)
	}

	session := s.Session()
	if session == nil {
		return domain.SignedTransaction{}, domain.ErrNotAuthenticated
	}
	if err := s.cfg.Policy.Verify(session.User.Account, tx, augmented); err != nil {
		s.logger.Warn("rejected tampered transaction", zap.String("account", string(session.User.Account)), zap.Error(err))
		s.clearWhitelist()
		return domain.SignedTransaction{}, err
	}

	return domain.SignedTransaction{
		SerializedTransaction: signedBytes,
		Signatures:            append([]string(nil), result.Signatures...),
	}, nil
}

// RequestProof asks the wallet to sign nonce on behalf of the user.
func (s *SigningService) RequestProof(ctx context.Context, nonce string, proofType int, description *string) (domain.ProofResult, error) {
	exchangeCtx, cancel := context.WithTimeout(ctx, s.cfg.InteractiveTimeout)
	defer cancel()

	request := domain.ProofRequest{
		Type:        domain.MessageTypeVerify,
		Nonce:       nonce,
		ProofType:   proofType,
		Description: description,
	}

	var result domain.ProofResult
	surface, err := s.channel.Request(exchangeCtx, s.cfg.SigningURL+verifyPath, request, nil, "", func(msg ports.Message) error {
		if msg.Type() == domain.MessageTypeDeny {
			return domain.ErrVerificationDenied
		}
		if err := msg.Decode(&result); err != nil {
			return fmt.Errorf("%w: decode proof response: %w", domain.ErrUnexpectedResponse, err)
		}
		return nil
	})
	closeSurface(surface, s.logger)
	if err != nil {
		return domain.ProofResult{}, err
	}
	return result, nil
}

func (s *SigningService) canAutoSign(tx domain.Transaction) bool {
	if s.autoSign == nil || !s.cfg.Gate.Permits() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil && s.session.CanAutoSign(tx)
}

func (s *SigningService) signingRequest(serialized []byte, opts domain.SignOptions) domain.SigningRequest {
	chainID := opts.ChainID
	if chainID == "" {
		s.mu.Lock()
		chainID = s.cfg.ChainID
		s.mu.Unlock()
	}

	return domain.SigningRequest{
		Transaction:   domain.SerializedBytes(serialized),
		FreeBandwidth: !opts.NoModify,
		FeeFallback:   opts.FeeFallback,
		ChainID:       chainID,
		Version:       s.cfg.Version,
	}
}

func (s *SigningService) loginURL(nonce string) (string, error) {
	parsed, err := url.Parse(s.cfg.SigningURL + loginPath)
	if err != nil {
		return "", fmt.Errorf("parse login url: %w", err)
	}

	q := parsed.Query()
	if s.cfg.ReturnTempAccount {
		q.Set("returnTemp", "true")
	}
	if s.cfg.Version != "" {
		q.Set("v", base64.StdEncoding.EncodeToString([]byte(s.cfg.Version)))
	}
	if nonce != "" {
		q.Set("n", base64.StdEncoding.EncodeToString([]byte(nonce)))
	}
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

func (s *SigningService) replaceWhitelist(whitelist domain.Whitelist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.session.ReplaceWhitelist(whitelist)
	}
}

func (s *SigningService) clearWhitelist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil && len(s.session.Whitelist) > 0 {
		s.logger.Info("whitelist cleared", zap.String("account", string(s.session.User.Account)))
	}
	if s.session != nil {
		s.session.ClearWhitelist()
	}
}

func (s *SigningService) takePrepared() ports.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	prepared := s.prepared
	s.prepared = nil
	return prepared
}

func (s *SigningService) setState(state domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// settleState returns to the resting state implied by the session.
func (s *SigningService) settleState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.state = domain.StateAuthenticated
		return
	}
	s.state = domain.StateUnauthenticated
}

func (s *SigningService) recordDuration(ctx context.Context, name string, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordDuration(context.WithoutCancel(ctx), name, elapsed)
}

func closeSurface(surface ports.Surface, logger *zap.Logger) {
	if surface == nil {
		return
	}
	if err := surface.Close(); err != nil {
		logger.Debug("close wallet surface", zap.String("surface", surface.ID()), zap.Error(err))
	}
}
