package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/adapters/activation"
	"github.com/bnema/cloudwallet-cli/internal/adapters/autosign"
	"github.com/bnema/cloudwallet-cli/internal/adapters/chainrpc"
	"github.com/bnema/cloudwallet-cli/internal/adapters/codec"
	"github.com/bnema/cloudwallet-cli/internal/adapters/ecc"
	"github.com/bnema/cloudwallet-cli/internal/adapters/metrics"
	statusadapter "github.com/bnema/cloudwallet-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/cloudwallet-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/cloudwallet-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/cloudwallet-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/cloudwallet-cli/internal/adapters/secrets/pass"
	"github.com/bnema/cloudwallet-cli/internal/adapters/transport"
	"github.com/bnema/cloudwallet-cli/internal/application"
	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
	"github.com/bnema/cloudwallet-cli/internal/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	configDir  = ".cloudwallet"
	configName = "config"
	envPrefix  = "CW"

	keyLogLevel           = "log.level"
	keyProfile            = "profile"
	keyRelayListen        = "relay.listen"
	keyHandshakeTimeout   = "timeouts.handshake"
	keyInteractiveTimeout = "timeouts.interactive"
	keyAutoSignTimeout    = "timeouts.autosign"
	keyAutoSignEnabled    = "autosign.enabled"
	keyAutoSignUserAgent  = "autosign.user_agent"
	keyBrowserOpen        = "browser.open"
	keySecretsDir         = "secrets.dir"
	keySecretsBackend     = "secrets.backend"
	keyActivationInterval = "activation.poll_interval"

	metricsNamespace = "cloudwallet"
)

type app struct {
	cfg      *viper.Viper
	logger   *zap.Logger
	profiles *application.ProfileService
	secrets  ports.SecretStore
	now      func() time.Time

	sessionRenderer    func(application.SessionStatus) (string, error)
	profilesRenderer   func([]application.ProfileStatus) (string, error)
	activationRenderer func(domain.RequisitionInfo, statusadapter.RenderOptions) (string, error)
}

func newConfig() (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetDefault(keyLogLevel, "warn")
	cfg.SetDefault(keyRelayListen, "127.0.0.1:0")
	cfg.SetDefault(keyHandshakeTimeout, transport.DefaultHandshakeTimeout)
	cfg.SetDefault(keyInteractiveTimeout, application.DefaultInteractiveTimeout)
	cfg.SetDefault(keyAutoSignTimeout, application.DefaultAutoSignTimeout)
	cfg.SetDefault(keyAutoSignEnabled, true)
	cfg.SetDefault(keyBrowserOpen, true)
	cfg.SetDefault(keySecretsBackend, "chain")
	cfg.SetDefault(keyActivationInterval, activation.DefaultPollInterval)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(keySecretsDir, filepath.Join(homeDir, configDir, "secrets"))

	cfg.SetConfigName(configName)
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return cfg, nil
}

func wireApp(cfg *viper.Viper) (*app, error) {
	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	return &app{
		cfg:                cfg,
		logger:             zap.NewNop(),
		profiles:           application.NewProfileService(repo),
		now:                time.Now,
		sessionRenderer:    statusadapter.RenderSession,
		profilesRenderer:   statusadapter.RenderProfiles,
		activationRenderer: statusadapter.RenderActivation,
	}, nil
}

// start finishes the wiring that depends on parsed flags.
func (a *app) start() error {
	logger, err := newLogger(a.cfg.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.logger = logger

	secrets, err := newSecretStore(a.cfg.GetString(keySecretsBackend), a.cfg.GetString(keySecretsDir), logger)
	if err != nil {
		return err
	}
	a.secrets = secrets
	return nil
}

func newSecretStore(backend string, dir string, logger *zap.Logger) (ports.SecretStore, error) {
	switch backend {
	case "file":
		return filestore.NewStore(dir), nil
	case "pass":
		return passstore.NewStore(), nil
	case "chain", "":
		store, err := chainstore.NewPassFirstWithFileFallback(dir, logger)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown secrets backend %q (want chain, pass or file)", backend)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(parsed)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func (a *app) resolveProfile(ctx context.Context) (domain.Profile, error) {
	return a.profiles.Resolve(ctx, domain.ProfileID(a.cfg.GetString(keyProfile)))
}

func (a *app) activationService(profile domain.Profile) *application.ActivationService {
	client := &activation.Client{BaseURL: profile.ActivationURL}
	return application.NewActivationService(client, a.secrets, a.cfg.GetDuration(keyActivationInterval), a.logger)
}

// walletSession is the wiring of one wallet conversation: the relay that
// hosts surfaces and the signing service driving them.
type walletSession struct {
	signing *application.SigningService
	proofs  *application.ProofService
	relay   *transport.Relay
	poster  *metrics.Poster
	logger  *zap.Logger
}

func (a *app) openSession(profile domain.Profile, out io.Writer) (*walletSession, error) {
	origin, err := profile.WalletOrigin()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	histograms, err := metrics.NewHistograms(metricsNamespace, registry)
	if err != nil {
		return nil, fmt.Errorf("register signing metrics: %w", err)
	}
	poster := &metrics.Poster{URL: profile.MetricURL, Logger: a.logger}

	bus := transport.NewBus(a.logger)
	relay := transport.NewRelay(bus, a.launcher(out),
		transport.WithRelayLogger(a.logger),
		transport.WithRegistry(registry),
	)
	if err := relay.Start(a.cfg.GetString(keyRelayListen)); err != nil {
		return nil, fmt.Errorf("start wallet relay: %w", err)
	}
	a.logger.Debug("wallet relay listening", zap.String("addr", relay.Addr()))

	channel := transport.New(relay, bus, origin,
		transport.WithHandshakeTimeout(a.cfg.GetDuration(keyHandshakeTimeout)),
		transport.WithLogger(a.logger),
	)
	proofs := application.NewProofService(&chainrpc.Client{BaseURL: profile.RPCURL}, ecc.Verifier{})

	cfg := application.SigningConfigFromProfile(profile)
	cfg.Version = version.Version
	cfg.Gate.Enabled = a.cfg.GetBool(keyAutoSignEnabled)
	cfg.Gate.UserAgent = a.cfg.GetString(keyAutoSignUserAgent)
	cfg.AutoSignTimeout = a.cfg.GetDuration(keyAutoSignTimeout)
	cfg.InteractiveTimeout = a.cfg.GetDuration(keyInteractiveTimeout)

	deps := application.SigningDeps{
		Channel: channel,
		Codec:   codec.JSON{},
		Proofs:  proofs,
		Metrics: metrics.Multi{poster, histograms},
		Logger:  a.logger,
	}
	if profile.AutoSigningURL != "" {
		deps.AutoSign = &autosign.Client{
			BaseURL:    profile.AutoSigningURL,
			ReturnTemp: profile.ReturnTempAccount,
			Timeout:    cfg.AutoSignTimeout,
			Token:      a.activationService(profile).TokenSource(profile.ID),
		}
	}

	return &walletSession{
		signing: application.NewSigningService(deps, cfg),
		proofs:  proofs,
		relay:   relay,
		poster:  poster,
		logger:  a.logger,
	}, nil
}

func (a *app) launcher(out io.Writer) transport.Launcher {
	printer := transport.PrintLauncher{Out: out}
	if !a.cfg.GetBool(keyBrowserOpen) {
		return printer
	}
	return transport.FallbackLauncher{
		Primary:  transport.NewBrowserLauncher(),
		Fallback: printer,
		Logger:   a.logger,
	}
}

// login signs the user in, trying the silent endpoint first when auto is set.
func (s *walletSession) login(ctx context.Context, nonce string, auto bool) (domain.User, error) {
	if auto {
		user, err := s.signing.TryAutoLogin(ctx)
		if err == nil {
			return user, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.User{}, err
		}
		s.logger.Info("silent login failed, opening the wallet", zap.Error(err))
	}
	return s.signing.Login(ctx, nonce)
}

func (s *walletSession) Close() error {
	s.signing.Logout()

	flushCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.poster.Flush(flushCtx)

	return s.relay.Close()
}
