package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ProfilesPathKey = "profiles.path"

	profilesFileMode   = 0o600
	profilesDirMode    = 0o700
	profilesConfigDir  = ".cloudwallet"
	profilesConfigFile = "profiles.toml"
	tempFilePattern    = ".profiles-*.toml.tmp"
)

// Repository stores wallet endpoint profiles in a TOML file. The built-in
// mainnet profile is always visible and can be overridden by saving a
// profile with the same id.
type Repository struct {
	profilesPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProfileRepository = (*Repository)(nil)

// NewRepository resolves the profiles file from cfg, defaulting to
// ~/.cloudwallet/profiles.toml.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(ProfilesPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, profilesConfigDir, profilesConfigFile)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve profiles path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Repository{profilesPath: absPath, mu: lockForPath(absPath)}, nil
}

func (r *Repository) Path() string {
	return r.profilesPath
}

func (r *Repository) Save(ctx context.Context, profile domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile %q: %w", profile.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(profile)
	replaced := false
	for i := range file.Profiles {
		if file.Profiles[i].ID == encoded.ID {
			file.Profiles[i] = encoded
			replaced = true
			break
		}
	}
	if !replaced {
		file.Profiles = append(file.Profiles, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Profile{}, err
	}

	for _, entry := range file.Profiles {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}
	if id == domain.DefaultProfileID {
		return domain.DefaultProfile(), nil
	}
	return domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, id)
}

func (r *Repository) List(ctx context.Context) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(file.Profiles)+1)
	hasDefault := false
	for _, entry := range file.Profiles {
		if entry.ID == string(domain.DefaultProfileID) {
			hasDefault = true
		}
		profiles = append(profiles, fromSchema(entry))
	}
	if !hasDefault {
		profiles = append(profiles, domain.DefaultProfile())
	}

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

// Active returns the selected profile id, or the built-in default when none
// has been selected.
func (r *Repository) Active(ctx context.Context) (domain.ProfileID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return "", err
	}
	if file.Active == "" {
		return domain.DefaultProfileID, nil
	}
	return domain.ProfileID(file.Active), nil
}

func (r *Repository) SetActive(ctx context.Context, id domain.ProfileID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	known := id == domain.DefaultProfileID
	for _, entry := range file.Profiles {
		if entry.ID == string(id) {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, id)
	}

	file.Active = string(id)
	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.profilesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read profiles file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode profiles file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()
	return file, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}
	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.profilesPath), profilesDirMode); err != nil {
		return fmt.Errorf("create profiles directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode profiles file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.profilesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp profiles file: %w", err)
	}
	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp profiles file: %w", err)
	}
	if err := tempFile.Chmod(profilesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp profiles file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp profiles file: %w", err)
	}
	if err := os.Rename(tempName, r.profilesPath); err != nil {
		return fmt.Errorf("replace profiles file: %w", err)
	}
	cleanup = false

	if err := os.Chmod(r.profilesPath, profilesFileMode); err != nil {
		return fmt.Errorf("chmod profiles file: %w", err)
	}
	return nil
}

func toSchema(profile domain.Profile) profileSchema {
	return profileSchema{
		ID:      string(profile.ID),
		Name:    profile.Name,
		ChainID: profile.ChainID,
		Endpoints: urls{
			Signing:     profile.SigningURL,
			AutoSigning: profile.AutoSigningURL,
			RPC:         profile.RPCURL,
			Metric:      profile.MetricURL,
			Activation:  profile.ActivationURL,
		},
		DappOrigin:        profile.DappOrigin,
		ReturnTempAccount: profile.ReturnTempAccount,
	}
}

func fromSchema(entry profileSchema) domain.Profile {
	return domain.Profile{
		ID:                domain.ProfileID(entry.ID),
		Name:              entry.Name,
		ChainID:           entry.ChainID,
		SigningURL:        entry.Endpoints.Signing,
		AutoSigningURL:    entry.Endpoints.AutoSigning,
		RPCURL:            entry.Endpoints.RPC,
		MetricURL:         entry.Endpoints.Metric,
		ActivationURL:     entry.Endpoints.Activation,
		DappOrigin:        entry.DappOrigin,
		ReturnTempAccount: entry.ReturnTempAccount,
	}
}
