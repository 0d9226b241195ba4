package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
)

const (
	storeDirMode   = 0o700
	secretFileMode = 0o600
)

// Store keeps one secret per file below root. It backs activation tokens
// on hosts without pass.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("refusing to store empty secret %q", key)
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create secret directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".secret-*")
	if err != nil {
		return fmt.Errorf("create temp secret %q: %w", key, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := tmp.Chmod(secretFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp secret %q: %w", key, err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write secret %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp secret %q: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace secret %q: %w", key, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
		}
		return "", fmt.Errorf("read secret %q: %w", key, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete secret %q: %w", key, err)
	}
	return nil
}

func (s *Store) pathForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid secret key %q", key)
	}
	return filepath.Join(s.root, cleaned), nil
}
