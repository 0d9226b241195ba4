package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps secrets in the user's pass password store.
type Store struct {
	run runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", key); err != nil {
		return formatError("put", key, err, stderr)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", key)
	if err != nil {
		if isNotFound(stderr) {
			return "", fmt.Errorf("pass entry %q: %w", key, domain.ErrSecretNotFound)
		}
		return "", formatError("get", key, err, stderr)
	}

	// Multiline entries carry metadata after the first line.
	value, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSuffix(value, "\r"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", key)
	if err != nil && !isNotFound(stderr) {
		return formatError("delete", key, err, stderr)
	}
	return nil
}

func isNotFound(stderr string) bool {
	return strings.Contains(stderr, "is not in the password store")
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, key string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}
	return fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
}
