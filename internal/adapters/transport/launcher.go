package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

var ErrNoBrowser = errors.New("no browser launcher available")

// Launcher presents a wallet URL to the user.
type Launcher interface {
	Launch(ctx context.Context, url string) error
}

type startFunc func(ctx context.Context, name string, args ...string) error

type BrowserLauncher struct {
	goos  string
	start startFunc
}

func NewBrowserLauncher() *BrowserLauncher {
	return &BrowserLauncher{goos: runtime.GOOS, start: startCommand}
}

func (l *BrowserLauncher) Launch(ctx context.Context, url string) error {
	name, args, err := browserCommand(l.goos, url)
	if err != nil {
		return err
	}
	if err := l.start(ctx, name, args...); err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	return nil
}

func browserCommand(goos string, url string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("%w on %s", ErrNoBrowser, goos)
	}
}

func startCommand(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrNoBrowser
		}
		return fmt.Errorf("locate %s: %w", name, err)
	}

	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// PrintLauncher asks the user to open the URL themselves.
type PrintLauncher struct {
	Out io.Writer
}

func (l PrintLauncher) Launch(_ context.Context, url string) error {
	if l.Out == nil {
		return ErrNoBrowser
	}
	_, err := fmt.Fprintf(l.Out, "Open this URL in your browser to continue:\n  %s\n", url)
	return err
}

// FallbackLauncher presents the URL through Fallback when Primary cannot.
type FallbackLauncher struct {
	Primary  Launcher
	Fallback Launcher
	Logger   *zap.Logger
}

func (l FallbackLauncher) Launch(ctx context.Context, url string) error {
	err := l.Primary.Launch(ctx, url)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if l.Logger != nil {
		l.Logger.Info("browser launch failed, using fallback presentation", zap.Error(err))
	}

	if fallbackErr := l.Fallback.Launch(ctx, url); fallbackErr != nil {
		return errors.Join(err, fallbackErr)
	}
	return nil
}
