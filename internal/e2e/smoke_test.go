package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/login":
			_, _ = w.Write([]byte(`{"verified": true, "userAccount": "user1.wam", "pubKeys": ["PUB_K1_abc"],
				"whitelistedContracts": [{"contract": "farmersworld"}]}`))
		case "/signing":
			_, _ = w.Write([]byte(`{"type": "TX_SIGNED", "verified": true, "signatures": ["SIG_K1_smoke"]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	_, stderr, err := runCW(t, binaryPath, home,
		"profile", "add", "smoke", "--use",
		"--signing-url", "http://127.0.0.1:3000",
		"--rpc-url", "http://127.0.0.1:8888",
		"--auto-signing-url", server.URL,
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runCW(t, binaryPath, home, "profile", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "smoke (active)")

	txPath := filepath.Join(home, "tx.json")
	require.NoError(t, os.WriteFile(txPath, []byte(`{"actions": [{
		"account": "farmersworld", "name": "claim",
		"authorization": [{"actor": "user1.wam", "permission": "active"}],
		"data": {"owner": "user1.wam"}
	}]}`), 0o600))

	stdout, stderr, err = runCW(t, binaryPath, home, "sign", "--file", txPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Account: user1.wam")
	assert.Contains(t, stdout, "SIG_K1_smoke")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "cw-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cw")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build cw binary: %s", string(output))
	return binaryPath
}

func runCW(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"CW_BROWSER_OPEN=false",
		"CW_SECRETS_BACKEND=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
