//go:build integration
// +build integration

package integration

import (
	"context"
	"os/exec"
	"testing"
)

// restartBrowserContainer restarts the compose service running the browser.
// E2E_COMPOSE_FILE points at the compose file of the deployment under test;
// E2E_COMPOSE_SERVICE names the service (default "browser").
func restartBrowserContainer(t *testing.T, ctx context.Context) {
	t.Helper()

	args := []string{"compose"}
	if f := getenv("E2E_COMPOSE_FILE", ""); f != "" {
		args = append(args, "-f", f)
	}
	service := getenv("E2E_COMPOSE_SERVICE", "browser")
	args = append(args, "restart", service)

	cmd := exec.CommandContext(ctx, "docker", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("docker compose restart %s failed: %v\n%s", service, err, string(out))
	}
}
