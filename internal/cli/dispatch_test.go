package cli_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/pbozzay/kanbanist/internal/backend/todoist"
	"github.com/pbozzay/kanbanist/internal/cli"
	"github.com/pbozzay/kanbanist/internal/commands"
	"github.com/pbozzay/kanbanist/internal/config"
	"github.com/pbozzay/kanbanist/internal/exitcode"
	"github.com/pbozzay/kanbanist/internal/session"
	"github.com/pbozzay/kanbanist/internal/testutil"
)

// testFactory creates a session factory backed by the given FakeRemote.
func testFactory(svc *testutil.FakeRemote) cli.SessionFactory {
	return func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*session.Session, error) {
		return session.Open(ctx, cfg, session.Options{Token: "test", Dial: svc.Factory(), Logger: logger})
	}
}

func errFactory(err error) cli.SessionFactory {
	return func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*session.Session, error) {
		return nil, err
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	svc := testutil.NewFakeRemote()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	svc := testutil.NewFakeRemote()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	svc := testutil.NewFakeRemote()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	svc := testutil.NewFakeRemote()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "kanbanist 0.1.0\n" {
		t.Errorf("expected 'kanbanist 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	svc := testutil.NewFakeRemote()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsListsBacklog(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	svc := testutil.NewFakeRemote()
	svc.AddTask("t1", "Buy milk", nil)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}
	if stdout.String() != "   1  Buy milk\n" {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestDispatcher_NotLoggedIn(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, errFactory(config.ErrNoToken))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"lists", "--config", t.TempDir()}, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !strings.Contains(stderr.String(), "not logged in") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestDispatcher_SessionErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", todoist.ErrUnauthorized, exitcode.AuthError},
		{"backend", errors.New("connection refused"), exitcode.BackendError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := cli.NewDispatcher(commands.DefaultRegistry, errFactory(tt.err))

			var stdout, stderr bytes.Buffer
			code := dispatcher.Run(context.Background(), []string{"lists", "--config", t.TempDir()}, &stdout, &stderr)
			if code != tt.want {
				t.Errorf("expected exit code %d, got %d", tt.want, code)
			}
		})
	}
}

func TestDispatcher_HelpNeedsNoSession(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, errFactory(config.ErrNoToken))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
}
