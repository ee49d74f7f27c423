package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pbozzay/kanbanist/internal/config"
	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/testutil"
)

func openSession(t *testing.T, fake *testutil.FakeRemote, settings config.Settings) *Session {
	t.Helper()
	cfg := &config.Config{Dir: t.TempDir(), Settings: settings}
	sess, err := Open(context.Background(), cfg, Options{
		Token: "test",
		Dial:  fake.Factory(),
		Now:   func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return sess
}

func TestOpen_LoadsBoard(t *testing.T) {
	fake := testutil.NewFakeRemote()
	fake.AddLabelState("work", "Work", 1)
	fake.AddTask("t1", "Write", nil, "work")
	fake.AddTask("t2", "Read", nil)

	sess := openSession(t, fake, config.Settings{DateLists: 1})
	snap := sess.Snapshot()

	if snap.Token != "test" {
		t.Errorf("expected token to be carried, got %q", snap.Token)
	}
	if len(snap.Lists) != 2 || snap.Lists[1].ID != "2024-03-01" {
		t.Fatalf("unexpected lists %+v", snap.Lists)
	}
	if len(snap.Backlog.Items) != 1 || snap.Backlog.Items[0].ID != "t2" {
		t.Errorf("unexpected backlog %+v", snap.Backlog)
	}
}

func TestOpen_FetchFails(t *testing.T) {
	fake := testutil.NewFakeRemote()
	fake.Errs = map[string]error{"FetchState": errors.New("boom")}

	cfg := &config.Config{Dir: t.TempDir()}
	if _, err := Open(context.Background(), cfg, Options{Token: "test", Dial: fake.Factory()}); err == nil {
		t.Fatal("expected error")
	}
}

func TestResolveList(t *testing.T) {
	fake := testutil.NewFakeRemote()
	fake.AddLabelState("work", "Work", 1)
	fake.AddLabelState("w2", "work", 2)
	fake.AddLabelState("home", "Home", 3)
	sess := openSession(t, fake, config.Settings{DateLists: 1})

	tests := []struct {
		name    string
		wantID  string
		wantErr error
	}{
		{" home ", "home", nil},
		{"backlog", model.BacklogID, nil},
		{"2024-03-01", "2024-03-01", nil},
		{"Fri Mar 1", "2024-03-01", nil},
		{"Work", "", ErrAmbiguousList},
		{"Garden", "", ErrListNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := sess.ResolveList(tt.name)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if l.ID != tt.wantID {
				t.Errorf("expected %q, got %q", tt.wantID, l.ID)
			}
		})
	}
}

func TestDispatch_WaitsForRemote(t *testing.T) {
	fake := testutil.NewFakeRemote()
	fake.AddTask("t1", "Write", nil)
	sess := openSession(t, fake, config.Settings{})
	fake.Reset()

	sess.Dispatch(context.Background(), model.CompleteItem{ItemID: "t1"})

	if ops := fake.Ops(); len(ops) != 1 || ops[0] != "CompleteItem" {
		t.Errorf("expected CompleteItem to have run, got %v", ops)
	}
	if len(sess.Snapshot().Backlog.Items) != 0 {
		t.Error("expected item removed locally")
	}
}
