package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeAuth struct {
	token string
	err   error
}

func (f fakeAuth) Login(_ context.Context, _, _ string) (string, error) {
	return f.token, f.err
}

func TestManager_LoginPersistsAndArms(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(Store{Dir: dir}, fakeAuth{token: "tok-1"}, 15*time.Minute, nil)

	if err := m.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	s := m.Current()
	if s == nil || s.Email != "a@b.c" || s.Token != "tok-1" {
		t.Fatalf("unexpected session: %+v", s)
	}
	if _, armed := m.Deadline(); !armed {
		t.Fatalf("watchdog must be armed immediately after login")
	}
	if _, err := os.Stat(filepath.Join(dir, credentialsFileName)); err != nil {
		t.Fatalf("credentials not persisted: %v", err)
	}
}

func TestManager_LoginFailureLeavesSessionUnchanged(t *testing.T) {
	m := NewManager(Store{Dir: t.TempDir()}, fakeAuth{err: errors.New("bad creds")}, time.Minute, nil)
	if err := m.Login(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatalf("expected login error")
	}
	if m.Current() != nil {
		t.Fatalf("failed login must not create a session")
	}
}

func TestManager_RestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	m := NewManager(Store{Dir: dir}, fakeAuth{token: "tok-2"}, time.Minute, nil)
	if err := m.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// A fresh process with the same dir reconstructs the session without
	// talking to the backend.
	m2 := NewManager(Store{Dir: dir}, fakeAuth{err: errors.New("must not be called")}, time.Minute, nil)
	if !m2.Loading() {
		t.Fatalf("manager must report loading before restore")
	}
	if err := m2.Restore(now); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if m2.Loading() {
		t.Fatalf("loading must clear after restore")
	}
	s := m2.Current()
	if s == nil || s.Token != "tok-2" || s.Email != "a@b.c" {
		t.Fatalf("unexpected restored session: %+v", s)
	}
	if _, armed := m2.Deadline(); !armed {
		t.Fatalf("restored session must arm the watchdog")
	}
}

func TestManager_RestoreWithoutCredentials(t *testing.T) {
	m := NewManager(Store{Dir: t.TempDir()}, fakeAuth{}, time.Minute, nil)
	if err := m.Restore(time.Now()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if m.Current() != nil {
		t.Fatalf("no credentials must mean no session")
	}
}

func TestManager_LogoutClearsEverything(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(Store{Dir: dir}, fakeAuth{token: "tok-3"}, time.Minute, nil)
	if err := m.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if m.Current() != nil {
		t.Fatalf("session must be gone after logout")
	}
	if _, err := os.Stat(filepath.Join(dir, credentialsFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("credentials must be removed, stat err=%v", err)
	}
	if _, armed := m.Deadline(); armed {
		t.Fatalf("watchdog must disarm on logout")
	}
	// credential persisted <=> session reconstructed: a fresh restore now
	// yields no session.
	m2 := NewManager(Store{Dir: dir}, fakeAuth{}, time.Minute, nil)
	if err := m2.Restore(time.Now()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if m2.Current() != nil {
		t.Fatalf("cleared credentials must not reconstruct a session")
	}
}

func TestManager_ExpireIfIdleFiresExactlyOnce(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	m := NewManager(Store{Dir: t.TempDir()}, fakeAuth{token: "tok-4"}, 15*time.Minute, nil)
	if err := m.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	// Pin the deadline to a known base for the assertions below.
	m.wd.Arm(now)

	if m.ExpireIfIdle(now.Add(14 * time.Minute)) {
		t.Fatalf("must not expire before the limit")
	}
	m.Activity(now.Add(14 * time.Minute))
	if m.ExpireIfIdle(now.Add(15 * time.Minute)) {
		t.Fatalf("activity must have moved the deadline")
	}
	if !m.ExpireIfIdle(now.Add(29 * time.Minute)) {
		t.Fatalf("expected idle expiry")
	}
	if m.Current() != nil {
		t.Fatalf("expiry must log the session out")
	}
	if m.ExpireIfIdle(now.Add(30 * time.Minute)) {
		t.Fatalf("expiry must fire exactly once")
	}
}
