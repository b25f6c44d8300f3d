// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

type fakeHTTPServer struct {
	started  chan struct{}
	release  chan error
	shutdown atomic.Bool
}

func newFakeHTTPServer() *fakeHTTPServer {
	return &fakeHTTPServer{
		started: make(chan struct{}),
		release: make(chan error, 1),
	}
}

func (f *fakeHTTPServer) ListenAndServe() error {
	close(f.started)
	return <-f.release
}

func (f *fakeHTTPServer) Shutdown(ctx context.Context) error {
	f.shutdown.Store(true)
	f.release <- nil
	return nil
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	srv := newFakeHTTPServer()
	svc := NewHTTPServerService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	<-srv.started
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop")
	}
	if !srv.shutdown.Load() {
		t.Fatal("Shutdown was not called")
	}
}

func TestHTTPServiceSurfacesListenError(t *testing.T) {
	srv := newFakeHTTPServer()
	svc := NewHTTPServerService(srv, time.Second)

	done := make(chan error, 1)
	go func() { done <- svc.Serve(context.Background()) }()

	<-srv.started
	srv.release <- errors.New("port in use")

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected listen error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("service did not return")
	}
}

type fakeCatalog struct {
	loads atomic.Int32
	fail  bool
}

func (f *fakeCatalog) LoadFile(path string) error {
	f.loads.Add(1)
	if f.fail {
		return errors.New("read failed")
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return nil
}

func (f *fakeCatalog) Len() int { return int(f.loads.Load()) }

type fakeBroadcaster struct {
	cues atomic.Int32
}

func (f *fakeBroadcaster) BroadcastCatalogUpdated(int) { f.cues.Add(1) }

func TestCatalogReloadServiceBroadcastsOnSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
		t.Fatal(err)
	}

	cat := &fakeCatalog{}
	hub := &fakeBroadcaster{}
	svc := NewCatalogReloadService(cat, hub, path, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for hub.cues.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no reload cue broadcast")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done
}

func TestCatalogReloadServiceKeepsRunningOnFailure(t *testing.T) {
	cat := &fakeCatalog{fail: true}
	svc := NewCatalogReloadService(cat, nil, "/nonexistent.json", 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for cat.loads.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatal("reload loop stopped after failure")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
