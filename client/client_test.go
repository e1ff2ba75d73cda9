// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/classroom-quorum/classroom"
	"github.com/danielhkuo/classroom-quorum/cliparse"
	"github.com/danielhkuo/classroom-quorum/models"
	"github.com/danielhkuo/classroom-quorum/router"
	"github.com/danielhkuo/classroom-quorum/testutil"
)

func newTestServer(t *testing.T) (*classroom.Coordinator, *Client) {
	t.Helper()
	journal := testutil.SetupTestDB(t)
	coord := testutil.NewTestCoordinator(t, journal)
	srv := httptest.NewServer(router.NewRouter(coord, journal))
	t.Cleanup(srv.Close)
	return coord, New(srv.URL, srv.Client())
}

func testActorConfig(url string) cliparse.ActorConfig {
	return cliparse.ActorConfig{
		ServerURL:    url,
		Name:         "Test",
		PollInterval: 10 * time.Millisecond,
		RetryDelay:   10 * time.Millisecond,
		LogLevel:     "info",
	}
}

func TestClient_Endpoints(t *testing.T) {
	_, c := newTestServer(t)
	ctx := t.Context()

	id, err := c.UniqueID(ctx)
	if err != nil || id != 1 {
		t.Fatalf("UniqueID = %d, %v; want 1", id, err)
	}
	doorID, err := c.UniqueID(ctx)
	if err != nil || doorID != 2 {
		t.Fatalf("UniqueID = %d, %v; want 2", doorID, err)
	}

	inSession, err := c.Status(ctx)
	if err != nil || inSession {
		t.Fatalf("Status = %v, %v; want false", inSession, err)
	}
	enough, err := c.EnoughStudents(ctx)
	if err != nil || enough {
		t.Fatalf("EnoughStudents = %v, %v; want false", enough, err)
	}

	if err := c.Generate(ctx, models.Door{ID: doorID, AmountOfStudents: testutil.TestMinStudents}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	enough, err = c.EnoughStudents(ctx)
	if err != nil || !enough {
		t.Fatalf("EnoughStudents = %v, %v; want true", enough, err)
	}

	teacher := models.Teacher{ID: id, Name: "Alice"}
	stored, err := c.Join(ctx, teacher)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if stored.ID != id || stored.VotedToStart {
		t.Errorf("Unexpected joined teacher %+v", stored)
	}

	started, err := c.VoteStart(ctx, teacher)
	if err != nil || !started {
		t.Fatalf("VoteStart = %v, %v; want true", started, err)
	}

	snap, err := c.Session(ctx)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if !snap.InSession || snap.Students != 0 || snap.Doors != 1 || len(snap.Teachers) != 1 {
		t.Errorf("Unexpected snapshot %+v", snap)
	}

	ended, err := c.VoteEnd(ctx, teacher)
	if err != nil || !ended {
		t.Fatalf("VoteEnd = %v, %v; want true", ended, err)
	}
}

func TestClient_UnexpectedStatus(t *testing.T) {
	_, c := newTestServer(t)

	_, err := c.VoteStart(t.Context(), models.Teacher{Name: "No identity"})
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("Expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := New(srv.URL, nil).Status(t.Context())
	if err == nil {
		t.Fatal("Expected an error from a closed server")
	}
	if errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("Transport failure must not look like a status error: %v", err)
	}
}

func TestAcquireID_StatusErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := acquireID(t.Context(), New(srv.URL, nil), time.Millisecond, "test")
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("Expected ErrUnexpectedStatus, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("Expected a single request, got %d", got)
	}
}

func TestAcquireID_RetriesTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	start := time.Now()
	_, err := acquireID(t.Context(), New(srv.URL, nil), 20*time.Millisecond, "test")
	if err == nil {
		t.Fatal("Expected an error from a closed server")
	}
	if errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("Expected a transport error, got %v", err)
	}
	// two waits between three tries
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Expected retries at a constant delay, finished in %v", elapsed)
	}
}

func TestTeacher_StepVotesEachPhase(t *testing.T) {
	coord, c := newTestServer(t)
	coord.ReportStudentDelta(testutil.TestMinStudents)

	cfg := testActorConfig("")
	cfg.VoteProbability = 1
	teacher := NewTeacher(c, cfg)

	if err := teacher.Step(t.Context()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if teacher.Record().ID == 0 {
		t.Fatal("Expected an identity to be issued")
	}
	if !coord.IsInSession() {
		t.Fatal("A sole teacher voting yes should start the class")
	}

	if err := teacher.Step(t.Context()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if coord.IsInSession() {
		t.Fatal("A sole teacher voting yes should end the class")
	}
	if teacher.Record().VotedToStart {
		t.Error("Start flag should be cleared once in session")
	}
}

func TestTeacher_WaitsForStudents(t *testing.T) {
	coord, c := newTestServer(t)

	cfg := testActorConfig("")
	cfg.VoteProbability = 1
	teacher := NewTeacher(c, cfg)

	if err := teacher.Step(t.Context()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if coord.IsInSession() {
		t.Fatal("Class must not start without enough students")
	}

	snap := coord.Snapshot()
	if len(snap.Teachers) != 1 || snap.Teachers[0].VotedToStart {
		t.Errorf("Expected one registered teacher without a vote, got %+v", snap.Teachers)
	}
}

func TestTeacher_ZeroProbabilityNeverVotes(t *testing.T) {
	coord, c := newTestServer(t)
	coord.ReportStudentDelta(testutil.TestMinStudents)

	teacher := NewTeacher(c, testActorConfig(""))
	for i := 0; i < 5; i++ {
		if err := teacher.Step(t.Context()); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
	if coord.IsInSession() {
		t.Error("A teacher with probability 0 must never vote")
	}
}

func TestDoor_Step(t *testing.T) {
	coord, c := newTestServer(t)

	cfg := testActorConfig("")
	cfg.MinDelta, cfg.MaxDelta = 3, 3
	door := NewDoor(c, cfg)

	for i := 0; i < 2; i++ {
		if err := door.Step(t.Context()); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
	snap := coord.Snapshot()
	if snap.Students != 6 || snap.Doors != 1 {
		t.Fatalf("Expected 6 students through 1 door, got %d through %d", snap.Students, snap.Doors)
	}

	teachers := testutil.JoinTestTeachers(t, coord, 1)
	if !coord.VoteToStart(teachers[0]) {
		t.Fatal("Expected the class to start")
	}

	if err := door.Step(t.Context()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if got := coord.Snapshot().Students; got != 0 {
		t.Errorf("Door must not report while in session, students = %d", got)
	}
	if !door.Record().IsClosed {
		t.Error("Expected the door to be closed during the session")
	}
}

func TestDoor_DeltaWithinRange(t *testing.T) {
	_, c := newTestServer(t)

	cfg := testActorConfig("")
	cfg.MinDelta, cfg.MaxDelta = -2, 2
	door := NewDoor(c, cfg)

	for i := 0; i < 20; i++ {
		if err := door.Step(t.Context()); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if d := door.Record().AmountOfStudents; d < -2 || d > 2 {
			t.Fatalf("Delta %d outside [-2, 2]", d)
		}
	}
}

func TestDoor_RandomInterval(t *testing.T) {
	door := NewDoor(nil, cliparse.ActorConfig{})
	for i := 0; i < 50; i++ {
		if d := door.interval(); d < time.Second || d >= 3*time.Second {
			t.Fatalf("Interval %v outside [1s, 3s)", d)
		}
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	teacher := NewTeacher(New(srv.URL, nil), testActorConfig(srv.URL))

	done := make(chan error, 1)
	go func() { done <- teacher.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
