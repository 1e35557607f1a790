package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWorkspaceStoreGetAndSweep(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	store := newWorkspaceStore(10*time.Minute, func() time.Time { return now })

	a := store.Get("a")
	if store.Get("a") != a {
		t.Fatalf("Get returned a different workspace")
	}
	now = now.Add(8 * time.Minute)
	store.Get("b")
	now = now.Add(5 * time.Minute)

	if n := store.Sweep(); n != 1 {
		t.Fatalf("swept %d, want 1", n)
	}
	if store.Len() != 1 {
		t.Fatalf("len = %d", store.Len())
	}
	if store.Get("a") == a {
		t.Fatalf("swept workspace was returned again")
	}
}

func TestSweepDiscardsInFlightResults(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	store := newWorkspaceStore(time.Minute, func() time.Time { return now })
	source := &fakeSource{questions: mathQuestions(1), started: make(chan struct{}), gate: make(chan struct{})}
	quizzes, _ := newTestQuizService(source, &fakeStore{})
	ws := store.Get("a")

	errc := make(chan error)
	go func() {
		_, err := quizzes.Generate(context.Background(), ws, algebraRequest())
		errc <- err
	}()
	<-source.started
	now = now.Add(2 * time.Minute)
	store.Sweep()
	close(source.gate)

	if err := <-errc; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	store := newWorkspaceStore(time.Minute, time.Now)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	<-done
}
