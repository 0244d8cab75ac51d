package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/veriscan/veriscan-api/internal/core/ports"
)

type recordingProcessor struct {
	mu      sync.Mutex
	byUser  map[string][]string
	total   int
	failFor string
}

func newRecordingProcessor() *recordingProcessor {
	return &recordingProcessor{byUser: make(map[string][]string)}
}

func (p *recordingProcessor) Record(_ context.Context, in ports.DetectionRecordInput) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if in.UserID == p.failFor {
		return errors.New("record failed")
	}
	p.byUser[in.UserID] = append(p.byUser[in.UserID], in.Input)
	p.total++
	return nil
}

func (p *recordingProcessor) waitForTotal(t *testing.T, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.mu.Lock()
		got := p.total
		p.mu.Unlock()
		if got >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d records", want)
}

func TestDispatcher_PreservesPerUserOrder(t *testing.T) {
	proc := newRecordingProcessor()
	d := NewDispatcher(4, proc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const perUser = 50
	users := []string{"alice", "bob", "carol"}
	for i := 0; i < perUser; i++ {
		for _, u := range users {
			d.Enqueue(ports.DetectionRecordInput{UserID: u, Input: fmt.Sprintf("sample-%03d", i)})
		}
	}

	proc.waitForTotal(t, perUser*len(users))

	proc.mu.Lock()
	defer proc.mu.Unlock()
	for _, u := range users {
		inputs := proc.byUser[u]
		if len(inputs) != perUser {
			t.Fatalf("user %s: expected %d records, got %d", u, perUser, len(inputs))
		}
		for i, in := range inputs {
			if want := fmt.Sprintf("sample-%03d", i); in != want {
				t.Fatalf("user %s: record %d out of order: got %s, want %s", u, i, in, want)
			}
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, newRecordingProcessor(), zerolog.Nop())

	for _, user := range []string{"alice", "bob", "", "u_1234567890"} {
		first := d.shardIndex(user)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(user); got != first {
				t.Fatalf("shard for %q not stable: %d vs %d", user, got, first)
			}
		}
		if first < 0 || first >= 8 {
			t.Fatalf("shard for %q out of range: %d", user, first)
		}
	}
}

func TestDispatcher_FailedRecordDoesNotStallWorker(t *testing.T) {
	proc := newRecordingProcessor()
	proc.failFor = "alice"
	d := NewDispatcher(1, proc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.DetectionRecordInput{UserID: "alice", Input: "doomed"})
	d.Enqueue(ports.DetectionRecordInput{UserID: "bob", Input: "fine"})

	proc.waitForTotal(t, 1)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.byUser["alice"]) != 0 {
		t.Fatalf("failed record must not be stored")
	}
	if len(proc.byUser["bob"]) != 1 {
		t.Fatalf("worker stalled after a failed record")
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingProcessor(), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
