package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devinterview/question-catalog/internal/models"
	"github.com/devinterview/question-catalog/pkg/client"
)

// Source describes where the current collection came from
type Source string

const (
	SourceSeed   Source = "seed"
	SourceMerged Source = "merged"
)

// Remote is the subset of the import service client the store depends on
type Remote interface {
	Health(ctx context.Context) (*models.HealthStatus, error)
	ListQuestions(ctx context.Context, opts client.QuestionFilters) ([]models.RemoteQuestion, error)
}

// Snapshot is an immutable view of the collection. It is replaced, never patched.
type Snapshot struct {
	Questions []models.Question
	Online    bool
	Source    Source
	UpdatedAt time.Time
	Seq       uint64
}

// Store owns the last known collection and the connectivity state
type Store struct {
	remote Remote
	seed   []models.Question

	current atomic.Pointer[Snapshot]
	seq     atomic.Uint64
	applyMu sync.Mutex

	subMu  sync.Mutex
	subs   map[int]chan Snapshot
	nextID int
}

// NewStore creates a store that starts offline with the seed collection.
// remote may be nil, in which case every refresh reports offline.
func NewStore(remote Remote, seed []models.Question) *Store {
	s := &Store{
		remote: remote,
		seed:   seed,
		subs:   make(map[int]chan Snapshot),
	}
	s.current.Store(&Snapshot{
		Questions: seed,
		Online:    false,
		Source:    SourceSeed,
		UpdatedAt: time.Now().UTC(),
	})
	return s
}

// Snapshot returns the current collection
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Seed returns the static seed collection
func (s *Store) Seed() []models.Question {
	return s.seed
}

// Refresh probes the import service and, when it is reachable, replaces the
// collection with the remote questions followed by the seed. Failures leave the
// collection unchanged and are returned for logging only. A refresh that
// completes after a newer one has been applied is discarded.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	token := s.seq.Add(1)

	if s.remote == nil {
		return s.apply(token, func(cur *Snapshot) *Snapshot {
			return withOnline(cur, false)
		}), nil
	}

	if _, err := s.remote.Health(ctx); err != nil {
		snap := s.apply(token, func(cur *Snapshot) *Snapshot {
			return withOnline(cur, false)
		})
		return snap, fmt.Errorf("health check failed: %w", err)
	}

	remote, err := s.remote.ListQuestions(ctx, client.QuestionFilters{})
	if err != nil {
		snap := s.apply(token, func(cur *Snapshot) *Snapshot {
			return withOnline(cur, true)
		})
		return snap, fmt.Errorf("failed to load questions: %w", err)
	}

	questions := Merge(Normalize(remote), s.seed)
	snap := s.apply(token, func(cur *Snapshot) *Snapshot {
		return &Snapshot{
			Questions: questions,
			Online:    true,
			Source:    SourceMerged,
		}
	})
	return snap, nil
}

func withOnline(cur *Snapshot, online bool) *Snapshot {
	return &Snapshot{
		Questions: cur.Questions,
		Online:    online,
		Source:    cur.Source,
	}
}

// apply installs the snapshot built by next unless a newer token already won
func (s *Store) apply(token uint64, next func(cur *Snapshot) *Snapshot) *Snapshot {
	s.applyMu.Lock()
	cur := s.current.Load()
	if token < cur.Seq {
		s.applyMu.Unlock()
		slog.Debug("discarding stale refresh", "token", token, "applied", cur.Seq)
		return cur
	}

	snap := next(cur)
	snap.Seq = token
	snap.UpdatedAt = time.Now().UTC()
	s.current.Store(snap)
	s.applyMu.Unlock()

	s.notify(*snap)
	return snap
}

// Subscribe registers for snapshot notifications. Slow subscribers only see
// the most recent snapshot. The returned func unsubscribes.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// drop the pending one and keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
