package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned for unknown or expired sessions
	ErrNotFound = errors.New("session not found")
	// ErrGenerationInFlight is returned when a session already has a generation running
	ErrGenerationInFlight = errors.New("a generation is already in progress for this session")
	// ErrNoPosts is returned when copying before any generation succeeded
	ErrNoPosts = errors.New("no generated posts to copy")
	// ErrUnknownBlock is returned when copying a block that does not exist
	ErrUnknownBlock = errors.New("unknown post block")
)

// Session is one browser's form state and last successful result
type Session struct {
	ID string

	mu         sync.Mutex
	info       models.LectureInfo
	posts      *models.GeneratedPosts
	generating bool
	copyStatus models.CopyStatus
	updatedAt  time.Time
	now        func() time.Time
}

// Snapshot is a consistent copy of a session's state
type Snapshot struct {
	ID         string
	Info       models.LectureInfo
	Posts      *models.GeneratedPosts
	Generating bool
	CopyStatus *models.CopyStatus
	UpdatedAt  time.Time
}

// Info returns the stored form record
func (s *Session) Info() models.LectureInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// SetInfo replaces the stored form record
func (s *Session) SetInfo(info models.LectureInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
	s.updatedAt = s.now()
}

// PatchInfo updates individual fields and returns the result
func (s *Session) PatchInfo(patch models.LectureInfoPatch) models.LectureInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = patch.Apply(s.info)
	s.updatedAt = s.now()
	return s.info
}

// BeginGeneration takes the in-flight latch. It fails if a generation is already running.
func (s *Session) BeginGeneration() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return ErrGenerationInFlight
	}
	s.generating = true
	s.updatedAt = s.now()
	return nil
}

// EndGeneration releases the latch. A nil result keeps the previous posts.
func (s *Session) EndGeneration(posts *models.GeneratedPosts) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
	if posts != nil {
		p := *posts
		s.posts = &p
	}
	s.updatedAt = s.now()
}

// Copy returns the clipboard text for block and marks it as copied
func (s *Session) Copy(block string) (string, models.CopyStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.posts == nil {
		return "", models.CopyStatus{}, ErrNoPosts
	}
	text, ok := s.posts.ClipboardText(block)
	if !ok {
		return "", models.CopyStatus{}, ErrUnknownBlock
	}
	now := s.now()
	s.copyStatus = models.CopyStatus{Block: block, ExpiresAt: now.Add(models.CopyStatusLifetime)}
	s.updatedAt = now
	return text, s.copyStatus, nil
}

// Snapshot returns the current state. The copy status is included only while active.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:         s.ID,
		Info:       s.info,
		Generating: s.generating,
		UpdatedAt:  s.updatedAt,
	}
	if s.posts != nil {
		p := *s.posts
		snap.Posts = &p
	}
	if s.copyStatus.ActiveAt(s.now()) {
		status := s.copyStatus
		snap.CopyStatus = &status
	}
	return snap
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.generating && s.updatedAt.Before(cutoff)
}

// Store keeps sessions in memory. Store.mu is never held while a session lock is taken.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      atomic.Pointer[func() time.Time]
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store whose sessions expire after ttl without activity
func NewStore(ttl time.Duration) *Store {
	st := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}
	st.SetClock(time.Now)
	return st
}

// SetClock replaces the time source
func (st *Store) SetClock(now func() time.Time) {
	st.now.Store(&now)
}

func (st *Store) clock() time.Time {
	return (*st.now.Load())()
}

// Create opens a new empty session
func (st *Store) Create() *Session {
	sess := &Session{
		ID:  uuid.New().String(),
		now: st.clock,
	}
	sess.updatedAt = st.clock()

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

// Get returns a live session
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete removes a session
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes idle sessions and returns how many were removed. Sessions with
// a generation in flight are never removed.
func (st *Store) Sweep() int {
	if st.ttl <= 0 {
		return 0
	}
	cutoff := st.clock().Add(-st.ttl)

	st.mu.RLock()
	candidates := make([]*Session, 0, len(st.sessions))
	for _, sess := range st.sessions {
		candidates = append(candidates, sess)
	}
	st.mu.RUnlock()

	var idle []*Session
	for _, sess := range candidates {
		if sess.idleSince(cutoff) {
			idle = append(idle, sess)
		}
	}
	if len(idle) == 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for _, sess := range idle {
		// the id may have been deleted and reused in between
		if st.sessions[sess.ID] == sess {
			delete(st.sessions, sess.ID)
			removed++
		}
	}
	return removed
}

// Start runs Sweep every interval until Stop is called. A non-positive interval
// or ttl disables the sweeper.
func (st *Store) Start(interval time.Duration) bool {
	if interval <= 0 || st.ttl <= 0 {
		logrus.Infof("Session sweeper disabled (interval: %v, ttl: %v)", interval, st.ttl)
		return false
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := st.Sweep(); removed > 0 {
					logrus.Infof("Removed %d idle sessions", removed)
				}
			case <-st.stopChan:
				return
			}
		}
	}()
	logrus.Infof("Session sweeper started (interval: %v, ttl: %v)", interval, st.ttl)
	return true
}

// Stop stops the sweeper. It is safe to call more than once.
func (st *Store) Stop() {
	st.stopOnce.Do(func() {
		close(st.stopChan)
	})
}
