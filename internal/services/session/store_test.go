package session

import (
	"sync"
	"testing"
	"time"

	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC)}
	st := NewStore(ttl)
	st.SetClock(clock.Now)
	return st, clock
}

var samplePosts = models.GeneratedPosts{
	Instagram: models.InstagramPost{Content: "insta", Hashtags: []string{"a", "b"}},
	NaverBlog: models.NaverBlogPost{Title: "title", Content: "body"},
}

func TestCreateAndGet(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	sess := st.Create()

	got, err := st.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = st.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerationLatch(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	sess := st.Create()

	require.NoError(t, sess.BeginGeneration())
	assert.ErrorIs(t, sess.BeginGeneration(), ErrGenerationInFlight)
	assert.True(t, sess.Snapshot().Generating)

	sess.EndGeneration(nil)
	assert.False(t, sess.Snapshot().Generating)
	assert.NoError(t, sess.BeginGeneration())
}

func TestFailedGenerationKeepsPreviousPosts(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	sess := st.Create()

	require.NoError(t, sess.BeginGeneration())
	sess.EndGeneration(&samplePosts)

	require.NoError(t, sess.BeginGeneration())
	sess.EndGeneration(nil)

	snap := sess.Snapshot()
	require.NotNil(t, snap.Posts)
	assert.Equal(t, samplePosts, *snap.Posts)
}

func TestCopyBeforeGeneration(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	_, _, err := st.Create().Copy(models.BlockInstagram)
	assert.ErrorIs(t, err, ErrNoPosts)
}

func TestCopyStatusExpires(t *testing.T) {
	st, clock := newTestStore(time.Hour)
	sess := st.Create()
	sess.EndGeneration(&samplePosts)

	text, status, err := sess.Copy(models.BlockNaverBlog)
	require.NoError(t, err)
	assert.Equal(t, "title\n\nbody", text)
	assert.Equal(t, models.BlockNaverBlog, status.Block)

	snap := sess.Snapshot()
	require.NotNil(t, snap.CopyStatus)
	assert.Equal(t, models.BlockNaverBlog, snap.CopyStatus.Block)

	clock.Advance(models.CopyStatusLifetime)
	assert.Nil(t, sess.Snapshot().CopyStatus)
}

func TestCopyReplacesIndicator(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	sess := st.Create()
	sess.EndGeneration(&samplePosts)

	_, _, err := sess.Copy(models.BlockNaverBlog)
	require.NoError(t, err)
	_, _, err = sess.Copy(models.BlockInstagram)
	require.NoError(t, err)

	snap := sess.Snapshot()
	require.NotNil(t, snap.CopyStatus)
	assert.Equal(t, models.BlockInstagram, snap.CopyStatus.Block)

	_, _, err = sess.Copy("tiktok")
	assert.ErrorIs(t, err, ErrUnknownBlock)
}

func TestPatchInfo(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	sess := st.Create()
	sess.SetInfo(models.LectureInfo{Location: "Seoul", Topic: "AI"})

	topic := "ChatGPT"
	info := sess.PatchInfo(models.LectureInfoPatch{Topic: &topic})
	assert.Equal(t, "Seoul", info.Location)
	assert.Equal(t, "ChatGPT", info.Topic)
	assert.Equal(t, info, sess.Info())
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	st, clock := newTestStore(time.Hour)
	idle := st.Create()
	busy := st.Create()
	require.NoError(t, busy.BeginGeneration())

	clock.Advance(30 * time.Minute)
	active := st.Create()

	clock.Advance(45 * time.Minute)
	assert.Equal(t, 1, st.Sweep())

	_, err := st.Get(idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(busy.ID)
	assert.NoError(t, err)
	_, err = st.Get(active.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, st.Len())
}

func TestSweepDisabledWithoutTTL(t *testing.T) {
	st, clock := newTestStore(0)
	st.Create()
	clock.Advance(24 * time.Hour)
	assert.Equal(t, 0, st.Sweep())
}

func TestSweepDoesNotBlockSessionUpdates(t *testing.T) {
	st, clock := newTestStore(time.Hour)
	sess := st.Create()
	for i := 0; i < 50; i++ {
		st.Create()
	}

	const rounds = 20000
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			st.Sweep()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			sess.SetInfo(models.LectureInfo{Location: "서울"})
			_, _, _ = sess.Copy(models.BlockInstagram)
			_ = sess.Snapshot()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _ = st.Get(sess.ID)
			if i%1000 == 0 {
				clock.Advance(time.Second)
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Sweep and session updates blocked each other")
	}

	_, err := st.Get(sess.ID)
	assert.NoError(t, err)
}

func TestStartDisabledForNonPositiveSettings(t *testing.T) {
	st := NewStore(time.Hour)
	assert.False(t, st.Start(0))
	assert.False(t, st.Start(-time.Second))

	noTTL := NewStore(0)
	assert.False(t, noTTL.Start(time.Minute))
}

func TestStartSweepsAndStopIsIdempotent(t *testing.T) {
	st, clock := newTestStore(time.Minute)
	sess := st.Create()
	clock.Advance(time.Hour)

	require.True(t, st.Start(time.Millisecond))
	assert.Eventually(t, func() bool {
		_, err := st.Get(sess.ID)
		return err != nil
	}, 2*time.Second, 5*time.Millisecond)

	assert.NotPanics(t, func() {
		st.Stop()
		st.Stop()
	})
}
