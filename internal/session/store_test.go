package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimeProvider управляемые часы для тестов
type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

func (f *fakeTimeProvider) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *fakeTimeProvider) {
	t.Helper()
	clock := &fakeTimeProvider{now: time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)}
	return NewStore(ttl, clock, nil), clock
}

func TestStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)

	sess, err := store.Create("uuid-1", nil)
	require.NoError(t, err)
	assert.Len(t, sess.ID, 64)
	assert.Equal(t, "uuid-1", sess.MoveUUID)
	assert.NotNil(t, sess.Flow)
	assert.False(t, sess.IsAuthorized())

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestStore_Get_Unknown(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)

	_, err := store.Get("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Get_ExpiredIsRemoved(t *testing.T) {
	store, clock := newTestStore(t, 30*time.Minute)

	sess, err := store.Create("uuid-1", nil)
	require.NoError(t, err)

	clock.Advance(31 * time.Minute)

	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestStore_Get_ProlongsSession(t *testing.T) {
	store, clock := newTestStore(t, 30*time.Minute)

	sess, err := store.Create("uuid-1", nil)
	require.NoError(t, err)

	// Каждое обращение внутри TTL сдвигает дедлайн
	clock.Advance(20 * time.Minute)
	_, err = store.Get(sess.ID)
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	_, err = store.Get(sess.ID)
	require.NoError(t, err)
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)

	sess, err := store.Create("uuid-1", nil)
	require.NoError(t, err)

	store.Delete(sess.ID)

	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_UniqueIDs(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)

	first, err := store.Create("uuid-1", nil)
	require.NoError(t, err)
	second, err := store.Create("uuid-1", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, store.Len())
}
