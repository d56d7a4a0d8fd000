package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Foo int `json:"foo"`
}

// testClock is a settable clock for driving expiry.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestClock() *testClock { return &testClock{t: time.Unix(1_700_000_000, 0)} }

func newTestCache(clk *testClock, opts ...Option) *Cache {
	opts = append([]Option{WithNow(clk.now)}, opts...)
	return New(NewMemoryStore(0), opts...)
}

func TestSaveThenLoad(t *testing.T) {
	clk := newTestClock()
	c := newTestCache(clk)

	c.Save("rep1", report{Foo: 1})

	var got report
	require.True(t, c.Load("rep1", &got))
	assert.Equal(t, report{Foo: 1}, got)
}

func TestLoadUnsetKey(t *testing.T) {
	c := newTestCache(newTestClock())

	var got report
	assert.False(t, c.Load("never-saved", &got))
}

func TestLoadExpiredEntryIsPurged(t *testing.T) {
	clk := newTestClock()
	c := newTestCache(clk)

	c.Save("rep1", report{Foo: 1})
	clk.advance(time.Hour + time.Second)

	var got report
	assert.False(t, c.Load("rep1", &got), "entry past the freshness window")

	// The expired entry was deleted, not just hidden: rolling the clock
	// back does not resurrect it.
	clk.advance(-2 * time.Second)
	assert.False(t, c.Load("rep1", &got))
}

func TestLoadWithinWindow(t *testing.T) {
	clk := newTestClock()
	c := newTestCache(clk)

	c.Save("rep1", report{Foo: 7})
	clk.advance(59 * time.Minute)

	var got report
	require.True(t, c.Load("rep1", &got))
	assert.Equal(t, 7, got.Foo)
}

func TestClear(t *testing.T) {
	c := newTestCache(newTestClock())

	c.Save("rep1", report{Foo: 1})
	c.Clear("rep1")

	var got report
	assert.False(t, c.Load("rep1", &got))
}

func TestSaveOverwrites(t *testing.T) {
	c := newTestCache(newTestClock())

	c.Save("rep1", report{Foo: 1})
	c.Save("rep1", report{Foo: 2})

	var got report
	require.True(t, c.Load("rep1", &got))
	assert.Equal(t, 2, got.Foo)
}

func TestCorruptEntryIsMiss(t *testing.T) {
	store := NewMemoryStore(0)
	c := New(store)

	require.NoError(t, store.Set("rep1", []byte("not json")))

	var got report
	assert.False(t, c.Load("rep1", &got))
	assert.Equal(t, 0, store.Len(), "corrupt entry removed defensively")
}

func TestUnencodableValueIsSwallowed(t *testing.T) {
	store := NewMemoryStore(0)
	c := New(store)

	// Channels cannot be JSON-encoded; the failure must not propagate.
	c.Save("rep1", make(chan int))
	assert.Equal(t, 0, store.Len())
}

func TestStoreFailureIsSwallowed(t *testing.T) {
	c := New(failingStore{})
	c.Save("rep1", report{Foo: 1}) // must not panic or return an error
}

type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool) { return nil, false }
func (failingStore) Set(string, []byte) error  { return errors.New("quota exceeded") }
func (failingStore) Delete(string)             {}
func (failingStore) Keys() []string            { return nil }
func (failingStore) Len() int                  { return 0 }

func TestCustomTTL(t *testing.T) {
	clk := newTestClock()
	c := newTestCache(clk, WithTTL(time.Minute))

	c.Save("rep1", report{Foo: 1})
	clk.advance(2 * time.Minute)

	var got report
	assert.False(t, c.Load("rep1", &got))
}

func TestSweep(t *testing.T) {
	clk := newTestClock()
	store := NewMemoryStore(0)
	c := New(store, WithNow(clk.now))

	c.Save("old", report{Foo: 1})
	clk.advance(2 * time.Hour)
	c.Save("fresh", report{Foo: 2})
	require.NoError(t, store.Set("corrupt", []byte("{")))

	assert.Equal(t, 2, c.Sweep())
	assert.Equal(t, 1, store.Len())

	var got report
	assert.True(t, c.Load("fresh", &got))
}

func TestMemoryStoreLRUBound(t *testing.T) {
	store := NewMemoryStore(2)

	require.NoError(t, store.Set("a", []byte("1")))
	require.NoError(t, store.Set("b", []byte("2")))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := store.Get("a")
	require.True(t, ok)

	require.NoError(t, store.Set("c", []byte("3")))
	assert.Equal(t, 2, store.Len())

	_, ok = store.Get("b")
	assert.False(t, ok, "least recently used entry evicted")
	_, ok = store.Get("a")
	assert.True(t, ok)
}

func TestSQLiteStore(t *testing.T) {
	store, err := OpenSQLite(t.TempDir() + "/cache.db")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("a", []byte("1")))
	require.NoError(t, store.Set("a", []byte("2")))
	require.NoError(t, store.Set("b", []byte("3")))

	val, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("2"), val)

	assert.Equal(t, []string{"a", "b"}, store.Keys())
	assert.Equal(t, 2, store.Len())

	store.Delete("a")
	_, ok = store.Get("a")
	assert.False(t, ok)
}
