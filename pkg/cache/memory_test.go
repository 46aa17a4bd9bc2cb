package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := NewMemoryCache(10)

	c.Set("k1", "v1")
	value, ok := c.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "v1", value)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestUpdateExistingKeyKeepsSize(t *testing.T) {
	c := NewMemoryCache(10)

	c.Set("k1", "v1")
	c.Set("k1", "v2")

	assert.Equal(t, 1, c.Size())
	value, _ := c.Get("k1")
	assert.Equal(t, "v2", value)
}

func TestEvictsOldestWhenFull(t *testing.T) {
	c := NewMemoryCache(3)

	c.Set("k1", "v1")
	c.Set("k2", "v2")
	c.Set("k3", "v3")
	c.Set("k4", "v4")

	assert.Equal(t, 3, c.Size())
	_, ok := c.Get("k1")
	assert.False(t, ok, "oldest entry should have been evicted")
	_, ok = c.Get("k4")
	assert.True(t, ok)
}

func TestEvictionIsInsertionOrder(t *testing.T) {
	c := NewMemoryCache(2)

	c.Set("k1", "v1")
	c.Set("k2", "v2")
	// Reading k1 must not protect it: eviction follows insertion order.
	c.Get("k1")
	c.Set("k3", "v3")

	_, ok := c.Get("k1")
	assert.False(t, ok)
	_, ok = c.Get("k2")
	assert.True(t, ok)
}

func TestUnboundedWhenMaxSizeZero(t *testing.T) {
	c := NewMemoryCache(0)

	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("k%d", i), "v")
	}
	assert.Equal(t, 100, c.Size())
}

func TestDelete(t *testing.T) {
	c := NewMemoryCache(10)

	c.Set("k1", "v1")
	c.Delete("k1")
	_, ok := c.Get("k1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestClear(t *testing.T) {
	c := NewMemoryCache(10)

	c.Set("k1", "v1")
	c.Set("k2", "v2")
	c.Clear()

	assert.Equal(t, 0, c.Size())
}

func TestTranslationKeyTruncatesLongText(t *testing.T) {
	long := make([]rune, 300)
	for i := range long {
		long[i] = 'x'
	}
	key := TranslationKey("te", "en", string(long))
	// code:code:text with the text capped at 100 runes.
	assert.Len(t, []rune(key), len("te:en:")+100)
}

func TestTranslationKeySharedPrefixCollides(t *testing.T) {
	prefix := make([]rune, 100)
	for i := range prefix {
		prefix[i] = 'a'
	}
	k1 := TranslationKey("te", "en", string(prefix)+"tail one")
	k2 := TranslationKey("te", "en", string(prefix)+"tail two")
	assert.Equal(t, k1, k2)
}

func TestTranslationCacheRoundTrip(t *testing.T) {
	tc := NewTranslationCache(10)

	tc.Set("te", "en", "baagunnava", "how are you")
	value, ok := tc.Get("te", "en", "baagunnava")
	assert.True(t, ok)
	assert.Equal(t, "how are you", value)

	// Direction matters.
	_, ok = tc.Get("en", "te", "baagunnava")
	assert.False(t, ok)
}

func TestCorrectionCacheCaseInsensitive(t *testing.T) {
	cc := NewCorrectionCache(10)

	cc.Set("Bagunnava", "telugu", "baagunnava")
	value, ok := cc.Get("bagunnava", "TELUGU")
	assert.True(t, ok)
	assert.Equal(t, "baagunnava", value)
}
