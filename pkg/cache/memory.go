package cache

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"pivotchat-backend/pkg/logger"
)

// MemoryCache implements a bounded in-memory cache with insertion-order
// (FIFO) eviction. Translation and correction results are treated as
// deterministic functions of their inputs, so entries never expire; when the
// bound is exceeded the oldest-inserted entry is dropped. FIFO is an
// intentional approximation of LRU, kept for its simplicity.
type MemoryCache struct {
	mu      sync.RWMutex
	data    map[string]*cacheEntry
	order   []string
	maxSize int
}

// cacheEntry represents a single cache entry
type cacheEntry struct {
	value string
}

// NewMemoryCache creates a new bounded in-memory cache.
// maxSize <= 0 disables the bound.
func NewMemoryCache(maxSize int) *MemoryCache {
	return &MemoryCache{
		data:    make(map[string]*cacheEntry),
		maxSize: maxSize,
	}
}

// Set stores a value in the cache, evicting the oldest entry if full.
func (mc *MemoryCache) Set(key, value string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if existing, ok := mc.data[key]; ok {
		existing.value = value
		return
	}

	if mc.maxSize > 0 && len(mc.data) >= mc.maxSize {
		mc.evictOldest()
	}

	mc.data[key] = &cacheEntry{value: value}
	mc.order = append(mc.order, key)

	logger.Debug("Cache entry added",
		zap.String("key", key),
		zap.Int("size", len(mc.data)),
	)
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(key string) (string, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	entry, exists := mc.data[key]
	if !exists {
		return "", false
	}
	return entry.value, true
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(key string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, ok := mc.data[key]; !ok {
		return
	}
	delete(mc.data, key)
	for i, k := range mc.order {
		if k == key {
			mc.order = append(mc.order[:i], mc.order[i+1:]...)
			break
		}
	}
}

// Clear removes all entries from the cache
func (mc *MemoryCache) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.data = make(map[string]*cacheEntry)
	mc.order = nil
	logger.Debug("Cache cleared")
}

// Size returns the current number of entries in the cache
func (mc *MemoryCache) Size() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.data)
}

// evictOldest removes the oldest-inserted entry. Caller must hold the lock.
func (mc *MemoryCache) evictOldest() {
	for len(mc.order) > 0 {
		oldest := mc.order[0]
		mc.order = mc.order[1:]
		if _, ok := mc.data[oldest]; ok {
			delete(mc.data, oldest)
			logger.Debug("Cache entry evicted", zap.String("key", oldest))
			return
		}
	}
}

// keyPrefixLen bounds the text portion of translation cache keys so that
// long messages with a common head share an entry.
const keyPrefixLen = 100

// TranslationKey builds a cache key for a translation hop.
// The text is truncated to its first 100 runes.
func TranslationKey(sourceCode, targetCode, text string) string {
	runes := []rune(text)
	if len(runes) > keyPrefixLen {
		text = string(runes[:keyPrefixLen])
	}
	return fmt.Sprintf("%s:%s:%s", sourceCode, targetCode, text)
}

// CorrectionKey builds a cache key for a phonetic correction.
func CorrectionKey(word, language string) string {
	return fmt.Sprintf("%s:%s", strings.ToLower(word), strings.ToLower(language))
}

// TranslationCache wraps MemoryCache for translation results.
type TranslationCache struct {
	cache *MemoryCache
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache(maxSize int) *TranslationCache {
	return &TranslationCache{cache: NewMemoryCache(maxSize)}
}

// Get retrieves a cached translation for a (source, target, text) triple.
func (tc *TranslationCache) Get(sourceCode, targetCode, text string) (string, bool) {
	return tc.cache.Get(TranslationKey(sourceCode, targetCode, text))
}

// Set stores a translation result.
func (tc *TranslationCache) Set(sourceCode, targetCode, text, translated string) {
	tc.cache.Set(TranslationKey(sourceCode, targetCode, text), translated)
}

// Size returns the number of cached translations.
func (tc *TranslationCache) Size() int {
	return tc.cache.Size()
}

// Clear drops all cached translations.
func (tc *TranslationCache) Clear() {
	tc.cache.Clear()
}

// CorrectionCache wraps MemoryCache for phonetic corrections.
type CorrectionCache struct {
	cache *MemoryCache
}

// NewCorrectionCache creates a new correction cache
func NewCorrectionCache(maxSize int) *CorrectionCache {
	return &CorrectionCache{cache: NewMemoryCache(maxSize)}
}

// Get retrieves a cached correction for a word in a language context.
func (cc *CorrectionCache) Get(word, language string) (string, bool) {
	return cc.cache.Get(CorrectionKey(word, language))
}

// Set stores a correction.
func (cc *CorrectionCache) Set(word, language, corrected string) {
	cc.cache.Set(CorrectionKey(word, language), corrected)
}

// Size returns the number of cached corrections.
func (cc *CorrectionCache) Size() int {
	return cc.cache.Size()
}
