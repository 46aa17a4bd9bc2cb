package registry

import (
	"strings"

	"go.uber.org/zap"

	"pivotchat-backend/internal/domain"
	"pivotchat-backend/pkg/logger"
)

// Registry is the single source of truth for supported languages. Built once
// from a static record table and read-only thereafter, so lookups need no
// locking. Every other component consults it; it owns no behavior beyond
// lookup.
type Registry struct {
	byCode map[string]*domain.Language
	byName map[string]*domain.Language
	all    []domain.Language
}

// NewRegistry builds a registry from seed records. Malformed records (empty
// code or name) are skipped and an empty or nil source yields an empty
// registry, not an error: downstream components treat "not found" as a
// recoverable condition.
func NewRegistry(records []domain.LanguageRecord) *Registry {
	r := &Registry{
		byCode: make(map[string]*domain.Language, len(records)),
		byName: make(map[string]*domain.Language, len(records)),
		// Preallocated so the map pointers into the slice stay valid.
		all: make([]domain.Language, 0, len(records)),
	}

	skipped := 0
	for _, rec := range records {
		code := strings.ToLower(strings.TrimSpace(rec.Code))
		name := strings.ToLower(strings.TrimSpace(rec.Name))
		if code == "" || name == "" {
			skipped++
			continue
		}
		if _, exists := r.byCode[code]; exists {
			// Exactly one canonical entry per code; first one wins.
			skipped++
			continue
		}

		lang := domain.Language{
			Code:       code,
			Name:       rec.Name,
			NativeName: rec.NativeName,
			Script:     rec.Script,
			ScriptName: rec.ScriptName,
			RTL:        rec.RTL,
		}
		r.all = append(r.all, lang)
		stored := &r.all[len(r.all)-1]

		r.byCode[code] = stored
		if _, exists := r.byName[name]; !exists {
			r.byName[name] = stored
		}
		// Native names are indexed into the same by-name map so either
		// representation resolves.
		if native := strings.ToLower(strings.TrimSpace(rec.NativeName)); native != "" {
			if _, exists := r.byName[native]; !exists {
				r.byName[native] = stored
			}
		}
	}

	logger.Info("Language registry built",
		zap.Int("languages", len(r.all)),
		zap.Int("skipped", skipped),
	)
	return r
}

// NewDefaultRegistry builds a registry from the built-in language table.
func NewDefaultRegistry() *Registry {
	return NewRegistry(DefaultLanguages)
}

// Get resolves a language by code, name, or native name (case-insensitive).
// Resolution priority: exact code, then exact name, then first substring
// match over names. Returns nil when nothing matches.
func (r *Registry) Get(codeOrName string) *domain.Language {
	key := strings.ToLower(strings.TrimSpace(codeOrName))
	if key == "" {
		return nil
	}

	if lang, ok := r.byCode[key]; ok {
		return lang
	}
	if lang, ok := r.byName[key]; ok {
		return lang
	}

	// Substring fallback, first match in table order. Keeps lookups like
	// "telugu (india)" working without per-alias bookkeeping.
	for i := range r.all {
		lang := &r.all[i]
		if strings.Contains(strings.ToLower(lang.Name), key) ||
			strings.Contains(strings.ToLower(lang.NativeName), key) {
			return lang
		}
	}
	return nil
}

// English returns the pivot language entry, or nil on an empty registry.
func (r *Registry) English() *domain.Language {
	return r.byCode["en"]
}

// All returns every registered language in table order.
func (r *Registry) All() []domain.Language {
	out := make([]domain.Language, len(r.all))
	copy(out, r.all)
	return out
}

// Size returns the number of registered languages.
func (r *Registry) Size() int {
	return len(r.all)
}
