package engine

import (
	"context"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"pivotchat-backend/internal/domain"
	"pivotchat-backend/internal/registry"
	redisrepo "pivotchat-backend/internal/repository/redis"
	"pivotchat-backend/internal/translit"
	"pivotchat-backend/pkg/cache"
	"pivotchat-backend/pkg/logger"
	"pivotchat-backend/pkg/metrics"
	"pivotchat-backend/pkg/resilience"
)

// Confidence levels per route. Passthrough is exact; each backend hop
// compounds uncertainty.
const (
	confidencePassthrough = 1.0
	confidenceSingleHop   = 0.85
	confidencePivot       = 0.7
)

const translationCacheName = "translation"

// Engine routes translations between registered languages through the
// English pivot. Every language pair is reachable in at most two backend
// hops; each hop is cached independently so pivot halves are shared across
// pairs. Safe for concurrent use.
type Engine struct {
	registry   *registry.Registry
	translit   *translit.Transliterator
	backend    Backend
	resilience *resilience.BackendResilience
	cache      *cache.TranslationCache
	remote     *redisrepo.TranslationCacheRepository
	metrics    *metrics.Metrics
	mode       domain.BackendMode
}

// NewEngine creates a translation engine.
// remote and m may be nil; mode defaults to ModeTranslate.
func NewEngine(
	reg *registry.Registry,
	backend Backend,
	translationCache *cache.TranslationCache,
	remote *redisrepo.TranslationCacheRepository,
	m *metrics.Metrics,
	mode domain.BackendMode,
) *Engine {
	if mode == "" {
		mode = domain.ModeTranslate
	}
	return &Engine{
		registry:   reg,
		translit:   translit.NewTransliterator(),
		backend:    backend,
		resilience: resilience.NewBackendResilience(),
		cache:      translationCache,
		remote:     remote,
		metrics:    m,
		mode:       mode,
	}
}

// Translator binds the engine to one resolved language pair. The route is
// fixed at construction.
type Translator struct {
	engine *Engine
	Source *domain.Language
	Target *domain.Language
	route  domain.TranslationRoute
}

// Route returns the translation route this pair resolves to.
func (t *Translator) Route() domain.TranslationRoute {
	return t.route
}

// GetTranslator resolves a language pair into a Translator. Returns nil if
// either identifier is not in the registry.
func (e *Engine) GetTranslator(source, target string) *Translator {
	src := e.registry.Get(source)
	tgt := e.registry.Get(target)
	if src == nil || tgt == nil {
		logger.Debug("Translator unresolved",
			zap.String("source", source),
			zap.String("target", target),
		)
		return nil
	}
	return &Translator{
		engine: e,
		Source: src,
		Target: tgt,
		route:  resolveRoute(src, tgt),
	}
}

// resolveRoute picks the route for a pair. First match wins.
func resolveRoute(src, tgt *domain.Language) domain.TranslationRoute {
	switch {
	case src.Code == tgt.Code:
		return domain.RoutePassthrough
	case src.IsEnglish():
		return domain.RouteFromEnglish
	case tgt.IsEnglish():
		return domain.RouteToEnglish
	case src.IsLatinScript() && tgt.IsLatinScript():
		return domain.RouteDirect
	default:
		return domain.RoutePivot
	}
}

// TranslateMeaning translates text along the pair's route. It never returns
// an error: backend failures degrade to a passthrough result with the Error
// field set, so callers always have something renderable.
func (t *Translator) TranslateMeaning(ctx context.Context, text string) domain.TranslationResult {
	e := t.engine
	start := time.Now()

	result := domain.TranslationResult{
		Text:           text,
		OriginalText:   text,
		SourceLanguage: t.Source.Code,
		TargetLanguage: t.Target.Code,
		Route:          t.route,
		Confidence:     confidencePassthrough,
	}

	if strings.TrimSpace(text) == "" {
		result.Text = ""
		result.OriginalText = ""
		return result
	}

	switch t.route {
	case domain.RoutePassthrough:
		// Same language both sides. The only work left is rendering
		// romanized input into the pair's native script.
		result.Text = e.renderScript(text, t.Target)
		if t.Target.IsEnglish() {
			result.EnglishPivot = text
		}

	case domain.RouteFromEnglish:
		result.EnglishPivot = text
		translated, err := e.translateHop(ctx, text, t.Source, t.Target)
		if err != nil {
			return e.degrade(result, err, start)
		}
		result.Text = e.renderScript(translated, t.Target)
		result.IsTranslated = result.Text != text
		result.Confidence = confidenceSingleHop

	case domain.RouteToEnglish:
		translated, err := e.translateHop(ctx, text, t.Source, t.Target)
		if err != nil {
			return e.degrade(result, err, start)
		}
		result.Text = translated
		result.EnglishPivot = translated
		result.IsTranslated = translated != text
		result.Confidence = confidenceSingleHop

	case domain.RouteDirect:
		translated, err := e.translateHop(ctx, text, t.Source, t.Target)
		if err != nil {
			return e.degrade(result, err, start)
		}
		result.Text = translated
		result.IsTranslated = translated != text
		result.Confidence = confidenceSingleHop

	case domain.RoutePivot:
		english := e.registry.English()
		pivot, err := e.translateHop(ctx, text, t.Source, english)
		if err != nil {
			return e.degrade(result, err, start)
		}
		if e.metrics != nil {
			e.metrics.RecordPivotHop("extraction")
		}

		rendered, err := e.translateHop(ctx, pivot, english, t.Target)
		if err != nil {
			// Half the route succeeded. Keep the pivot so the caller
			// can still show an English gloss.
			result.EnglishPivot = pivot
			return e.degrade(result, err, start)
		}
		if e.metrics != nil {
			e.metrics.RecordPivotHop("rendering")
		}

		result.Text = e.renderScript(rendered, t.Target)
		result.EnglishPivot = pivot
		result.IsTranslated = result.Text != text
		result.Confidence = confidencePivot
	}

	if e.metrics != nil {
		e.metrics.RecordTranslation(string(t.route), "success", time.Since(start))
	}
	return result
}

// degrade converts a backend failure into a renderable passthrough result.
func (e *Engine) degrade(result domain.TranslationResult, err error, start time.Time) domain.TranslationResult {
	result.Text = result.OriginalText
	result.IsTranslated = false
	result.Confidence = 0
	result.Error = err.Error()

	logger.Warn("Translation degraded to passthrough",
		zap.String("source", result.SourceLanguage),
		zap.String("target", result.TargetLanguage),
		zap.String("route", string(result.Route)),
		zap.Error(err),
	)
	if e.metrics != nil {
		e.metrics.RecordTranslation(string(result.Route), "degraded", time.Since(start))
	}
	return result
}

// translateHop performs one cached backend hop. Cache order is in-process
// first, then Redis mirror, then the backend behind the circuit breaker.
func (e *Engine) translateHop(ctx context.Context, text string, src, tgt *domain.Language) (string, error) {
	if cached, ok := e.cache.Get(src.Code, tgt.Code, text); ok {
		if e.metrics != nil {
			e.metrics.RecordCacheHit(translationCacheName)
		}
		return cached, nil
	}

	key := cache.TranslationKey(src.Code, tgt.Code, text)
	if cached, ok := e.remote.Get(ctx, key); ok {
		if e.metrics != nil {
			e.metrics.RecordCacheHit(translationCacheName)
		}
		e.cache.Set(src.Code, tgt.Code, text, cached)
		return cached, nil
	}

	if e.metrics != nil {
		e.metrics.RecordCacheMiss(translationCacheName)
	}

	var translated string
	operation := "translate:" + src.Code + "->" + tgt.Code
	err := e.resilience.Execute(ctx, operation, func(ctx context.Context) error {
		resp, err := e.backend.Translate(ctx, domain.TranslateRequest{
			Text:           text,
			SourceLanguage: src.Code,
			TargetLanguage: tgt.Code,
		})
		if err != nil {
			return err
		}
		translated = resp.TranslatedText
		return nil
	})
	if err != nil {
		return "", err
	}

	e.cache.Set(src.Code, tgt.Code, text, translated)
	e.remote.Set(ctx, key, translated)
	if e.metrics != nil {
		e.metrics.SetCacheSize(translationCacheName, e.cache.Size())
	}
	return translated, nil
}

// TranslateBidirectional produces both parties' views of a message in one
// call. In ModeBidirectional the backend computes the views in a single
// round trip; otherwise, or when that round trip fails, the views are
// composed locally from cached translate hops. Like TranslateMeaning this
// never fails hard: the worst case echoes the original text in both views.
func (e *Engine) TranslateBidirectional(ctx context.Context, text string, sender, receiver *domain.Language) *domain.BidirectionalResponse {
	if strings.TrimSpace(text) == "" {
		return &domain.BidirectionalResponse{}
	}

	if e.mode == domain.ModeBidirectional && e.backend != nil {
		var resp *domain.BidirectionalResponse
		err := e.resilience.Execute(ctx, "bidirectional", func(ctx context.Context) error {
			r, err := e.backend.Bidirectional(ctx, domain.BidirectionalRequest{
				Text:             text,
				SenderLanguage:   sender.Code,
				ReceiverLanguage: receiver.Code,
			})
			if err != nil {
				return err
			}
			resp = r
			return nil
		})
		if err == nil {
			return resp
		}
		logger.Warn("Bidirectional backend call failed, composing views locally",
			zap.Error(err),
		)
	}

	return e.composeViews(ctx, text, sender, receiver)
}

// composeViews builds a BidirectionalResponse from translate hops.
func (e *Engine) composeViews(ctx context.Context, text string, sender, receiver *domain.Language) *domain.BidirectionalResponse {
	senderView := e.renderScript(text, sender)

	resp := &domain.BidirectionalResponse{
		SenderView:        senderView,
		ReceiverView:      senderView,
		WasTransliterated: senderView != text,
	}

	if sender.Code == receiver.Code {
		// Shared language: both parties read the same rendering and no
		// English core is computed.
		if sender.IsEnglish() {
			resp.EnglishCore = text
		}
		return resp
	}

	translator := &Translator{
		engine: e,
		Source: sender,
		Target: receiver,
		route:  resolveRoute(sender, receiver),
	}
	result := translator.TranslateMeaning(ctx, text)
	if result.Error != "" {
		// Degraded: echo the untouched original everywhere. Delivery must
		// not depend on translation or transliteration being available.
		return &domain.BidirectionalResponse{
			SenderView:   text,
			ReceiverView: text,
			EnglishCore:  text,
			Error:        result.Error,
		}
	}

	resp.ReceiverView = result.Text
	resp.WasTranslated = result.IsTranslated
	resp.EnglishCore = e.englishCore(ctx, text, result, sender)
	return resp
}

// englishCore derives the English gloss for a completed pair translation.
// Routes touching English carry it already; a direct Latin-to-Latin route
// needs one extra best-effort hop.
func (e *Engine) englishCore(ctx context.Context, text string, result domain.TranslationResult, sender *domain.Language) string {
	if result.EnglishPivot != "" {
		return result.EnglishPivot
	}
	if sender.IsEnglish() {
		return text
	}
	if result.Route != domain.RouteDirect {
		return ""
	}

	gloss, err := e.translateHop(ctx, text, sender, e.registry.English())
	if err != nil {
		logger.Debug("English gloss unavailable",
			zap.String("source", sender.Code),
			zap.Error(err),
		)
		return ""
	}
	return gloss
}

// renderScript renders romanized text into the language's native script when
// a transliteration scheme exists. Text already carrying native characters,
// or languages written in Latin script, pass through unchanged.
func (e *Engine) renderScript(text string, lang *domain.Language) string {
	if lang.IsLatinScript() || !e.translit.Supports(lang.Name) {
		return text
	}
	if !isRomanized(text) {
		return text
	}
	return e.translit.ToNativeScript(text, lang.Name)
}

// isRomanized reports whether every letter in the text is ASCII Latin.
func isRomanized(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			if r > unicode.MaxASCII {
				return false
			}
			hasLetter = true
		}
	}
	return hasLetter
}
