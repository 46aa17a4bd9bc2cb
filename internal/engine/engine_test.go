package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pivotchat-backend/internal/domain"
	"pivotchat-backend/internal/registry"
	"pivotchat-backend/pkg/cache"
)

// Mocks
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Translate(ctx context.Context, req domain.TranslateRequest) (*domain.TranslateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TranslateResponse), args.Error(1)
}

func (m *MockBackend) Bidirectional(ctx context.Context, req domain.BidirectionalRequest) (*domain.BidirectionalResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BidirectionalResponse), args.Error(1)
}

func newTestEngine(backend Backend) *Engine {
	return NewEngine(
		registry.NewDefaultRegistry(),
		backend,
		cache.NewTranslationCache(100),
		nil,
		nil,
		domain.ModeTranslate,
	)
}

func TestResolveRoutes(t *testing.T) {
	e := newTestEngine(new(MockBackend))

	cases := []struct {
		source, target string
		route          domain.TranslationRoute
	}{
		{"telugu", "telugu", domain.RoutePassthrough},
		{"english", "telugu", domain.RouteFromEnglish},
		{"telugu", "english", domain.RouteToEnglish},
		{"spanish", "french", domain.RouteDirect},
		{"telugu", "hindi", domain.RoutePivot},
		{"spanish", "telugu", domain.RoutePivot},
	}
	for _, tc := range cases {
		translator := e.GetTranslator(tc.source, tc.target)
		assert.NotNil(t, translator, "%s->%s", tc.source, tc.target)
		assert.Equal(t, tc.route, translator.Route(), "%s->%s", tc.source, tc.target)
	}
}

func TestGetTranslatorUnknownLanguage(t *testing.T) {
	e := newTestEngine(new(MockBackend))

	assert.Nil(t, e.GetTranslator("klingon", "english"))
	assert.Nil(t, e.GetTranslator("english", "klingon"))
	assert.Nil(t, e.GetTranslator("", ""))
}

func TestTranslateMeaningEmptyInput(t *testing.T) {
	backend := new(MockBackend)
	e := newTestEngine(backend)

	translator := e.GetTranslator("telugu", "english")
	result := translator.TranslateMeaning(context.Background(), "   ")

	assert.Equal(t, "", result.Text)
	assert.False(t, result.IsTranslated)
	assert.Empty(t, result.Error)
	backend.AssertNotCalled(t, "Translate")
}

func TestTranslateMeaningPassthroughTransliterates(t *testing.T) {
	backend := new(MockBackend)
	e := newTestEngine(backend)

	translator := e.GetTranslator("telugu", "telugu")
	result := translator.TranslateMeaning(context.Background(), "baagunnava")

	assert.Equal(t, "బాగున్నవ", result.Text)
	assert.False(t, result.IsTranslated)
	assert.Equal(t, 1.0, result.Confidence)
	backend.AssertNotCalled(t, "Translate")
}

func TestTranslateMeaningToEnglish(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "baagunnava",
		SourceLanguage: "te",
		TargetLanguage: "en",
	}).Return(&domain.TranslateResponse{TranslatedText: "how are you"}, nil)

	e := newTestEngine(backend)
	translator := e.GetTranslator("telugu", "english")
	result := translator.TranslateMeaning(context.Background(), "baagunnava")

	assert.Equal(t, "how are you", result.Text)
	assert.Equal(t, "how are you", result.EnglishPivot)
	assert.True(t, result.IsTranslated)
	assert.Equal(t, domain.RouteToEnglish, result.Route)
	assert.InDelta(t, 0.85, result.Confidence, 0.001)
}

func TestTranslateMeaningSecondCallServedFromCache(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, mock.Anything).
		Return(&domain.TranslateResponse{TranslatedText: "how are you"}, nil).
		Once()

	e := newTestEngine(backend)
	translator := e.GetTranslator("telugu", "english")

	first := translator.TranslateMeaning(context.Background(), "baagunnava")
	second := translator.TranslateMeaning(context.Background(), "baagunnava")

	assert.Equal(t, first.Text, second.Text)
	backend.AssertNumberOfCalls(t, "Translate", 1)
}

func TestTranslateMeaningPivot(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "baagunnava",
		SourceLanguage: "te",
		TargetLanguage: "en",
	}).Return(&domain.TranslateResponse{TranslatedText: "how are you"}, nil)
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "how are you",
		SourceLanguage: "en",
		TargetLanguage: "hi",
	}).Return(&domain.TranslateResponse{TranslatedText: "kaise ho"}, nil)

	e := newTestEngine(backend)
	translator := e.GetTranslator("telugu", "hindi")
	result := translator.TranslateMeaning(context.Background(), "baagunnava")

	assert.Equal(t, domain.RoutePivot, result.Route)
	assert.Equal(t, "how are you", result.EnglishPivot)
	// Hindi output rendered into Devanagari.
	assert.Equal(t, "कैसे हो", result.Text)
	assert.True(t, result.IsTranslated)
	assert.InDelta(t, 0.7, result.Confidence, 0.001)
	backend.AssertNumberOfCalls(t, "Translate", 2)
}

func TestPivotHopsSharedAcrossPairs(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "baagunnava",
		SourceLanguage: "te",
		TargetLanguage: "en",
	}).Return(&domain.TranslateResponse{TranslatedText: "how are you"}, nil).Once()
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "how are you",
		SourceLanguage: "en",
		TargetLanguage: "hi",
	}).Return(&domain.TranslateResponse{TranslatedText: "kaise ho"}, nil).Once()
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "how are you",
		SourceLanguage: "en",
		TargetLanguage: "ta",
	}).Return(&domain.TranslateResponse{TranslatedText: "eppadi irukka"}, nil).Once()

	e := newTestEngine(backend)

	e.GetTranslator("telugu", "hindi").TranslateMeaning(context.Background(), "baagunnava")
	e.GetTranslator("telugu", "tamil").TranslateMeaning(context.Background(), "baagunnava")

	// The extraction hop te->en is cached; only the rendering hop differs.
	backend.AssertNumberOfCalls(t, "Translate", 3)
}

func TestPivotSymmetricEnglishCore(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "baagunnava",
		SourceLanguage: "te",
		TargetLanguage: "en",
	}).Return(&domain.TranslateResponse{TranslatedText: "how are you"}, nil)
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "how are you",
		SourceLanguage: "en",
		TargetLanguage: "hi",
	}).Return(&domain.TranslateResponse{TranslatedText: "kaise ho"}, nil)
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "kaise ho",
		SourceLanguage: "hi",
		TargetLanguage: "en",
	}).Return(&domain.TranslateResponse{TranslatedText: "how are you"}, nil)
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "how are you",
		SourceLanguage: "en",
		TargetLanguage: "te",
	}).Return(&domain.TranslateResponse{TranslatedText: "baagunnava"}, nil)

	e := newTestEngine(backend)

	// The same meaning pivoted in either direction yields the same English
	// core.
	forward := e.GetTranslator("telugu", "hindi").TranslateMeaning(context.Background(), "baagunnava")
	reverse := e.GetTranslator("hindi", "telugu").TranslateMeaning(context.Background(), "kaise ho")

	assert.Equal(t, forward.EnglishPivot, reverse.EnglishPivot)
	assert.Equal(t, "how are you", forward.EnglishPivot)
}

func TestTranslateMeaningDegradesOnBackendFailure(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	e := newTestEngine(backend)
	translator := e.GetTranslator("telugu", "english")
	result := translator.TranslateMeaning(context.Background(), "baagunnava")

	assert.Equal(t, "baagunnava", result.Text)
	assert.False(t, result.IsTranslated)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestTranslateBidirectionalSharedLanguage(t *testing.T) {
	backend := new(MockBackend)
	e := newTestEngine(backend)
	reg := e.registry

	resp := e.TranslateBidirectional(context.Background(), "baagunnava",
		reg.Get("telugu"), reg.Get("telugu"))

	assert.Equal(t, "బాగున్నవ", resp.SenderView)
	assert.Equal(t, "బాగున్నవ", resp.ReceiverView)
	assert.True(t, resp.WasTransliterated)
	assert.False(t, resp.WasTranslated)
	assert.Empty(t, resp.EnglishCore)
	backend.AssertNotCalled(t, "Translate")
	backend.AssertNotCalled(t, "Bidirectional")
}

func TestTranslateBidirectionalEnglishPair(t *testing.T) {
	backend := new(MockBackend)
	e := newTestEngine(backend)
	reg := e.registry

	resp := e.TranslateBidirectional(context.Background(), "hello there",
		reg.Get("english"), reg.Get("english"))

	assert.Equal(t, "hello there", resp.SenderView)
	assert.Equal(t, "hello there", resp.EnglishCore)
	assert.False(t, resp.WasTransliterated)
}

func TestTranslateBidirectionalCrossLanguage(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "baagunnava",
		SourceLanguage: "te",
		TargetLanguage: "en",
	}).Return(&domain.TranslateResponse{TranslatedText: "how are you"}, nil)

	e := newTestEngine(backend)
	reg := e.registry

	resp := e.TranslateBidirectional(context.Background(), "baagunnava",
		reg.Get("telugu"), reg.Get("english"))

	assert.Equal(t, "బాగున్నవ", resp.SenderView)
	assert.Equal(t, "how are you", resp.ReceiverView)
	assert.Equal(t, "how are you", resp.EnglishCore)
	assert.True(t, resp.WasTransliterated)
	assert.True(t, resp.WasTranslated)
}

func TestTranslateBidirectionalDegradesToEcho(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, mock.Anything).
		Return(nil, errors.New("backend down"))

	e := newTestEngine(backend)
	reg := e.registry

	resp := e.TranslateBidirectional(context.Background(), "baagunnava",
		reg.Get("telugu"), reg.Get("hindi"))

	// Both parties get the untouched original; no partial rendering leaks
	// through when translation is down.
	assert.Equal(t, "baagunnava", resp.SenderView)
	assert.Equal(t, "baagunnava", resp.ReceiverView)
	assert.Equal(t, "baagunnava", resp.EnglishCore)
	assert.False(t, resp.WasTranslated)
	assert.False(t, resp.WasTransliterated)
	assert.NotEmpty(t, resp.Error)
}

func TestTranslateBidirectionalEmptyInput(t *testing.T) {
	backend := new(MockBackend)
	e := newTestEngine(backend)
	reg := e.registry

	resp := e.TranslateBidirectional(context.Background(), "",
		reg.Get("telugu"), reg.Get("english"))

	assert.Equal(t, "", resp.SenderView)
	assert.Equal(t, "", resp.ReceiverView)
	backend.AssertNotCalled(t, "Translate")
}
