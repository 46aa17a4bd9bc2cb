package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pivotchat-backend/internal/corrector"
	"pivotchat-backend/internal/domain"
	"pivotchat-backend/internal/engine"
	"pivotchat-backend/internal/normalizer"
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

func newTestPipeline(backend engine.Backend) *Pipeline {
	reg := registry.NewDefaultRegistry()
	eng := engine.NewEngine(reg, backend, cache.NewTranslationCache(100), nil, nil, domain.ModeTranslate)
	return NewPipeline(
		normalizer.NewNormalizer(reg),
		corrector.NewCorrector(100, nil),
		eng,
		reg,
	)
}

func TestProcessEmptyInput(t *testing.T) {
	backend := new(MockBackend)
	p := newTestPipeline(backend)

	views := p.Process(context.Background(), "   ", "telugu", "english")

	assert.Equal(t, "", views.Sender.Main)
	assert.Equal(t, "", views.Sender.English)
	assert.Equal(t, "", views.Receiver.Main)
	assert.Equal(t, "", views.Receiver.English)
	assert.False(t, views.Metadata.WasTransliterated)
	assert.False(t, views.Metadata.WasTranslated)
	assert.NotEqual(t, uuid.Nil, views.Metadata.MessageID)
	backend.AssertNotCalled(t, "Translate")
}

func TestProcessSameLanguage(t *testing.T) {
	backend := new(MockBackend)
	p := newTestPipeline(backend)

	views := p.Process(context.Background(), "baagunnava", "telugu", "telugu")

	assert.Equal(t, "బాగున్నవ", views.Sender.Main)
	assert.Equal(t, views.Sender.Main, views.Receiver.Main)
	assert.True(t, views.Metadata.WasTransliterated)
	assert.False(t, views.Metadata.WasTranslated)
	backend.AssertNotCalled(t, "Translate")
}

func TestProcessCorrectsBeforeTranslating(t *testing.T) {
	backend := new(MockBackend)
	// The spelling fix must happen before the backend sees the text.
	backend.On("Translate", mock.Anything, domain.TranslateRequest{
		Text:           "Baagunnava bro?",
		SourceLanguage: "te",
		TargetLanguage: "en",
	}).Return(&domain.TranslateResponse{TranslatedText: "How are you bro?"}, nil)

	p := newTestPipeline(backend)
	views := p.Process(context.Background(), "Bagunnava bro?", "telugu", "english")

	assert.Equal(t, "How are you bro?", views.Receiver.Main)
	assert.True(t, views.Metadata.WasTranslated)
	assert.Equal(t, "Bagunnava bro?", views.Metadata.OriginalText)
	backend.AssertExpectations(t)
}

func TestProcessUnknownLanguageEchoes(t *testing.T) {
	backend := new(MockBackend)
	p := newTestPipeline(backend)

	views := p.Process(context.Background(), "hello", "klingon", "english")

	assert.Equal(t, "hello", views.Sender.Main)
	assert.Equal(t, "hello", views.Receiver.Main)
	assert.False(t, views.Metadata.WasTranslated)
	backend.AssertNotCalled(t, "Translate")
}

func TestProcessDegradesOnBackendFailure(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, mock.Anything).
		Return(nil, errors.New("backend down"))

	p := newTestPipeline(backend)
	views := p.Process(context.Background(), "bagunnava", "telugu", "hindi")

	// The message goes out exactly as typed; no correction or script
	// rendering is applied when translation is down.
	assert.Equal(t, "bagunnava", views.Sender.Main)
	assert.Equal(t, "bagunnava", views.Receiver.Main)
	assert.False(t, views.Metadata.WasTranslated)
	assert.False(t, views.Metadata.WasTransliterated)
}

func TestProcessMetadataLanguageCodes(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, mock.Anything).
		Return(&domain.TranslateResponse{TranslatedText: "how are you"}, nil)

	p := newTestPipeline(backend)
	views := p.Process(context.Background(), "baagunnava", "Telugu", "ENGLISH")

	assert.Equal(t, "te", views.Metadata.SenderLanguage)
	assert.Equal(t, "en", views.Metadata.ReceiverLanguage)
}

func TestPreviewEmptyInput(t *testing.T) {
	backend := new(MockBackend)
	p := newTestPipeline(backend)

	preview := p.Preview(context.Background(), "", "telugu", "english")

	assert.Equal(t, "", preview.Preview)
	assert.Equal(t, "", preview.English)
	backend.AssertNotCalled(t, "Translate")
}

func TestPreviewRomanizedInput(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Translate", mock.Anything, mock.Anything).
		Return(&domain.TranslateResponse{TranslatedText: "how are you"}, nil)

	p := newTestPipeline(backend)
	preview := p.Preview(context.Background(), "baagunnava", "telugu", "english")

	assert.Equal(t, "బాగున్నవ", preview.Preview)
	assert.Equal(t, "how are you", preview.English)
}

func TestPreviewUnknownLanguage(t *testing.T) {
	backend := new(MockBackend)
	p := newTestPipeline(backend)

	preview := p.Preview(context.Background(), "hello", "klingon", "english")
	assert.Equal(t, "hello", preview.Preview)
}

func TestAnalyzeAppliesCorrection(t *testing.T) {
	p := newTestPipeline(new(MockBackend))

	analysis, corrected := p.Analyze("bagunnava", "telugu")

	assert.Equal(t, domain.MethodRomanizedNative, analysis.Method)
	assert.Equal(t, "baagunnava", corrected.Text)
	assert.Len(t, corrected.Corrections, 1)
}

func TestAnalyzeSkipsCorrectionForEnglish(t *testing.T) {
	p := newTestPipeline(new(MockBackend))

	analysis, corrected := p.Analyze("how are you doing today", "english")

	assert.Equal(t, domain.MethodPureEnglish, analysis.Method)
	assert.Equal(t, "how are you doing today", corrected.Text)
	assert.Empty(t, corrected.Corrections)
}
