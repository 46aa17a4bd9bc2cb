package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pivotchat-backend/internal/corrector"
	"pivotchat-backend/internal/domain"
	"pivotchat-backend/internal/engine"
	"pivotchat-backend/internal/normalizer"
	"pivotchat-backend/internal/registry"
	"pivotchat-backend/pkg/logger"
)

// Pipeline composes the normalizer, phonetic corrector, and translation
// engine into the message-processing flow: analyze how the text was typed,
// clean it up, then produce both parties' views. It never fails hard; any
// stage that cannot do its job leaves the text as it found it.
type Pipeline struct {
	normalizer *normalizer.Normalizer
	corrector  *corrector.Corrector
	engine     *engine.Engine
	registry   *registry.Registry
}

// NewPipeline creates a message pipeline.
func NewPipeline(n *normalizer.Normalizer, c *corrector.Corrector, e *engine.Engine, reg *registry.Registry) *Pipeline {
	return &Pipeline{
		normalizer: n,
		corrector:  c,
		engine:     e,
		registry:   reg,
	}
}

// Process runs a finished message through the full pipeline and returns the
// sender's and receiver's views plus processing metadata.
func (p *Pipeline) Process(ctx context.Context, text, senderLang, receiverLang string) *domain.MessageViews {
	views := &domain.MessageViews{
		Metadata: domain.MessageMetadata{
			MessageID:        uuid.New(),
			OriginalText:     text,
			SenderLanguage:   senderLang,
			ReceiverLanguage: receiverLang,
			ProcessedAt:      time.Now().UTC(),
		},
	}

	if strings.TrimSpace(text) == "" {
		return views
	}

	working, analysis := p.prepare(text, senderLang)

	sender := p.registry.Get(senderLang)
	receiver := p.registry.Get(receiverLang)
	if sender == nil || receiver == nil {
		// Unknown language: echo the cleaned text to both sides rather
		// than reject the message.
		logger.Warn("Message processed with unresolved language",
			zap.String("sender_language", senderLang),
			zap.String("receiver_language", receiverLang),
		)
		views.Sender.Main = working
		views.Receiver.Main = working
		return views
	}
	views.Metadata.SenderLanguage = sender.Code
	views.Metadata.ReceiverLanguage = receiver.Code

	resp := p.engine.TranslateBidirectional(ctx, working, sender, receiver)
	if resp.Error != "" {
		// Translation is unavailable; the message still goes out exactly
		// as typed.
		views.Sender = domain.MessageView{Main: text, English: text}
		views.Receiver = domain.MessageView{Main: text, English: text}
		return views
	}

	views.Sender = domain.MessageView{Main: resp.SenderView, English: resp.EnglishCore}
	views.Receiver = domain.MessageView{Main: resp.ReceiverView, English: resp.EnglishCore}
	views.Metadata.WasTransliterated = resp.WasTransliterated
	views.Metadata.WasTranslated = resp.WasTranslated

	logger.Debug("Message processed",
		zap.String("message_id", views.Metadata.MessageID.String()),
		zap.String("method", string(analysis.Method)),
		zap.Bool("was_transliterated", resp.WasTransliterated),
		zap.Bool("was_translated", resp.WasTranslated),
	)
	return views
}

// Preview computes the sender-facing view of in-progress text: the message
// as it will render in the sender's script plus its English reading. The
// receiver's view is computed along the way, which warms the translation
// cache for the eventual send.
func (p *Pipeline) Preview(ctx context.Context, text, senderLang, receiverLang string) *domain.MessagePreview {
	if strings.TrimSpace(text) == "" {
		return &domain.MessagePreview{}
	}

	working, _ := p.prepare(text, senderLang)

	sender := p.registry.Get(senderLang)
	receiver := p.registry.Get(receiverLang)
	if sender == nil || receiver == nil {
		return &domain.MessagePreview{Preview: working}
	}

	resp := p.engine.TranslateBidirectional(ctx, working, sender, receiver)
	if resp.Error != "" {
		return &domain.MessagePreview{Preview: text}
	}
	return &domain.MessagePreview{
		Preview: resp.SenderView,
		English: resp.EnglishCore,
	}
}

// Analyze classifies in-progress text without translating it, returning the
// input analysis and the phonetically corrected form.
func (p *Pipeline) Analyze(text, userLanguage string) (*domain.InputAnalysis, domain.CorrectedText) {
	analysis := p.normalizer.Analyze(text, userLanguage, "")
	if !needsCorrection(analysis.Method) {
		return analysis, domain.CorrectedText{Text: analysis.NormalizedText}
	}
	return analysis, p.corrector.CorrectText(analysis.NormalizedText, userLanguage)
}

// prepare normalizes the text and applies phonetic correction for input
// methods where romanized spellings drift.
func (p *Pipeline) prepare(text, senderLang string) (string, *domain.InputAnalysis) {
	analysis := p.normalizer.Analyze(text, senderLang, "")
	working := analysis.NormalizedText

	if needsCorrection(analysis.Method) {
		corrected := p.corrector.CorrectText(working, senderLang)
		working = corrected.Text
	}
	return working, analysis
}

// needsCorrection reports whether an input method carries romanized native
// words worth running through the phonetic corrector.
func needsCorrection(method domain.InputMethod) bool {
	switch method {
	case domain.MethodRomanizedNative, domain.MethodMixedCode,
		domain.MethodVoiceNative, domain.MethodVoiceMixed:
		return true
	}
	return false
}
