package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranslationRoute identifies how a language pair is translated.
type TranslationRoute string

const (
	// RoutePassthrough means source and target are the same language.
	RoutePassthrough TranslationRoute = "passthrough"
	// RouteFromEnglish is a single hop out of the pivot language.
	RouteFromEnglish TranslationRoute = "from-english"
	// RouteToEnglish is a single hop into the pivot language.
	RouteToEnglish TranslationRoute = "to-english"
	// RouteDirect is a single hop between two Latin-script languages.
	RouteDirect TranslationRoute = "direct"
	// RoutePivot is the two-hop source→English→target path.
	RoutePivot TranslationRoute = "pivot"
)

// TranslationResult is the outcome of one translation request.
// IsTranslated is true iff Text differs from OriginalText. An empty Error
// does not imply the backend ran: same-language passthrough succeeds with
// IsTranslated=false and no error.
type TranslationResult struct {
	Text           string           `json:"text"`
	OriginalText   string           `json:"original_text"`
	IsTranslated   bool             `json:"is_translated"`
	SourceLanguage string           `json:"source_language"`
	TargetLanguage string           `json:"target_language"`
	Route          TranslationRoute `json:"route,omitempty"`
	EnglishPivot   string           `json:"english_pivot,omitempty"`
	Confidence     float64          `json:"confidence"`
	Error          string           `json:"error,omitempty"`
}

// MessageView is one party's rendering of a message.
type MessageView struct {
	Main    string `json:"main"`
	English string `json:"english"`
}

// MessageMetadata describes how the views were produced. Fully
// self-describing: rendering a MessageViews needs no registry lookup.
type MessageMetadata struct {
	MessageID         uuid.UUID `json:"message_id"`
	OriginalText      string    `json:"original_text"`
	WasTransliterated bool      `json:"was_transliterated"`
	WasTranslated     bool      `json:"was_translated"`
	SenderLanguage    string    `json:"sender_language"`
	ReceiverLanguage  string    `json:"receiver_language"`
	ProcessedAt       time.Time `json:"processed_at"`
}

// MessageViews is the terminal artifact of the pipeline, handed to the
// external chat layer. Immutable once returned.
type MessageViews struct {
	Sender   MessageView     `json:"sender"`
	Receiver MessageView     `json:"receiver"`
	Metadata MessageMetadata `json:"metadata"`
}

// MessagePreview is the sender-facing half of a MessageViews, computed
// under a debounce while the user is still typing.
type MessagePreview struct {
	Preview string `json:"preview"`
	English string `json:"english"`
}
