package domain

// Backend wire types. Language identifiers crossing this boundary are
// lowercase, trimmed, full names or ISO-style codes as registered in the
// language registry.

// BackendMode selects the backend operation.
type BackendMode string

const (
	ModeTranslate     BackendMode = "translate"
	ModeBidirectional BackendMode = "bidirectional"
)

// TranslateRequest is the payload for ModeTranslate.
type TranslateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// TranslateResponse is the result for ModeTranslate.
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// BidirectionalRequest is the payload for ModeBidirectional.
type BidirectionalRequest struct {
	Text             string `json:"text"`
	SenderLanguage   string `json:"sender_language"`
	ReceiverLanguage string `json:"receiver_language"`
}

// BidirectionalResponse is the result for ModeBidirectional.
type BidirectionalResponse struct {
	SenderView        string `json:"sender_view"`
	ReceiverView      string `json:"receiver_view"`
	EnglishCore       string `json:"english_core"`
	WasTransliterated bool   `json:"was_transliterated"`
	WasTranslated     bool   `json:"was_translated"`
	Error             string `json:"error,omitempty"`
}
