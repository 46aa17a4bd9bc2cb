package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pivotchat-backend/internal/domain"
)

func TestGetByCode(t *testing.T) {
	reg := NewDefaultRegistry()

	lang := reg.Get("te")
	assert.NotNil(t, lang)
	assert.Equal(t, "Telugu", lang.Name)
	assert.Equal(t, domain.ScriptNative, lang.Script)
}

func TestGetByName(t *testing.T) {
	reg := NewDefaultRegistry()

	lang := reg.Get("telugu")
	assert.NotNil(t, lang)
	assert.Equal(t, "te", lang.Code)
}

func TestGetCaseInsensitive(t *testing.T) {
	reg := NewDefaultRegistry()

	assert.NotNil(t, reg.Get("Telugu"))
	assert.NotNil(t, reg.Get("ENGLISH"))
	assert.NotNil(t, reg.Get("  hindi  "))
}

func TestGetByNativeName(t *testing.T) {
	reg := NewDefaultRegistry()

	lang := reg.Get("తెలుగు")
	assert.NotNil(t, lang)
	assert.Equal(t, "te", lang.Code)
}

func TestGetBySubstring(t *testing.T) {
	reg := NewDefaultRegistry()

	lang := reg.Get("portugue")
	assert.NotNil(t, lang)
	assert.Equal(t, "pt", lang.Code)
}

func TestExactCodeBeatsSubstring(t *testing.T) {
	reg := NewDefaultRegistry()

	// "ta" is Tamil's code; substring matching would also hit "italian".
	lang := reg.Get("ta")
	assert.NotNil(t, lang)
	assert.Equal(t, "Tamil", lang.Name)
}

func TestGetUnknownLanguage(t *testing.T) {
	reg := NewDefaultRegistry()

	assert.Nil(t, reg.Get("klingon"))
	assert.Nil(t, reg.Get(""))
}

func TestEnglish(t *testing.T) {
	reg := NewDefaultRegistry()

	english := reg.English()
	assert.NotNil(t, english)
	assert.True(t, english.IsEnglish())
	assert.True(t, english.IsLatinScript())
}

func TestMalformedRecordsSkipped(t *testing.T) {
	reg := NewRegistry([]domain.LanguageRecord{
		{Code: "en", Name: "english", Script: domain.ScriptLatin},
		{Code: "", Name: "nameless", Script: domain.ScriptLatin},
		{Code: "xx", Name: "", Script: domain.ScriptLatin},
	})

	assert.Equal(t, 1, reg.Size())
	assert.Nil(t, reg.Get("xx"))
}

func TestDuplicateCodeKeepsFirst(t *testing.T) {
	reg := NewRegistry([]domain.LanguageRecord{
		{Code: "en", Name: "english", Script: domain.ScriptLatin},
		{Code: "en", Name: "engelsk", Script: domain.ScriptLatin},
	})

	assert.Equal(t, 1, reg.Size())
	assert.Equal(t, "english", reg.Get("en").Name)
}

func TestRTLFlag(t *testing.T) {
	reg := NewDefaultRegistry()

	arabic := reg.Get("ar")
	assert.NotNil(t, arabic)
	assert.True(t, arabic.RTL)

	hindi := reg.Get("hi")
	assert.NotNil(t, hindi)
	assert.False(t, hindi.RTL)
}

func TestAllReturnsCopy(t *testing.T) {
	reg := NewDefaultRegistry()

	all := reg.All()
	assert.Equal(t, reg.Size(), len(all))

	all[0].Name = "mutated"
	assert.NotEqual(t, "mutated", reg.All()[0].Name)
}
