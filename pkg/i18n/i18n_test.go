package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNew_DefaultsToTraditionalChinese(t *testing.T) {
	localizer := New()

	assert.Equal(t, language.TraditionalChinese, localizer.Tag())
	assert.Equal(t, "美元", localizer.Get("USD"))
	assert.Equal(t, "查詢成功", localizer.Get("GetSuccess"))
}

func TestForAcceptLanguage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		key    string
		want   string
	}{
		{"english", "en-US,en;q=0.9", "USD", "US Dollar"},
		{"traditional chinese", "zh-TW", "USD", "美元"},
		{"unsupported falls back to default", "fr-FR", "USD", "美元"},
		{"empty header", "", "GetSuccess", "查詢成功"},
		{"garbage header", ";;;", "GetSuccess", "查詢成功"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			localizer := ForAcceptLanguage(tt.header)
			assert.Equal(t, tt.want, localizer.Get(tt.key))
		})
	}
}

func TestGet_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "XYZ", New().Get("XYZ"))
	assert.Equal(t, "XYZ", ForAcceptLanguage("en-US").Get("XYZ"))
}
