package i18n

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.TraditionalChinese, // zh-Hant, default
	language.English,
}

// entries per language; a missing key falls back to the key itself, which is
// what the rates pipeline relies on for unresolved currency names.
var catalogs = map[language.Tag]map[string]string{
	language.TraditionalChinese: {
		"USD": "美元",
		"GBP": "英鎊",
		"EUR": "歐元",
		"JPY": "日圓",
		"TWD": "新台幣",

		"GetSuccess":            "查詢成功",
		"CreateSuccess":         "新增成功",
		"UpdateSuccess":         "更新成功",
		"DeleteSuccess":         "刪除成功",
		"CurrencyNotFound":      "找不到幣別",
		"CurrencyCodeExists":    "幣別代碼已存在",
		"CurrencyDataNotChange": "資料未變更",
		"VerifyFail":            "驗證失敗",
		"NotEncrypted":          "資料未加密",
		"DecryptFail":           "解密失敗",
	},
	language.English: {
		"USD": "US Dollar",
		"GBP": "British Pound Sterling",
		"EUR": "Euro",
		"JPY": "Japanese Yen",
		"TWD": "New Taiwan Dollar",

		"GetSuccess":            "query success",
		"CreateSuccess":         "create success",
		"UpdateSuccess":         "update success",
		"DeleteSuccess":         "delete success",
		"CurrencyNotFound":      "currency not found",
		"CurrencyCodeExists":    "currency code already exists",
		"CurrencyDataNotChange": "currency data not changed",
		"VerifyFail":            "signature verification failed",
		"NotEncrypted":          "value is not encrypted",
		"DecryptFail":           "decryption failed",
	},
}

var matcher = language.NewMatcher(supported)

// Localizer resolves display strings for one negotiated language.
type Localizer struct {
	tag language.Tag
}

// New returns a localizer for the default language (Traditional Chinese,
// matching the served market).
func New() *Localizer {
	return &Localizer{tag: supported[0]}
}

// ForAcceptLanguage negotiates against an Accept-Language header. An empty or
// unparsable header keeps the default language.
func ForAcceptLanguage(header string) *Localizer {
	if header == "" {
		return New()
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return New()
	}
	_, idx, _ := matcher.Match(tags...)
	return &Localizer{tag: supported[idx]}
}

// Get returns the localized string for key, or key itself when unknown.
func (l *Localizer) Get(key string) string {
	if s, ok := catalogs[l.tag][key]; ok {
		return s
	}
	return key
}

func (l *Localizer) Tag() language.Tag {
	return l.tag
}
