package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"kor", "Korean (KR)"},
		{"ko", "Korean (KR)"},
		{"hin", "Hindi (IN)"},
		{"eng", "English (US)"},
		{"enUS", "English (US)"},
		{"en-GB", "English (UK)"},
		{"pt-BR", "Portuguese (BR)"},
		{"zh-TW", "Chinese (Traditional)"},
		{"es-419", "Spanish (Latin America)"},
		{"ara", "Arabic (001)"},
		{"nor", "Norwegian Bokmal (NO)"},
		{"slo", "Slovak (SK)"},
		{"xx-ZZ", "Unknown"},
		{"", "Unknown"},
		// Exact match only: no case folding.
		{"ENG", "Unknown"},
		{"en-us", "Unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.code))
		})
	}
}

func TestResolve_EveryEntryHasRegion(t *testing.T) {
	for code, name := range names {
		assert.Contains(t, name, " (", "entry %q", code)
		assert.True(t, Known(code))
	}
}

func TestBaseName(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"hin", "Hindi"},
		{"eng", "English"},
		{"zh-TW", "Chinese"},
		{"nor", "Norwegian Bokmal"},
		// Not in the table but a valid ISO 639 code.
		{"tam", "Tamil"},
		{"te", "Telugu"},
		{"Unknown", "Unknown"},
		{"und", "Unknown"},
		{"", "Unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.want, BaseName(tc.code))
		})
	}
}
