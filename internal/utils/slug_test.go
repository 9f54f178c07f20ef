package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "turkish letters fold to ascii", input: "Kış Bakımı", expected: "kis-bakimi"},
		{name: "dotted capital I", input: "İstanbul Şubesi", expected: "istanbul-subesi"},
		{name: "all turkish specials", input: "çğıöşü ÇĞİÖŞÜ", expected: "cgiosu-cgiosu"},
		{name: "accented latin", input: "Crème Brûlée", expected: "creme-brulee"},
		{name: "punctuation collapses to single hyphens", input: "Aşılama & Bakım!!", expected: "asilama-bakim"},
		{name: "leading and trailing separators trimmed", input: "  --Pet Kuaför--  ", expected: "pet-kuafor"},
		{name: "digits survive", input: "7/24 Acil Servis", expected: "7-24-acil-servis"},
		{name: "already a slug", input: "check-up", expected: "check-up"},
		{name: "empty input", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
