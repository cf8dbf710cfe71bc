package logutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"empty", "", 10, ""},
		{"zero max", "anything", 0, "..."},
		{"shorter", "timeout", 10, "timeout"},
		{"exact", "timeout", 7, "timeout"},
		{"cut", "Error 1452: a foreign key constraint fails", 10, "Error 1452..."},
		// "x" plus two-byte Cyrillic runes: byte 4 is inside "Ш"
		{"cut backs off to rune start", "xОШИБКА", 4, "xО..."},
		{"invalid utf8 replaced", "bad\xffbyte", 20, "bad�byte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateForLog(tt.input, tt.maxLen))
		})
	}
}

func TestTruncateForLog_AlwaysValidUTF8(t *testing.T) {
	msg := `xОШИБКА: INSERT или UPDATE в таблице "ads" нарушает ограничение внешнего ключа`
	for maxLen := 1; maxLen < len(msg); maxLen++ {
		got := TruncateForLog(msg, maxLen)
		assert.True(t, utf8.ValidString(got), "maxLen=%d", maxLen)
		assert.LessOrEqual(t, len(strings.TrimSuffix(got, "...")), maxLen)
	}
}
