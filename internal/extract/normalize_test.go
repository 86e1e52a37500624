package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"spaces only", "   \n\t ", ""},
		{"collapse runs", "Senior \n\n Engineer\t II", "Senior Engineer II"},
		{"strip parenthetical", "Software Engineer (Remote)", "Software Engineer"},
		{"parenthetical mid-string", "SRE (L5) Platform", "SRE Platform"},
		{"nbsp", "Acme Corp", "Acme Corp"},
		{"already clean", "Data Scientist", "Data Scientist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.in))
		})
	}
}

func TestTruncate_CapsDescription(t *testing.T) {
	long := strings.Repeat("x", 6000)
	got := truncate(long, maxDescriptionLen)
	assert.Len(t, got, maxDescriptionLen)

	short := "fits"
	assert.Equal(t, short, truncate(short, maxDescriptionLen))
}
