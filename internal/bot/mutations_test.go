package bot

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 100))

	long := strings.Repeat("é", 150)
	got := truncate(long, 100)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 100, utf8.RuneCountInString(got))

	mixed := "ab" + strings.Repeat("漢", 10)
	got = truncate(mixed, 5)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ab漢漢漢", got)
}
