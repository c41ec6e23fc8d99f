package ordernumber

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{14}-[0-9a-f]{6}$`)

func TestGenerateFormat(t *testing.T) {
	n := Generate()
	assert.Regexp(t, orderNumberPattern, n)
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := Generate()
		require.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	n := GenerateWithPrefix("INV-")
	assert.Regexp(t, `^INV-\d{14}-[0-9a-f]{6}$`, n)
}
