package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	want := "https://www.gravatar.com/avatar/d4c74594d841139328695756648b6bd6?s=200&r=pg&d=mm"
	assert.Equal(t, want, URL("john@example.com"))
}

func TestURLNormalizesEmail(t *testing.T) {
	assert.Equal(t, URL("john@example.com"), URL("  JOHN@Example.com "))
}

func TestURLDeterministic(t *testing.T) {
	assert.Equal(t, URL("jane.doe@example.com"), URL("jane.doe@example.com"))
}
