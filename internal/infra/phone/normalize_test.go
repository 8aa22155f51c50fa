package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeE164(t *testing.T) {
	assert.Equal(t, "+16502530000", NormalizeE164("(650) 253-0000"))
	assert.Equal(t, "+442071838750", NormalizeE164("+44 20 7183 8750"))
	assert.Equal(t, "unknown", NormalizeE164(" unknown "))
	assert.Equal(t, "", NormalizeE164("   "))
}
