package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintIdentity(t *testing.T) {
	a := Fingerprint("Missing Access Control", "add a guard")
	b := Fingerprint("Missing Access Control", "add a guard")
	c := Fingerprint("Missing Access Control", "different advice")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestContentKeyDistinguishesSharedPrefixes(t *testing.T) {
	prefix := strings.Repeat("x", 200)
	assert.NotEqual(t, ContentKey(prefix+"a"), ContentKey(prefix+"b"))
	assert.Equal(t, ContentKey("same"), ContentKey("same"))
}
