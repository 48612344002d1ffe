package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDLengthAndAlphabet(t *testing.T) {
	id := GenerateID(DefaultIDLength)
	assert.Len(t, id, DefaultIDLength)
	for _, r := range id {
		assert.True(t, strings.ContainsRune(idAlphabet, r), "unexpected character %q", r)
	}

	assert.Len(t, GenerateID(4), 4)
	assert.Len(t, GenerateID(0), DefaultIDLength, "non-positive lengths fall back to the default")
}

func TestGenerateIDIsUnique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := GenerateID(DefaultIDLength)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
