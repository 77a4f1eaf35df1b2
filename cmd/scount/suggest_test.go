package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestExtensionClosesTypo(t *testing.T) {
	assert.Equal(t, "java", suggestExtension("jav"))
	assert.Equal(t, "c", suggestExtension("cc"))
}

func TestSuggestExtensionNoGoodMatch(t *testing.T) {
	assert.Equal(t, "", suggestExtension("xyzzy"))
	assert.Equal(t, "", suggestExtension(""))
}
