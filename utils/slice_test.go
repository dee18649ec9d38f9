package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scribeapp/scribe/utils"
)

func TestUnique(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, utils.Unique([]uint{3, 1, 3, 2, 1}))
	assert.Equal(t, []string{"a", "b"}, utils.Unique([]string{"a", "b", "a"}))
	assert.Empty(t, utils.Unique([]uint(nil)))
}
