package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("/", km.Search))
	assert.True(t, Matches("n", km.NextPage))
	assert.True(t, Matches("right", km.NextPage))
	assert.False(t, Matches("z", km.Quit))
}

func TestHelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.BrowseHelp())
	assert.NotEmpty(t, km.SearchHelp())
}
