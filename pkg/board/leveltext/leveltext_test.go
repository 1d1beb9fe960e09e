package leveltext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokoworks/sokosolve/pkg/board"
	"github.com/sokoworks/sokosolve/pkg/board/leveltext"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	const level = "######\n#@$ .#\n######\n"

	b, err := leveltext.Decode(level)
	require.NoError(t, err)

	assert.Equal(t, level, leveltext.Encode(b))
}

func TestDecodeRejectsUnknownGlyph(t *testing.T) {
	_, err := leveltext.Decode("#####\n#@$?#\n#####\n")
	assert.Error(t, err)
}

func TestDecodeRejectsMissingPlayer(t *testing.T) {
	_, err := leveltext.Decode("#####\n# $.#\n#####\n")
	assert.Error(t, err)
}

func TestDecodePadsShortRows(t *testing.T) {
	b, err := leveltext.Decode("######\n#@$.#\n######\n")
	require.NoError(t, err)
	assert.Equal(t, 6, b.Width())

	// The padded floor cell at the end of the short row is not a wall.
	assert.False(t, b.IsWall(board.SquareAt(5, 1, b.Width())))
}
