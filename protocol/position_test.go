package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackedPositionRoundTrip(t *testing.T) {
	cases := []PackedPosition{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 64, Z: 2},
		{X: -1, Y: -1, Z: -1},
		{X: (1 << 25) - 1, Y: (1 << 11) - 1, Z: (1 << 25) - 1},
		{X: -(1 << 25), Y: -(1 << 11), Z: -(1 << 25)},
		{X: 18999, Y: -64, Z: -18999},
	}

	for _, c := range cases {
		var buf bytes.Buffer
		_, err := c.WriteTo(&buf)
		require.NoError(t, err)

		var got PackedPosition
		_, err = got.ReadFrom(&buf)
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}
