package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BlockKind_String(t *testing.T) {
	testCases := []struct {
		kind   BlockKind
		expect string
	}{
		{kind: Stone, expect: "stone"},
		{kind: Dirt, expect: "dirt"},
		{kind: Grass, expect: "grass"},
		{kind: Sand, expect: "sand"},
		{kind: Brick, expect: "brick"},
		{kind: Glass, expect: "glass"},
		{kind: BlockKind(6), expect: "BlockKind(6)"},
		{kind: BlockKind(-1), expect: "BlockKind(-1)"},
	}

	for _, tc := range testCases {
		t.Run(tc.expect, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.kind.String())
		})
	}
}

func Test_BlockKind_UnmarshalText(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    BlockKind
		expectErr bool
	}{
		{name: "valid", input: "brick", expect: Brick},
		{name: "last kind", input: "glass", expect: Glass},
		{name: "uppercase rejected", input: "Brick", expectErr: true},
		{name: "unknown rejected", input: "lava", expectErr: true},
		{name: "empty rejected", input: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			var actual BlockKind
			err := actual.UnmarshalText([]byte(tc.input))
			if tc.expectErr {
				assert.Error(err)
				return
			}

			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_BlockKind_MarshalText(t *testing.T) {
	assert := assert.New(t)

	text, err := Sand.MarshalText()
	assert.NoError(err)
	assert.Equal([]byte("sand"), text)

	_, err = BlockKind(42).MarshalText()
	assert.Error(err)
}

func Test_BlockKinds(t *testing.T) {
	assert.Equal(t, []BlockKind{Stone, Dirt, Grass, Sand, Brick, Glass}, BlockKinds())
}

func Test_Command_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("fly true", Fly{On: true}.String())
	assert.Equal("fly false", Fly{}.String())
	assert.Equal("placing dirt", BlockPlacing{Block: Dirt}.String())
}
