package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dekarrin/voxcmd/internal/command"
	"github.com/dekarrin/voxcmd/internal/world"
	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Config
		expectErr bool
	}{
		{
			name:   "empty file gives defaults",
			input:  "",
			expect: Default(),
		},
		{
			name: "all keys",
			input: `
prompt = "vx> "
width = 100
state = "player.vxs"
history = ".vx_history"

[player]
fly = false
placing = "brick"
`,
			expect: Config{
				Prompt:  "vx> ",
				Width:   100,
				State:   "player.vxs",
				History: ".vx_history",
				Player: PlayerConfig{
					Fly:     false,
					Placing: command.Brick,
				},
			},
		},
		{
			name: "partial player section keeps defaults",
			input: `
[player]
placing = "glass"
`,
			expect: Config{
				Prompt: "> ",
				Width:  80,
				Player: PlayerConfig{
					Fly:     true,
					Placing: command.Glass,
				},
			},
		},
		{
			name:      "unknown block",
			input:     "[player]\nplacing = \"lava\"\n",
			expectErr: true,
		},
		{
			name:      "block keyword is case sensitive",
			input:     "[player]\nplacing = \"Stone\"\n",
			expectErr: true,
		},
		{
			name:      "unknown key",
			input:     "colour = \"blue\"\n",
			expectErr: true,
		},
		{
			name:      "width too narrow",
			input:     "width = 5\n",
			expectErr: true,
		},
		{
			name:      "not toml",
			input:     "this is [not toml",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := Parse([]byte(tc.input))
			if tc.expectErr {
				assert.Error(err)
				return
			}

			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Load(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	assert.NoError(err)
	assert.Equal(Default(), cfg)

	path := filepath.Join(dir, "voxcmd.toml")
	err = os.WriteFile(path, []byte("width = 40\n"), 0644)
	if !assert.NoError(err) {
		return
	}

	cfg, err = Load(path)
	assert.NoError(err)
	assert.Equal(40, cfg.Width)
}

func Test_Config_StartState(t *testing.T) {
	assert.Equal(t, world.DefaultState(), Default().StartState())
}
