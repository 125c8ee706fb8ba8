package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SyntaxError_GameMessage(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty input",
			input:  "",
			expect: `Please enter a command; it must start with "fly" or "placing".`,
		},
		{
			name:  "bad argument",
			input: "fly maybe",
			expect: "fly maybe\n" +
				"    ^\n" +
				`I don't know what you mean by "maybe" here; I expected "true" or "false".`,
		},
		{
			name:  "bad block",
			input: "placing lava",
			expect: "placing lava\n" +
				"        ^\n" +
				`I don't know what you mean by "lava" here; I expected one of "stone", "dirt", "grass", "sand", "brick", or "glass".`,
		},
		{
			name:  "missing argument",
			input: "fly",
			expect: "fly\n" +
				"   ^\n" +
				`The command isn't finished; it needs "true" or "false" next.`,
		},
		{
			name:  "trailing token",
			input: "fly true extra",
			expect: "fly true extra\n" +
				"         ^\n" +
				`The command is already complete, so I don't know what to do with "extra".`,
		},
		{
			name:  "cursor counts characters not bytes",
			input: "ñ true",
			expect: "ñ true\n" +
				"^\n" +
				`I don't know what you mean by "ñ" here; I expected "fly" or "placing".`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			synErr := err.(*SyntaxError)

			assert.Equal(t, tc.expect, synErr.GameMessage())
		})
	}
}

func Test_SyntaxError_Error(t *testing.T) {
	_, err := Parse("fly maybe")

	assert.EqualError(t, err, `syntax error at offset 4 (token 1): expected "true" or "false"; found "maybe"`)
}
