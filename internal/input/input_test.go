package input

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DirectCommandReader_ReadCommand(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "single line no newline",
			input:  "fly true",
			expect: []string{"fly true"},
		},
		{
			name:   "blank lines skipped and trimmed",
			input:  "\n   \n  placing dirt  \nfly false\n",
			expect: []string{"placing dirt", "fly false"},
		},
		{
			name:   "trailing blank lines before end",
			input:  "fly true\n\n  \n",
			expect: []string{"fly true"},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			dcr := NewDirectReader(strings.NewReader(tc.input))
			defer dcr.Close()

			for _, expectLine := range tc.expect {
				actual, err := dcr.ReadCommand()
				assert.NoError(err)
				assert.Equal(expectLine, actual)
			}

			actual, err := dcr.ReadCommand()
			assert.ErrorIs(err, io.EOF)
			assert.Equal("", actual)
		})
	}
}

func Test_nextNonBlank(t *testing.T) {
	readErr := errors.New("device gone")

	testCases := []struct {
		name      string
		lines     []string
		errs      []error
		expect    string
		expectErr error
	}{
		{
			name:   "skips blanks",
			lines:  []string{"", "  ", " fly true "},
			errs:   []error{nil, nil, nil},
			expect: "fly true",
		},
		{
			name:   "line returned with EOF is kept",
			lines:  []string{"placing sand"},
			errs:   []error{io.EOF},
			expect: "placing sand",
		},
		{
			name:      "blank line with EOF gives EOF",
			lines:     []string{"   "},
			errs:      []error{io.EOF},
			expectErr: io.EOF,
		},
		{
			name:      "other errors drop the line",
			lines:     []string{"fly"},
			errs:      []error{readErr},
			expectErr: readErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			calls := 0
			next := func() (string, error) {
				line, err := tc.lines[calls], tc.errs[calls]
				calls++
				return line, err
			}

			actual, err := nextNonBlank(next)

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
			} else {
				assert.NoError(err)
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_completionItems(t *testing.T) {
	assert := assert.New(t)

	items := completionItems()

	if !assert.Len(items, 2) {
		return
	}
	assert.Len(items[0].GetChildren(), 2)
	assert.Len(items[1].GetChildren(), 6)
}
