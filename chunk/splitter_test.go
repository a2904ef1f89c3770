package chunk

import (
	"strings"
	"testing"

	"github.com/poiesic/qaforge/core"
	"github.com/stretchr/testify/assert"
)

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []core.TextChunk
	}{
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "only blank lines",
			raw:  "\n\n  \n\t\n",
			want: nil,
		},
		{
			name: "trailing section without blank line is dropped",
			raw:  "A\nB\n\nC\n",
			want: []core.TextChunk{"A\nB\n"},
		},
		{
			name: "terminated sections are all emitted",
			raw:  "A\nB\n\nC\n\n",
			want: []core.TextChunk{"A\nB\n", "C\n"},
		},
		{
			name: "no blank lines yields no chunks",
			raw:  "A\nB\nC",
			want: nil,
		},
		{
			name: "consecutive blank lines emit no empty chunks",
			raw:  "A\n\n\n\nB\n\n",
			want: []core.TextChunk{"A\n", "B\n"},
		},
		{
			name: "whitespace-only line terminates a section",
			raw:  "A\n  \nB\n\n",
			want: []core.TextChunk{"A\n", "B\n"},
		},
		{
			name: "crlf endings",
			raw:  "A\r\nB\r\n\r\n",
			want: []core.TextChunk{"A\nB\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSplitter().Split(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitNeverEmitsBlankChunk(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"  \n\n \n",
		"A\n\nB\n\n",
		"one\ntwo\n\n\nthree\n\n",
	}

	for _, raw := range inputs {
		for _, chunk := range NewSplitter().Split(raw) {
			assert.NotEmpty(t, strings.TrimSpace(string(chunk)), "input %q produced blank chunk", raw)
		}
	}
}

func TestSplitFlushTrailing(t *testing.T) {
	s := NewSplitter(WithFlushTrailing(true))

	got := s.Split("A\nB\n\nC\n")
	assert.Equal(t, []core.TextChunk{"A\nB\n", "C\n"}, got)

	// A whole document with no blank lines becomes a single chunk.
	got = s.Split("A\nB")
	assert.Equal(t, []core.TextChunk{"A\nB\n"}, got)
}

func TestSplitPreservesOrder(t *testing.T) {
	raw := "first\n\nsecond\n\nthird\n\n"
	got := NewSplitter().Split(raw)
	assert.Equal(t, []core.TextChunk{"first\n", "second\n", "third\n"}, got)
}
