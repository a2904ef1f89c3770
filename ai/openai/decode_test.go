package openai

import (
	"testing"

	"github.com/poiesic/qaforge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePairs(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []core.QAPair
		wantErr bool
	}{
		{
			name:    "single pair",
			payload: `{"qa_pairs":[{"question":"Q1","answer":"A1"}]}`,
			want:    []core.QAPair{{Question: "Q1", Answer: "A1"}},
		},
		{
			name:    "multiple pairs preserve order",
			payload: `{"qa_pairs":[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"},{"question":"Q3","answer":"A3"}]}`,
			want: []core.QAPair{
				{Question: "Q1", Answer: "A1"},
				{Question: "Q2", Answer: "A2"},
				{Question: "Q3", Answer: "A3"},
			},
		},
		{
			name:    "duplicate questions are kept",
			payload: `{"qa_pairs":[{"question":"Q","answer":"A1"},{"question":"Q","answer":"A2"}]}`,
			want: []core.QAPair{
				{Question: "Q", Answer: "A1"},
				{Question: "Q", Answer: "A2"},
			},
		},
		{
			name:    "missing qa_pairs key yields zero pairs",
			payload: `{"other_key":[{"question":"Q1","answer":"A1"}]}`,
			want:    []core.QAPair{},
		},
		{
			name:    "empty object yields zero pairs",
			payload: `{}`,
			want:    []core.QAPair{},
		},
		{
			name:    "empty fields are dropped",
			payload: `{"qa_pairs":[{"question":"","answer":"A1"},{"question":"Q2","answer":"A2"},{"question":"Q3","answer":"  "}]}`,
			want:    []core.QAPair{{Question: "Q2", Answer: "A2"}},
		},
		{
			name:    "code fenced payload",
			payload: "```json\n{\"qa_pairs\":[{\"question\":\"Q1\",\"answer\":\"A1\"}]}\n```",
			want:    []core.QAPair{{Question: "Q1", Answer: "A1"}},
		},
		{
			name:    "preamble before object",
			payload: "Here is the JSON you asked for:\n{\"qa_pairs\":[{\"question\":\"Q1\",\"answer\":\"A1\"}]}",
			want:    []core.QAPair{{Question: "Q1", Answer: "A1"}},
		},
		{
			name:    "not json",
			payload: "not json",
			wantErr: true,
		},
		{
			name:    "wrong shape",
			payload: `{"qa_pairs":"a string"}`,
			wantErr: true,
		},
		{
			name:    "empty payload",
			payload: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodePairs(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`noise {"a":1} more noise`))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
	// Nothing to clamp: returned as-is so the decoder reports the real error.
	assert.Equal(t, "not json", stripFences("not json"))
}
