package speech

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestNoop(t *testing.T) {
	audio, err := Noop{}.Synthesize(context.Background(), "bờ")
	if err != nil {
		t.Fatalf("noop returned error: %v", err)
	}
	if audio != nil {
		t.Fatal("noop returned audio")
	}
}

func TestNewGeminiRequiresKey(t *testing.T) {
	if _, err := NewGemini(context.Background(), ""); err == nil {
		t.Fatal("empty API key accepted")
	}
}

func TestExtractAudio(t *testing.T) {
	tests := []struct {
		name   string
		result *genai.GenerateContentResponse
		want   []byte
	}{
		{
			name:   "no candidates",
			result: &genai.GenerateContentResponse{},
			want:   nil,
		},
		{
			name: "nil content",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			want: nil,
		},
		{
			name: "text only",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{
						Parts: []*genai.Part{{Text: "xin chào"}},
					},
				}},
			},
			want: nil,
		},
		{
			name: "inline audio",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{
						Parts: []*genai.Part{
							{Text: "xin chào"},
							{InlineData: &genai.Blob{Data: []byte{1, 2, 3}}},
						},
					},
				}},
			},
			want: []byte{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractAudio(tt.result)
			if string(got) != string(tt.want) {
				t.Fatalf("extractAudio = %v, want %v", got, tt.want)
			}
		})
	}
}
