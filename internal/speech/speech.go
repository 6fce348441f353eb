// Package speech turns flashcard sounds into audio. Playback is a
// nicety: every failure degrades to silence so the study flow never
// blocks on audio.
package speech

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// ttsModel is the Gemini model used for speech synthesis.
const ttsModel = "gemini-2.5-flash-preview-tts"

// Synthesizer produces spoken audio for a piece of text.
type Synthesizer interface {
	// Synthesize returns PCM audio bytes for text, or an error the
	// caller is expected to swallow.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Noop is the synthesizer used when no API key is configured. It
// always reports success with no audio.
type Noop struct{}

// Synthesize implements Synthesizer.
func (Noop) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return nil, nil
}

// Gemini synthesizes Vietnamese speech through the Gemini TTS API,
// caching audio per text so a flashcard replays without a second call.
type Gemini struct {
	client *genai.Client

	mu    sync.Mutex
	cache map[string][]byte
}

// NewGemini creates a Gemini-backed synthesizer.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &Gemini{client: client, cache: make(map[string][]byte)}, nil
}

// Synthesize implements Synthesizer.
func (g *Gemini) Synthesize(ctx context.Context, text string) ([]byte, error) {
	g.mu.Lock()
	if audio, ok := g.cache[text]; ok {
		g.mu.Unlock()
		return audio, nil
	}
	g.mu.Unlock()

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: fmt.Sprintf("Phát âm Tiếng Việt: %q", text)}},
	}}

	result, err := g.client.Models.GenerateContent(ctx, ttsModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("synthesize %q: %w", text, err)
	}

	audio := extractAudio(result)
	if audio == nil {
		return nil, fmt.Errorf("synthesize %q: no audio in response", text)
	}

	g.mu.Lock()
	g.cache[text] = audio
	g.mu.Unlock()
	return audio, nil
}

// extractAudio pulls the first inline audio blob out of a response.
func extractAudio(result *genai.GenerateContentResponse) []byte {
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
