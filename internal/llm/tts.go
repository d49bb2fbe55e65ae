/* Speech synthesis adapter. Converts assistant text to playable audio; one
request per utterance, playback concurrency is the client's concern. */

package llm

import (
	"context"
	"log"
	"strings"

	"google.golang.org/api/option"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

const defaultVoice = "en-US-Neural2-D"

type SpeechClient struct {
	client *texttospeech.Client
}

func NewSpeechClient(ctx context.Context, credentialsFile string) (*SpeechClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, &ConfigurationError{Feature: "speech synthesis"}
	}
	return &SpeechClient{client: client}, nil
}

// Synthesize renders text as MP3. Markdown markers are stripped first so the
// voice does not read asterisks aloud.
func (t *SpeechClient) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if voice == "" {
		voice = defaultVoice
	}
	clean := strings.NewReplacer("**", "", "#", "").Replace(text)

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: clean},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageOf(voice),
			Name:         voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := t.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		log.Printf("SpeechClient.Synthesize(): SynthesizeSpeech failed: %v", err)
		return nil, &ProviderError{Op: "Synthesize", Err: err}
	}
	return resp.AudioContent, nil
}

// languageOf derives the language code from a full voice name like
// "en-US-Neural2-D".
func languageOf(voice string) string {
	parts := strings.SplitN(voice, "-", 3)
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return "en-US"
}

func (t *SpeechClient) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
