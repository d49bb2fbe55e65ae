// Package llm adapts the external generation and speech-synthesis providers
// into the application's vocabulary.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"zysculpt/internal/config"
	"zysculpt/internal/models"

	"google.golang.org/genai"
)

// VoicePlaceholder is the user-facing line emitted for an audio-only turn.
const VoicePlaceholder = "[Voice Message]"

// AudioPayload is an inline voice recording submitted with (or instead of) text.
type AudioPayload struct {
	MIMEType string
	Data     []byte
}

// PlanItem is one entry of a structured multi-day plan response.
type PlanItem struct {
	Day  int    `json:"day"`
	Task string `json:"task"`
}

// Gateway is the single adapter to the generation provider. A gateway built
// without a credential stays constructible; every call on it fails with a
// ConfigurationError so the UI can show a remediation message.
type Gateway struct {
	client *genai.Client
	model  string
}

func NewGateway(ctx context.Context, cfg config.Config) (*Gateway, error) {
	g := &Gateway{model: cfg.GeminiModel}
	if cfg.GeminiAPIKey == "" {
		return g, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("NewGateway(): failed to create genai client: %w", err)
	}
	g.client = client
	return g, nil
}

func (g *Gateway) configured() bool { return g.client != nil }

// Converse streams a conversational reply. Chunks arrive on the returned
// channel in provider order; the error channel carries at most one value.
// Both channels close when the stream ends. The producer checks ctx between
// chunks, so abandoning the consumer cancels cleanly.
func (g *Gateway) Converse(ctx context.Context, history []models.Message, userText string, audio *AudioPayload, pc PromptContext) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errc := make(chan error, 1)

	if !g.configured() {
		close(chunks)
		errc <- &ConfigurationError{Feature: "chat generation"}
		close(errc)
		return chunks, errc
	}

	contents := transcript(history)
	var parts []*genai.Part
	if audio != nil {
		// The recording is the primary content; any typed text rides along.
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: audio.MIMEType, Data: audio.Data}})
	}
	if trimmed := strings.TrimSpace(userText); trimmed != "" && trimmed != VoicePlaceholder {
		parts = append(parts, &genai.Part{Text: trimmed})
	}
	if len(parts) == 0 {
		parts = append(parts, &genai.Part{Text: "Please continue."})
	}
	contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: parts})

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction(pc), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
	}

	go func() {
		defer close(chunks)
		defer close(errc)
		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents, genCfg) {
			if err != nil {
				errc <- &ProviderError{Op: "Converse", Err: err}
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			select {
			case chunks <- text:
			case <-ctx.Done():
				return
			}
		}
	}()
	return chunks, errc
}

// Finalize produces the complete target artifact in one non-streaming call.
// The response is the document verbatim; profile contact data is injected as
// literal values, never placeholder tokens.
func (g *Gateway) Finalize(ctx context.Context, kind models.DocumentKind, target, background string, profile models.UserProfile) (string, error) {
	if !kind.Finalizable() {
		return "", fmt.Errorf("Finalize(): %s sessions do not produce a document", kind)
	}
	if !g.configured() {
		return "", &ConfigurationError{Feature: "document generation"}
	}

	contents := []*genai.Content{
		genai.NewContentFromText(finalizePrompt(kind, target, background, profile), genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", &ProviderError{Op: "Finalize", Err: err}
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &ProviderError{Op: "Finalize", Err: errors.New("empty response")}
	}
	return text, nil
}

// PlanGoal requests a strictly structured day/task plan. A response that fails
// to parse yields a ParseError, which callers fold into an empty plan.
func (g *Gateway) PlanGoal(ctx context.Context, goal string, dailyHours int) ([]PlanItem, error) {
	if !g.configured() {
		return nil, &ConfigurationError{Feature: "plan generation"}
	}

	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"day":  {Type: genai.TypeInteger},
					"task": {Type: genai.TypeString},
				},
				Required: []string{"day", "task"},
			},
		},
	}
	contents := []*genai.Content{
		genai.NewContentFromText(planPrompt(goal, dailyHours), genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, genCfg)
	if err != nil {
		return nil, &ProviderError{Op: "PlanGoal", Err: err}
	}

	items, err := parsePlan(resp.Text())
	if err != nil {
		return nil, err
	}
	return items, nil
}

func parsePlan(raw string) ([]PlanItem, error) {
	var items []PlanItem
	if err := json.Unmarshal([]byte(stripFences(raw)), &items); err != nil {
		return nil, &ParseError{Op: "PlanGoal", Err: err}
	}
	return items, nil
}

// stripFences removes a ```json ... ``` wrapper some models still emit around
// structured output.
func stripFences(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// transcript converts stored turns into provider roles.
func transcript(history []models.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := genai.RoleUser
		if m.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		out = append(out, &genai.Content{Role: role, Parts: []*genai.Part{{Text: m.Content}}})
	}
	return out
}
