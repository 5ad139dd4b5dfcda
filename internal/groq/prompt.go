package groq

import (
	_ "embed"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"gopkg.in/yaml.v3"
)

const termPlaceholder = "{term}"

//go:embed prompts/explain.yaml
var explainPromptYAML []byte

type PromptSpec struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	System      string  `yaml:"system"`
	User        string  `yaml:"user"`
}

// LoadPromptSpec parses and validates a prompt spec.
func LoadPromptSpec(b []byte) (PromptSpec, error) {
	var spec PromptSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return PromptSpec{}, fmt.Errorf("parse prompt spec: %w", err)
	}
	spec.Model = strings.TrimSpace(spec.Model)
	if spec.Model == "" {
		return PromptSpec{}, fmt.Errorf("prompt spec: model is required")
	}
	if strings.TrimSpace(spec.System) == "" {
		return PromptSpec{}, fmt.Errorf("prompt spec: system instruction is required")
	}
	if !strings.Contains(spec.User, termPlaceholder) {
		return PromptSpec{}, fmt.Errorf("prompt spec: user template must contain %s", termPlaceholder)
	}
	return spec, nil
}

// DefaultPromptSpec returns the embedded explanation prompt.
func DefaultPromptSpec() (PromptSpec, error) {
	return LoadPromptSpec(explainPromptYAML)
}

// BuildRequest embeds an already sanitized term into the chat request.
func (p PromptSpec) BuildRequest(sanitizedTerm string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       p.Model,
		Temperature: p.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: strings.ReplaceAll(p.User, termPlaceholder, sanitizedTerm)},
		},
	}
}
