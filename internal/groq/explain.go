package groq

import (
	"context"
	"html"
	"log"
	"net/http"

	"github.com/tidwall/gjson"

	"explicador-backend/internal/config"
	"explicador-backend/internal/types"
)

// Explainer turns a submitted term into an Outcome with one upstream call.
type Explainer struct {
	client *Client
	prompt PromptSpec
}

func NewExplainer(client *Client, prompt PromptSpec) *Explainer {
	return &Explainer{client: client, prompt: prompt}
}

// Sanitize escapes a raw term for both the prompt and the page.
func Sanitize(rawTerm string) string {
	return html.EscapeString(rawTerm)
}

// Explain returns (nil, "") unless method is POST and cfg is valid.
// Empty terms are forwarded as they are.
func (e *Explainer) Explain(ctx context.Context, method, rawTerm string, cfg config.APIConfig) (*types.Outcome, string) {
	if method != http.MethodPost || !cfg.Valid() {
		return nil, ""
	}
	term := Sanitize(rawTerm)
	body, err := e.client.CreateChatCompletion(ctx, cfg.APIURL, cfg.APIKey, e.prompt.BuildRequest(term))
	if err != nil {
		log.Printf("[explain] upstream call failed: %v", err)
		return types.TransportError(err.Error()), term
	}
	out := Classify(body)
	if out.IsError() {
		log.Printf("[explain] upstream returned %s", out.Kind)
	}
	return out, term
}

// Classify maps a response body to Success, UpstreamError or
// UnparseableResponse, in that order of precedence.
func Classify(body []byte) *types.Outcome {
	if !gjson.ValidBytes(body) {
		return types.UnparseableResponse(string(body))
	}
	if content := gjson.GetBytes(body, "choices.0.message.content"); present(content) {
		return types.Success(content.String())
	}
	if msg := gjson.GetBytes(body, "error.message"); present(msg) {
		code := gjson.GetBytes(body, "error.code")
		if !present(code) {
			return types.UpstreamError(msg.String(), "")
		}
		return types.UpstreamError(msg.String(), code.String())
	}
	return types.UnparseableResponse(string(body))
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}
