package types

import "html/template"

type OutcomeKind string

const (
	OutcomeSuccess             OutcomeKind = "success"
	OutcomeTransportError      OutcomeKind = "transport_error"
	OutcomeUpstreamError       OutcomeKind = "upstream_error"
	OutcomeUnparseableResponse OutcomeKind = "unparseable_response"
	OutcomeConfigurationError  OutcomeKind = "configuration_error"
)

// Outcome is the result of one request cycle. Only the fields belonging to
// Kind are set; none of them carry markup.
type Outcome struct {
	Kind OutcomeKind
	// Success
	Text string
	// TransportError, UpstreamError, ConfigurationError
	Message string
	// UpstreamError; "N/A" when the API sent none
	Code string
	// UnparseableResponse
	RawBody string
}

func Success(text string) *Outcome {
	return &Outcome{Kind: OutcomeSuccess, Text: text}
}

func TransportError(msg string) *Outcome {
	return &Outcome{Kind: OutcomeTransportError, Message: msg}
}

func UpstreamError(msg, code string) *Outcome {
	if code == "" {
		code = "N/A"
	}
	return &Outcome{Kind: OutcomeUpstreamError, Message: msg, Code: code}
}

func UnparseableResponse(raw string) *Outcome {
	return &Outcome{Kind: OutcomeUnparseableResponse, RawBody: raw}
}

func ConfigurationError(msg string) *Outcome {
	return &Outcome{Kind: OutcomeConfigurationError, Message: msg}
}

func (o *Outcome) IsError() bool {
	return o != nil && o.Kind != OutcomeSuccess
}

// PageView is everything the page template needs.
type PageView struct {
	// Term is already HTML-escaped and must not be escaped again
	Term template.HTML
	// Outcome is nil on a plain GET with a valid configuration
	Outcome *Outcome
}
