package classify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"
)

// RemoteClassifier classifies a sanitized title through an external model.
type RemoteClassifier interface {
	Classify(ctx context.Context, title string) (Record, error)
}

const classifierInstructions = `You are a concise assistant that classifies short application/tab titles for productivity analysis.
Respond ONLY with a single JSON object with fields: category, confidence, tags, rationale.
Allowed categories: focus, distraction, neutral. Confidence: float 0-100.
Tags: array of short labels. Rationale: one short sentence of at most 30 words.
Do not include any other text.`

// classifyResponse is the strict response contract for the model.
type classifyResponse struct {
	Category   string   `json:"category" jsonschema:"enum=focus,enum=distraction,enum=neutral"`
	Confidence float64  `json:"confidence"`
	Tags       []string `json:"tags"`
	Rationale  string   `json:"rationale"`
}

var classifySchema = generateSchema[classifyResponse]()

// OpenAIClassifier calls the OpenAI Responses API with a structured output
// schema and a bounded per-call timeout.
type OpenAIClassifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIClassifier(client *openai.Client, model string, timeout time.Duration) *OpenAIClassifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIClassifier{client: client, model: model, timeout: timeout}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, title string) (Record, error) {
	if c.client == nil {
		return Record{}, errors.New("openai classifier: client is nil")
	}
	if c.model == "" {
		return Record{}, errors.New("openai classifier: model is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(200),
		Instructions:    openai.String(classifierInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(
					fmt.Sprintf("Title: %q", title),
					responses.EasyInputMessageRoleUser,
				),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:        "TitleClassification",
					Schema:      classifySchema,
					Strict:      openai.Bool(true),
					Description: openai.String("Title classification JSON"),
					Type:        "json_schema",
				},
			},
		},
	}

	resp, err := callWithRetry(ctx, c.client, params)
	if err != nil {
		return Record{}, fmt.Errorf("openai classify: %w", err)
	}

	rec, err := parseClassification(resp.OutputText())
	if err != nil {
		return Record{}, err
	}
	rec.Title = title
	rec.Model = c.model
	return rec, nil
}

// callWithRetry retries transient server errors once within the call's
// deadline. Rate limits are not waited out here; the caller falls back to
// the rule table instead.
func callWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxAttempts = 2

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := client.Responses.New(ctx, params)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !isServerError(err) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, lastErr
		case <-time.After(time.Second):
		}
	}
	return nil, lastErr
}

func isServerError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "500") ||
		strings.Contains(s, "internal server error") ||
		strings.Contains(s, "server_error")
}

// parseClassification turns raw model output into a remote Record, rejecting
// schema-invalid payloads so the caller can fall back to the rule table.
func parseClassification(outputText string) (Record, error) {
	var out classifyResponse
	if err := decodeModelJSON(outputText, &out); err != nil {
		return Record{}, fmt.Errorf("parse classification: %w", err)
	}

	cat, err := ParseCategory(out.Category)
	if err != nil {
		return Record{}, fmt.Errorf("parse classification: %w", err)
	}
	if out.Confidence < 0 || out.Confidence > 100 {
		return Record{}, fmt.Errorf("parse classification: confidence %v out of range", out.Confidence)
	}

	return Record{
		Category:   cat,
		Confidence: out.Confidence,
		Tags:       out.Tags,
		Rationale:  strings.TrimSpace(out.Rationale),
		Source:     SourceRemote,
	}, nil
}

// decodeModelJSON unmarshals JSON from a model response, tolerating prose
// around the object by extracting the first top-level {...} span.
func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return io.ErrUnexpectedEOF
	}

	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}

	sub := s[start : end+1]
	if err := json.Unmarshal([]byte(sub), v); err != nil {
		return fmt.Errorf("failed to unmarshal extracted JSON (len=%d): %w", len(sub), err)
	}
	return nil
}

func generateSchema[T any]() map[string]interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)

	b, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	ensureRequiredFields(m)
	return m
}

// ensureRequiredFields marks every property required and closes objects, as
// the strict structured-output mode demands.
func ensureRequiredFields(schema map[string]interface{}) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		if props, ok := schema["properties"].(map[string]interface{}); ok {
			var required []string
			for name := range props {
				required = append(required, name)
			}
			if len(required) > 0 {
				schema["required"] = required
			}
		}
	}
	if props, ok := schema["properties"].(map[string]interface{}); ok {
		for _, p := range props {
			if pm, ok := p.(map[string]interface{}); ok {
				ensureRequiredFields(pm)
			}
		}
	}
	if items, ok := schema["items"].(map[string]interface{}); ok {
		ensureRequiredFields(items)
	}
}
