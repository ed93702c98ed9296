package classify

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "github.com/rs/zerolog/log"
    openai "github.com/sashabaranov/go-openai"

    "github.com/hyperifyio/tmclassify/internal/llm"
    "github.com/hyperifyio/tmclassify/internal/truncate"
)

// ErrNotConfigured indicates the model endpoint is missing. It is checked
// before any network call and is an operator error, not a user error.
var ErrNotConfigured = errors.New("llm endpoint is not configured")

// RequestError wraps a failed or empty completion call.
type RequestError struct {
    Err error
}

func (e *RequestError) Error() string { return fmt.Sprintf("ai request: %v", e.Err) }

func (e *RequestError) Unwrap() error { return e.Err }

// maxAnswerTokens bounds the completion size. One line per relevant class
// fits comfortably.
const maxAnswerTokens = 4000

const systemPrompt = `You are an expert trademark classification assistant.

You will receive two pieces of information:
1. BUSINESS CONTENT – text scraped from a business website or document describing their services/products.
2. TRADEMARK CLASSES REFERENCE – text from a trademark classes reference page listing all Nice Classification trademark classes and their associated terms/specifications.

Your task:
- Analyse the business content to understand what goods and services the business provides.
- Match those goods and services to the most relevant trademark classes from the reference.
- For each relevant class, list the specific specification terms from that class that relate to the business.

Return your answer STRICTLY in this format (one class per line):

Category [Number] – [Category Name] ([Confidence]%), [specification term 1]; [specification term 2]; [specification term 3]

Rules:
- Only include classes that are genuinely relevant to the business.
- Include the official class name/title after the number (e.g. "Category 9 – Scientific Apparatus").
- Include a confidence percentage (0-100) in parentheses after the class name indicating how confident you are that this class applies to the business.
- The specification terms MUST come from the trademark classes reference text.
- Separate specification terms with semicolons.
- Order classes by confidence score (highest first).
- Do not include any other text, headings, or explanations – just the category lines.`

// Classifier sends one synchronous completion request per classification.
// There is no retry or fallback model; a failure surfaces immediately.
type Classifier struct {
    Client llm.Client
    Model  string
}

// Request asks the model to match businessText against referenceText and
// returns the trimmed raw answer.
func (c *Classifier) Request(ctx context.Context, businessText, referenceText string) (string, error) {
    if c.Client == nil || strings.TrimSpace(c.Model) == "" {
        return "", ErrNotConfigured
    }

    user := buildUserPrompt(businessText, referenceText)

    // The fixed input cap is applied upstream without regard for the
    // model's window; warn when a small-context model would overflow.
    if est := truncate.EstimateTokens(systemPrompt) + truncate.EstimateTokens(user) + maxAnswerTokens; est > truncate.ModelContextTokens(c.Model) {
        log.Warn().Str("model", c.Model).Int("estimated_tokens", est).Msg("prompt likely exceeds model context window")
    }
    log.Debug().Str("model", c.Model).Int("business_len", len(businessText)).Int("reference_len", len(referenceText)).Msg("classification request")

    resp, err := c.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
        Model: c.Model,
        Messages: []openai.ChatCompletionMessage{
            {Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
            {Role: openai.ChatMessageRoleUser, Content: user},
        },
        MaxTokens: maxAnswerTokens,
    })
    if err != nil {
        return "", &RequestError{Err: err}
    }
    if len(resp.Choices) == 0 {
        return "", &RequestError{Err: errors.New("no choices in completion response")}
    }
    return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildUserPrompt(businessText, referenceText string) string {
    var sb strings.Builder
    sb.WriteString("=== BUSINESS CONTENT ===\n")
    sb.WriteString(businessText)
    sb.WriteString("\n\n=== TRADEMARK CLASSES REFERENCE ===\n")
    sb.WriteString(referenceText)
    sb.WriteString("\n")
    return sb.String()
}
