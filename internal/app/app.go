package app

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/tmclassify/internal/classes"
    "github.com/hyperifyio/tmclassify/internal/classify"
    "github.com/hyperifyio/tmclassify/internal/document"
    "github.com/hyperifyio/tmclassify/internal/extract"
    "github.com/hyperifyio/tmclassify/internal/fetch"
    "github.com/hyperifyio/tmclassify/internal/llm"
    "github.com/hyperifyio/tmclassify/internal/truncate"
)

// DescriptionSource labels results whose business text came from a raw
// free-text description rather than a URL or file.
const DescriptionSource = "text description"

// Stage identifies which pipeline step an error came from, so the
// transport layer can map it to the right status and message.
type Stage string

const (
    StageInput     Stage = "input"
    StageDocument  Stage = "document"
    StageBusiness  Stage = "business"
    StageReference Stage = "reference"
    StageAI        Stage = "ai"
)

// StageError wraps a pipeline failure with the stage it occurred in.
type StageError struct {
    Stage Stage
    Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

// ErrNoInput indicates the request carried neither a URL, a description,
// nor an uploaded document.
var ErrNoInput = errors.New("no url, description, or document provided")

// Input is the discriminated request variant. Upload wins over URL, URL
// over Description, mirroring form handling where an uploaded file
// accompanies a leftover url field.
type Input struct {
    URL         string
    Description string
    Upload      *Upload
}

// Upload is an uploaded document: the filename selects the extraction
// path by extension.
type Upload struct {
    Filename string
    Data     []byte
}

// Service runs the classification pipeline: resolve business text, fetch
// the reference taxonomy, call the model, parse. Strictly sequential and
// stateless; every request re-fetches the reference page.
type Service struct {
    Fetcher    *fetch.Client
    Reference  *classes.Fetcher
    Classifier *classify.Classifier
}

// New wires a Service from configuration. An empty LLM base URL leaves
// the classifier unconfigured so requests fail fast before any network
// call.
func New(cfg Config) *Service {
    fetcher := &fetch.Client{}
    var client llm.Client
    if cfg.LLMBaseURL != "" {
        client = llm.New(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.AzureOpenAI)
    }
    model := cfg.LLMModel
    if model == "" {
        model = "gpt-4o"
    }
    return &Service{
        Fetcher:    fetcher,
        Reference:  &classes.Fetcher{Client: fetcher, URL: cfg.ClassesURL},
        Classifier: &classify.Classifier{Client: client, Model: model},
    }
}

// Analyze executes one classification request end to end. Any stage
// failure aborts the rest of the pipeline; only parse "failures" degrade
// to best-effort records instead of erroring.
func (s *Service) Analyze(ctx context.Context, in Input) (classify.Result, error) {
    businessText, source, err := s.businessText(ctx, in)
    if err != nil {
        return classify.Result{}, err
    }
    log.Debug().Str("source", source).Int("chars", len(businessText)).Msg("business text resolved")

    referenceText, err := s.Reference.Fetch(ctx)
    if err != nil {
        return classify.Result{}, &StageError{Stage: StageReference, Err: err}
    }
    log.Debug().Int("chars", len(referenceText)).Msg("reference taxonomy fetched")

    raw, err := s.Classifier.Request(ctx, businessText, referenceText)
    if err != nil {
        return classify.Result{}, &StageError{Stage: StageAI, Err: err}
    }

    records := classify.Parse(raw)
    log.Info().Str("source", source).Int("classifications", len(records)).Msg("analysis complete")
    return classify.Result{Source: source, Classifications: records, Raw: raw}, nil
}

func (s *Service) businessText(ctx context.Context, in Input) (text, source string, err error) {
    switch {
    case in.Upload != nil && in.Upload.Filename != "":
        text, err := document.Extract(in.Upload.Data, in.Upload.Filename)
        if err != nil {
            return "", "", &StageError{Stage: StageDocument, Err: err}
        }
        return text, in.Upload.Filename, nil

    case strings.TrimSpace(in.URL) != "":
        url := NormalizeURL(in.URL)
        body, err := s.Fetcher.Get(ctx, url)
        if err != nil {
            return "", "", &StageError{Stage: StageBusiness, Err: err}
        }
        return truncate.ToCap(extract.Text(body)), url, nil

    case strings.TrimSpace(in.Description) != "":
        return truncate.ToCap(strings.TrimSpace(in.Description)), DescriptionSource, nil
    }
    return "", "", &StageError{Stage: StageInput, Err: ErrNoInput}
}

// NormalizeURL prepends https:// when the user omitted a scheme.
func NormalizeURL(raw string) string {
    url := strings.TrimSpace(raw)
    if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
        url = "https://" + url
    }
    return url
}
