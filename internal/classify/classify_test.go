package classify

import (
    "context"
    "errors"
    "strings"
    "testing"

    openai "github.com/sashabaranov/go-openai"
)

type fakeClient struct {
    lastReq openai.ChatCompletionRequest
    resp    openai.ChatCompletionResponse
    err     error
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
    f.lastReq = req
    return f.resp, f.err
}

func completionWith(content string) openai.ChatCompletionResponse {
    return openai.ChatCompletionResponse{
        Choices: []openai.ChatCompletionChoice{
            {Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
        },
    }
}

func TestRequest_NotConfigured(t *testing.T) {
    c := &Classifier{}
    if _, err := c.Request(context.Background(), "biz", "ref"); !errors.Is(err, ErrNotConfigured) {
        t.Fatalf("err: got %v, want ErrNotConfigured", err)
    }
    c = &Classifier{Client: &fakeClient{}, Model: "  "}
    if _, err := c.Request(context.Background(), "biz", "ref"); !errors.Is(err, ErrNotConfigured) {
        t.Fatalf("blank model err: got %v, want ErrNotConfigured", err)
    }
}

func TestRequest_PromptContract(t *testing.T) {
    fake := &fakeClient{resp: completionWith("Category 9 – Scientific Apparatus (85%), software")}
    c := &Classifier{Client: fake, Model: "gpt-4o"}

    raw, err := c.Request(context.Background(), "we sell laser sensors", "Class 9 ...reference...")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if raw != "Category 9 – Scientific Apparatus (85%), software" {
        t.Fatalf("raw: got %q", raw)
    }

    req := fake.lastReq
    if req.Model != "gpt-4o" {
        t.Fatalf("model: got %q", req.Model)
    }
    if req.MaxTokens != 4000 {
        t.Fatalf("max tokens: got %d", req.MaxTokens)
    }
    if req.Temperature != 0 {
        t.Fatalf("temperature: got %v, want model default", req.Temperature)
    }
    if len(req.Messages) != 2 {
        t.Fatalf("messages: got %d", len(req.Messages))
    }
    system := req.Messages[0]
    if system.Role != openai.ChatMessageRoleSystem {
        t.Fatalf("first message role: got %q", system.Role)
    }
    if !strings.Contains(system.Content, "Category [Number] – [Category Name] ([Confidence]%)") {
        t.Fatalf("system prompt missing output grammar:\n%s", system.Content)
    }
    user := req.Messages[1]
    if user.Role != openai.ChatMessageRoleUser {
        t.Fatalf("second message role: got %q", user.Role)
    }
    if !strings.Contains(user.Content, "=== BUSINESS CONTENT ===\nwe sell laser sensors") {
        t.Fatalf("user prompt missing business section:\n%s", user.Content)
    }
    if !strings.Contains(user.Content, "=== TRADEMARK CLASSES REFERENCE ===\nClass 9 ...reference...") {
        t.Fatalf("user prompt missing reference section:\n%s", user.Content)
    }
}

func TestRequest_TrimsAnswer(t *testing.T) {
    fake := &fakeClient{resp: completionWith("\n  Category 35, advertising  \n")}
    c := &Classifier{Client: fake, Model: "gpt-4o"}
    raw, err := c.Request(context.Background(), "b", "r")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if raw != "Category 35, advertising" {
        t.Fatalf("raw: got %q", raw)
    }
}

func TestRequest_TransportFailure(t *testing.T) {
    cause := errors.New("connection refused")
    c := &Classifier{Client: &fakeClient{err: cause}, Model: "gpt-4o"}
    _, err := c.Request(context.Background(), "b", "r")
    var reqErr *RequestError
    if !errors.As(err, &reqErr) {
        t.Fatalf("err: got %T %v, want *RequestError", err, err)
    }
    if !errors.Is(err, cause) {
        t.Fatalf("cause not wrapped: %v", err)
    }
}

func TestRequest_NoChoices(t *testing.T) {
    c := &Classifier{Client: &fakeClient{}, Model: "gpt-4o"}
    _, err := c.Request(context.Background(), "b", "r")
    var reqErr *RequestError
    if !errors.As(err, &reqErr) {
        t.Fatalf("err: got %T %v, want *RequestError", err, err)
    }
}
