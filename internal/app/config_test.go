package app

import (
    "os"
    "path/filepath"
    "testing"
)

func TestApplyEnvToConfig_FillsUnsetFields(t *testing.T) {
    t.Setenv("LLM_BASE_URL", "https://llm.example.com/v1")
    t.Setenv("LLM_MODEL", "gpt-4o-mini")
    t.Setenv("LLM_API_KEY", "secret")
    t.Setenv("LISTEN_ADDR", ":8080")
    t.Setenv("CLASSES_URL", "https://mirror.example.com/ec2/")
    t.Setenv("AZURE_OPENAI", "true")

    var cfg Config
    ApplyEnvToConfig(&cfg)

    if cfg.LLMBaseURL != "https://llm.example.com/v1" {
        t.Fatalf("base url: got %q", cfg.LLMBaseURL)
    }
    if cfg.LLMModel != "gpt-4o-mini" {
        t.Fatalf("model: got %q", cfg.LLMModel)
    }
    if cfg.LLMAPIKey != "secret" {
        t.Fatalf("key: got %q", cfg.LLMAPIKey)
    }
    if cfg.ListenAddr != ":8080" {
        t.Fatalf("listen: got %q", cfg.ListenAddr)
    }
    if cfg.ClassesURL != "https://mirror.example.com/ec2/" {
        t.Fatalf("classes url: got %q", cfg.ClassesURL)
    }
    if !cfg.AzureOpenAI {
        t.Fatalf("azure flag not set")
    }
}

func TestApplyEnvToConfig_ExplicitValuesWin(t *testing.T) {
    t.Setenv("LLM_BASE_URL", "https://env.example.com")
    cfg := Config{LLMBaseURL: "https://flag.example.com"}
    ApplyEnvToConfig(&cfg)
    if cfg.LLMBaseURL != "https://flag.example.com" {
        t.Fatalf("base url: got %q", cfg.LLMBaseURL)
    }
}

func TestApplyEnvToConfig_AzureAliases(t *testing.T) {
    t.Setenv("AZURE_AI_ENDPOINT", "https://res.openai.azure.com")
    t.Setenv("AZURE_AI_MODEL", "gpt-4o")
    t.Setenv("AZURE_AI_API_KEY", "azkey")

    var cfg Config
    ApplyEnvToConfig(&cfg)

    if cfg.LLMBaseURL != "https://res.openai.azure.com" {
        t.Fatalf("base url: got %q", cfg.LLMBaseURL)
    }
    if cfg.LLMModel != "gpt-4o" {
        t.Fatalf("model: got %q", cfg.LLMModel)
    }
    if cfg.LLMAPIKey != "azkey" {
        t.Fatalf("key: got %q", cfg.LLMAPIKey)
    }
}

func TestLoadConfigFile_YAML(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.yaml")
    content := `listen: ":9000"
llm:
  base: https://llm.example.com/v1
  model: gpt-4o
  key: secret
  azure: true
classes:
  url: https://mirror.example.com/ec2/
verbose: true
`
    if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
        t.Fatalf("write: %v", err)
    }

    fc, err := LoadConfigFile(path)
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    var cfg Config
    MergeFileConfig(&cfg, fc)

    if cfg.ListenAddr != ":9000" || cfg.LLMBaseURL != "https://llm.example.com/v1" || !cfg.AzureOpenAI || !cfg.Verbose {
        t.Fatalf("merged config: %+v", cfg)
    }
    if cfg.ClassesURL != "https://mirror.example.com/ec2/" {
        t.Fatalf("classes url: got %q", cfg.ClassesURL)
    }
}

func TestMergeFileConfig_DoesNotOverrideFlags(t *testing.T) {
    fc := FileConfig{Listen: ":9000"}
    cfg := Config{ListenAddr: ":5000"}
    MergeFileConfig(&cfg, fc)
    if cfg.ListenAddr != ":5000" {
        t.Fatalf("listen: got %q", cfg.ListenAddr)
    }
}
