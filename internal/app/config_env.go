package app

import (
    "os"
    "strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil {
        return
    }

    if cfg.LLMBaseURL == "" {
        // AZURE_AI_ENDPOINT is honoured for parity with existing
        // deployments of the service.
        v := os.Getenv("LLM_BASE_URL")
        if v == "" {
            v = os.Getenv("AZURE_AI_ENDPOINT")
        }
        cfg.LLMBaseURL = v
    }
    if cfg.LLMModel == "" {
        v := os.Getenv("LLM_MODEL")
        if v == "" {
            v = os.Getenv("AZURE_AI_MODEL")
        }
        cfg.LLMModel = v
    }
    if cfg.LLMAPIKey == "" {
        v := os.Getenv("LLM_API_KEY")
        if v == "" {
            v = os.Getenv("AZURE_AI_API_KEY")
        }
        cfg.LLMAPIKey = v
    }

    if cfg.ListenAddr == "" {
        cfg.ListenAddr = os.Getenv("LISTEN_ADDR")
    }
    if cfg.StaticDir == "" {
        cfg.StaticDir = os.Getenv("STATIC_DIR")
    }
    if cfg.ClassesURL == "" {
        cfg.ClassesURL = os.Getenv("CLASSES_URL")
    }

    setBool := func(dst *bool, envKey string) {
        if *dst {
            return
        }
        switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
        case "1", "true", "yes", "on":
            *dst = true
        }
    }
    setBool(&cfg.AzureOpenAI, "AZURE_OPENAI")
    setBool(&cfg.Verbose, "VERBOSE")
}
