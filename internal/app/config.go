package app

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"

    yaml "gopkg.in/yaml.v3"
)

// Config carries everything the service needs. Flag values win over the
// config file, which wins over environment variables.
type Config struct {
    // ListenAddr is the HTTP listen address, e.g. ":5000".
    ListenAddr string
    // StaticDir holds the single-page UI served at /.
    StaticDir string

    // LLMBaseURL is the OpenAI-compatible endpoint. Empty means the
    // classifier is unconfigured and every request fails fast.
    LLMBaseURL string
    LLMModel   string
    LLMAPIKey  string
    // AzureOpenAI selects Azure-style authentication and routing, with
    // LLMModel doubling as the deployment name.
    AzureOpenAI bool

    // ClassesURL overrides the canonical taxonomy page. Empty uses the
    // default TMclass address.
    ClassesURL string

    Verbose bool
}

// FileConfig is the optional single-file configuration schema.
type FileConfig struct {
    Listen string `yaml:"listen" json:"listen"`
    Static string `yaml:"static" json:"static"`

    LLM struct {
        BaseURL string `yaml:"base" json:"base"`
        Model   string `yaml:"model" json:"model"`
        APIKey  string `yaml:"key" json:"key"`
        Azure   bool   `yaml:"azure" json:"azure"`
    } `yaml:"llm" json:"llm"`

    Classes struct {
        URL string `yaml:"url" json:"url"`
    } `yaml:"classes" json:"classes"`

    Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch filepath.Ext(path) {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// MergeFileConfig fills unset cfg fields from fc.
func MergeFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil {
        return
    }
    if cfg.ListenAddr == "" {
        cfg.ListenAddr = fc.Listen
    }
    if cfg.StaticDir == "" {
        cfg.StaticDir = fc.Static
    }
    if cfg.LLMBaseURL == "" {
        cfg.LLMBaseURL = fc.LLM.BaseURL
    }
    if cfg.LLMModel == "" {
        cfg.LLMModel = fc.LLM.Model
    }
    if cfg.LLMAPIKey == "" {
        cfg.LLMAPIKey = fc.LLM.APIKey
    }
    if !cfg.AzureOpenAI {
        cfg.AzureOpenAI = fc.LLM.Azure
    }
    if cfg.ClassesURL == "" {
        cfg.ClassesURL = fc.Classes.URL
    }
    if !cfg.Verbose {
        cfg.Verbose = fc.Verbose
    }
}
