package main

import (
    "context"
    "errors"
    "flag"
    "net/http"
    "os"
    "os/signal"
    "strings"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/tmclassify/internal/app"
    "github.com/hyperifyio/tmclassify/internal/httpapi"
)

func main() {
    // Logging setup
    zerolog.TimeFieldFormat = time.RFC3339
    log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

    // .env is optional; missing files are fine.
    _ = godotenv.Load()

    var (
        listenAddr string
        staticDir  string
        llmBaseURL string
        llmModel   string
        llmKey     string
        azure      bool
        classesURL string
        configPath string
        verbose    bool
    )

    flag.StringVar(&listenAddr, "listen", "", "HTTP listen address (default :5000)")
    flag.StringVar(&staticDir, "static", "", "Directory with the static UI (default ./static)")
    flag.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL")
    flag.StringVar(&llmModel, "llm.model", "", "Model or deployment name")
    flag.StringVar(&llmKey, "llm.key", "", "API key for the model endpoint")
    flag.BoolVar(&azure, "llm.azure", false, "Treat the endpoint as an Azure OpenAI resource")
    flag.StringVar(&classesURL, "classes.url", "", "Override the trademark classes reference URL")
    flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
    flag.BoolVar(&verbose, "v", false, "Verbose logging")
    flag.Parse()

    cfg := app.Config{
        ListenAddr:  listenAddr,
        StaticDir:   staticDir,
        LLMBaseURL:  llmBaseURL,
        LLMModel:    llmModel,
        LLMAPIKey:   llmKey,
        AzureOpenAI: azure,
        ClassesURL:  classesURL,
        Verbose:     verbose,
    }
    if strings.TrimSpace(configPath) != "" {
        fc, err := app.LoadConfigFile(configPath)
        if err != nil {
            log.Fatal().Err(err).Str("path", configPath).Msg("read config file")
        }
        app.MergeFileConfig(&cfg, fc)
    }
    app.ApplyEnvToConfig(&cfg)
    if cfg.ListenAddr == "" {
        cfg.ListenAddr = ":5000"
    }

    if cfg.Verbose {
        zerolog.SetGlobalLevel(zerolog.DebugLevel)
    } else {
        zerolog.SetGlobalLevel(zerolog.InfoLevel)
    }
    if cfg.LLMBaseURL == "" {
        log.Warn().Msg("llm endpoint not configured; classification requests will fail until LLM_BASE_URL is set")
    }

    service := app.New(cfg)
    server := &httpapi.Server{Service: service, StaticDir: cfg.StaticDir}

    httpServer := &http.Server{
        Addr:              cfg.ListenAddr,
        Handler:           server.Router(),
        ReadHeaderTimeout: 10 * time.Second,
    }

    go func() {
        log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
        if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            log.Fatal().Err(err).Msg("http server")
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := httpServer.Shutdown(ctx); err != nil {
        log.Error().Err(err).Msg("shutdown")
    }
    log.Info().Msg("stopped")
}
