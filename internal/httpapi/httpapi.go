// Package httpapi exposes the classification pipeline over HTTP. It owns
// transport decoding (JSON body vs multipart form), error-to-status
// mapping, the OpenAPI document, and the static UI.
package httpapi

import (
    "bytes"
    "encoding/json"
    "errors"
    "io"
    "net/http"
    "path/filepath"
    "strings"

    "github.com/go-chi/chi/v5"
    chimiddleware "github.com/go-chi/chi/v5/middleware"
    "github.com/go-chi/cors"
    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/tmclassify/internal/app"
    "github.com/hyperifyio/tmclassify/internal/classify"
    "github.com/hyperifyio/tmclassify/internal/report"
)

// maxUploadBytes bounds multipart memory/disk use. Extracted text is
// capped far lower, so oversized uploads gain nothing.
const maxUploadBytes = 32 << 20

// Server routes HTTP requests into the analysis pipeline.
type Server struct {
    Service   *app.Service
    StaticDir string

    // renderPDF defaults to report.WritePDF; tests override it.
    renderPDF func(io.Writer, classify.Result) error
}

// Router builds the chi handler with all routes configured.
func (s *Server) Router() http.Handler {
    r := chi.NewRouter()

    r.Use(chimiddleware.RequestID)
    r.Use(chimiddleware.RealIP)
    r.Use(chimiddleware.Recoverer)
    r.Use(cors.Handler(cors.Options{
        AllowedOrigins: []string{"*"},
        AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
        AllowedHeaders: []string{"*"},
    }))

    r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
        w.Header().Set("Content-Type", "application/json")
        _, _ = w.Write([]byte(`{"status":"ok"}`))
    })

    r.Post("/analyse", s.handleAnalyse)
    r.Post("/analyse/pdf", s.handleAnalysePDF)
    r.Get("/openapi.json", s.handleOpenAPI)

    staticDir := s.StaticDir
    if staticDir == "" {
        staticDir = "static"
    }
    r.Get("/", func(w http.ResponseWriter, req *http.Request) {
        http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
    })
    r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

    return r
}

// analyseRequest is the JSON body form. Either field may be set; the
// multipart form supplies a file or url field instead.
type analyseRequest struct {
    URL         string `json:"url"`
    Description string `json:"business_description"`
}

func (s *Server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
    in, ok := s.decodeInput(w, r)
    if !ok {
        return
    }
    result, err := s.Service.Analyze(r.Context(), in)
    if err != nil {
        writeStageError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAnalysePDF(w http.ResponseWriter, r *http.Request) {
    in, ok := s.decodeInput(w, r)
    if !ok {
        return
    }
    result, err := s.Service.Analyze(r.Context(), in)
    if err != nil {
        writeStageError(w, err)
        return
    }
    render := s.renderPDF
    if render == nil {
        render = report.WritePDF
    }
    // Render into memory first so a failure can still produce an error
    // response instead of a truncated body under a 200.
    var buf bytes.Buffer
    if err := render(&buf, result); err != nil {
        log.Error().Err(err).Msg("pdf rendering failed")
        writeError(w, http.StatusInternalServerError, "Could not render the PDF report.")
        return
    }
    w.Header().Set("Content-Type", "application/pdf")
    w.Header().Set("Content-Disposition", `attachment; filename="classification.pdf"`)
    _, _ = w.Write(buf.Bytes())
}

// decodeInput reads either a multipart form (file field "file", form
// field "url") or a JSON body into the pipeline's input variant. On bad
// input it writes the 400 response itself and returns ok=false.
func (s *Server) decodeInput(w http.ResponseWriter, r *http.Request) (app.Input, bool) {
    var in app.Input

    ct := r.Header.Get("Content-Type")
    if strings.Contains(ct, "multipart/form-data") {
        if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
            writeError(w, http.StatusBadRequest, "Could not read the uploaded file: "+err.Error())
            return in, false
        }
        in.URL = strings.TrimSpace(r.FormValue("url"))
        file, header, err := r.FormFile("file")
        if err == nil {
            defer file.Close()
            data, err := io.ReadAll(file)
            if err != nil {
                writeError(w, http.StatusBadRequest, "Could not read the uploaded file: "+err.Error())
                return in, false
            }
            in.Upload = &app.Upload{Filename: header.Filename, Data: data}
        }
    } else {
        var body analyseRequest
        if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
            writeError(w, http.StatusBadRequest, "Please provide a URL or upload a document.")
            return in, false
        }
        in.URL = strings.TrimSpace(body.URL)
        in.Description = strings.TrimSpace(body.Description)
    }
    return in, true
}

// writeStageError maps a pipeline failure to the status and message for
// its stage. User-correctable input problems are 400; reference and model
// failures are server-side 500s.
func writeStageError(w http.ResponseWriter, err error) {
    var stageErr *app.StageError
    if !errors.As(err, &stageErr) {
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }
    switch stageErr.Stage {
    case app.StageInput:
        writeError(w, http.StatusBadRequest, "Please provide a URL or upload a document.")
    case app.StageDocument:
        writeError(w, http.StatusBadRequest, "Could not read the uploaded file: "+stageErr.Err.Error())
    case app.StageBusiness:
        writeError(w, http.StatusBadRequest, "Could not fetch the provided URL: "+stageErr.Err.Error())
    case app.StageReference:
        log.Error().Err(stageErr.Err).Msg("reference taxonomy fetch failed")
        writeError(w, http.StatusInternalServerError, "Could not fetch trademark classes page: "+stageErr.Err.Error())
    case app.StageAI:
        if errors.Is(stageErr.Err, classify.ErrNotConfigured) {
            // Operator error, not a user error; keep it loud and distinct.
            log.Error().Err(stageErr.Err).Msg("classifier misconfigured")
        } else {
            log.Error().Err(stageErr.Err).Msg("ai analysis failed")
        }
        writeError(w, http.StatusInternalServerError, "AI analysis failed: "+stageErr.Err.Error())
    default:
        writeError(w, http.StatusInternalServerError, stageErr.Error())
    }
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    if err := json.NewEncoder(w).Encode(v); err != nil {
        log.Error().Err(err).Msg("encode response")
    }
}

func writeError(w http.ResponseWriter, status int, msg string) {
    writeJSON(w, status, map[string]string{"error": msg})
}
