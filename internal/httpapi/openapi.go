package httpapi

import "net/http"

// handleOpenAPI serves the OpenAPI 3 document for the analysis operation.
// Agent platforms register the service as a tool by fetching this
// document and pointing its server entry at the deployed host.
func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
    writeJSON(w, http.StatusOK, openAPIDocument())
}

func openAPIDocument() map[string]any {
    recordSchema := map[string]any{
        "type": "object",
        "properties": map[string]any{
            "category_number": map[string]any{"type": "integer"},
            "category_name":   map[string]any{"type": "string"},
            "confidence":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
            "terms":           map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
            "raw_line":        map[string]any{"type": "string"},
        },
    }
    resultSchema := map[string]any{
        "type": "object",
        "properties": map[string]any{
            "source":          map[string]any{"type": "string"},
            "classifications": map[string]any{"type": "array", "items": recordSchema},
            "raw":             map[string]any{"type": "string"},
        },
    }
    errorSchema := map[string]any{
        "type": "object",
        "properties": map[string]any{
            "error": map[string]any{"type": "string"},
        },
    }
    return map[string]any{
        "openapi": "3.0.3",
        "info": map[string]any{
            "title":       "Trademark Classifier",
            "description": "Classifies a business website or description into Nice Classification trademark classes.",
            "version":     "1.0.0",
        },
        "paths": map[string]any{
            "/analyse": map[string]any{
                "post": map[string]any{
                    "operationId": "classifyTrademarks",
                    "summary":     "Classify a business into trademark classes",
                    "requestBody": map[string]any{
                        "content": map[string]any{
                            "application/json": map[string]any{
                                "schema": map[string]any{
                                    "type": "object",
                                    "properties": map[string]any{
                                        "url":                  map[string]any{"type": "string", "description": "Business website URL"},
                                        "business_description": map[string]any{"type": "string", "description": "Free-text description of the business"},
                                    },
                                },
                            },
                        },
                    },
                    "responses": map[string]any{
                        "200": map[string]any{
                            "description": "Ranked trademark classes with specification terms",
                            "content": map[string]any{
                                "application/json": map[string]any{"schema": resultSchema},
                            },
                        },
                        "400": map[string]any{
                            "description": "Missing or unusable input",
                            "content": map[string]any{
                                "application/json": map[string]any{"schema": errorSchema},
                            },
                        },
                        "500": map[string]any{
                            "description": "Reference fetch or AI analysis failure",
                            "content": map[string]any{
                                "application/json": map[string]any{"schema": errorSchema},
                            },
                        },
                    },
                },
            },
        },
    }
}
