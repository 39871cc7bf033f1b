package controllers

import (
	"errors"
	"net/http"
	"strings"
	"vcheck/internal/models"
	"vcheck/internal/providers"
	"vcheck/internal/services"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger     providers.Logger
	search     services.SearchServiceInterface
	comparison services.ComparisonServiceInterface
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func NewApiController(logger providers.Logger, search services.SearchServiceInterface, comparison services.ComparisonServiceInterface) *ApiController {
	return &ApiController{
		logger:     logger,
		search:     search,
		comparison: comparison,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// Search handles GET /search/{query}.
func (ac *ApiController) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.PathValue("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "query must not be empty")
		return
	}

	ac.logger.Infof(providers.GetLogTypeByRequestType(r.Method), "[%s] search %q",
		r.Header.Get(providers.RequestIDHeader), query)
	writeJSON(w, http.StatusOK, ac.search.Search(r.Context(), query))
}

// Compare handles POST /compare.
func (ac *ApiController) Compare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.CompareRequest
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	v := validate.Struct(&payload)
	if !v.Validate() {
		writeError(w, http.StatusBadRequest, v.Errors.One())
		return
	}
	if _, err = models.ParseGogOS(payload.GogOS); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logType := providers.GetLogTypeByRequestType(r.Method)
	result, err := ac.comparison.Compare(r.Context(), payload)
	if err != nil {
		var notFound *models.NotFoundError
		switch {
		case errors.As(err, &notFound):
			ac.logger.Warnf(logType, "[%s] compare %q: %s", r.Header.Get(providers.RequestIDHeader), payload.GameTitle, err)
			writeError(w, http.StatusNotFound, "Error in "+string(notFound.Platform))
		case errors.Is(err, models.ErrUnsupportedOS):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			ac.logger.Errorf(logType, "[%s] compare %q: %s", r.Header.Get(providers.RequestIDHeader), payload.GameTitle, err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
