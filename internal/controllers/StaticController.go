package controllers

import (
	"net/http"
	"vcheck/internal/providers"

	"github.com/spf13/afero"
)

const indexFile = "/index.html"

// StaticController serves the landing page and its assets.
type StaticController struct {
	fs     afero.Fs
	files  http.Handler
	logger providers.Logger
}

func NewStaticController(fs afero.Fs, logger providers.Logger) *StaticController {
	return &StaticController{
		fs:     fs,
		files:  http.StripPrefix("/static/", http.FileServer(afero.NewHttpFs(fs).Dir("/"))),
		logger: logger,
	}
}

func (sc *StaticController) Index(w http.ResponseWriter, r *http.Request) {
	page, err := afero.ReadFile(sc.fs, indexFile)
	if err != nil {
		sc.logger.Errorf(providers.TypeGet, "Landing page unavailable: %s", err)
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(page)
	}
}

func (sc *StaticController) Assets(w http.ResponseWriter, r *http.Request) {
	sc.files.ServeHTTP(w, r)
}
