package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// ErrorResponse is the JSON envelope returned for handled API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// FrontendHandler serves the static frontend build, falling back to the index
// file for client-side routes.
type FrontendHandler struct {
	staticPath string
	indexPath  string
}

func NewFrontendHandler(staticPath, indexPath string) *FrontendHandler {
	return &FrontendHandler{staticPath: staticPath, indexPath: indexPath}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticPath, filepath.Clean(r.URL.Path))

	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.IsDir()) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
}
