package handler

import (
	"embed"
	"net/http"
)

//go:embed web/index.html web/login.html
var pages embed.FS

// HandleIndex serves the embedded landing page at GET /.
func HandleIndex(w http.ResponseWriter, r *http.Request) {
	servePage(w, "web/index.html")
}

// HandleLoginPage serves the embedded login page at GET /login.
func HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, "web/login.html")
}

func servePage(w http.ResponseWriter, name string) {
	data, err := pages.ReadFile(name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
