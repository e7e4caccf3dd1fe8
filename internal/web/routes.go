package web

import (
	"net/http"
	"os"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/msd/superintendent/internal/assets"
)

type RouterConfig struct {
	API APIV1Deps
	// StaticDir, when set to an existing directory, is served at "/" instead
	// of the embedded preview page.
	StaticDir string
	DevMode   bool
	// Extra registers additional routes, e.g. the simulator controls.
	Extra func(r chi.Router)
}

// NewRouter builds the mux used by both the device and the simulator:
// - /api/v1/* for the API
// - / for the preview page
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if cfg.DevMode {
		r.Use(WithDevCORS)
	}

	r.Mount("/api/v1", apiV1Router(cfg.API))
	if cfg.Extra != nil {
		cfg.Extra(r)
	}
	r.Handle("/*", StaticUIHandler(cfg.StaticDir))
	return r
}

// StaticUIHandler serves either the embedded UI or a directory.
func StaticUIHandler(dir string) http.Handler {
	var root http.FileSystem = http.FS(assets.WebUI)
	if dir != "" {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			return http.NotFoundHandler()
		}
		root = http.FS(os.DirFS(dir))
	}
	fileServer := http.FileServer(root)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Clean path to avoid oddities.
		r.URL.Path = path.Clean("/" + r.URL.Path)
		fileServer.ServeHTTP(w, r)
	})
}
