package httpserver

import (
	"log"
	"net/http"
	"time"

	"fairychess/internal/server/game"
)

// Server 把 /api/ 挂到 Handler 上，可选再挂一个静态目录，并记录每个请求的耗时。
type Server struct {
	mux *http.ServeMux
	api *Handler
}

func NewServer(m *game.Manager, webDir string) *Server {
	s := &Server{mux: http.NewServeMux(), api: NewHandler(m)}
	s.mux.Handle("/api/", s.api)
	RegisterStaticRoutes(s.mux, webDir)
	return s
}

func (s *Server) Handler() *Handler { return s.api }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	log.Printf("%s %s %d %v", r.Method, r.URL.Path, rec.status, time.Since(start))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
