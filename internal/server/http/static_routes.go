package httpserver

import "net/http"

// RegisterStaticRoutes 把前端静态文件挂在 / 下；dir 为空时 / 跳到变体列表。
func RegisterStaticRoutes(mux *http.ServeMux, dir string) {
	if mux == nil {
		return
	}
	if dir != "" {
		mux.Handle("/", http.FileServer(http.Dir(dir)))
		return
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/api/variants", http.StatusFound)
	})
}
