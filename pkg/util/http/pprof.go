package httputil

import (
	"net/http"
	"net/http/pprof"
)

// Handler returns the handler of the pprof service. Profiling endpoints are
// registered on a fresh mux so nothing leaks into http.DefaultServeMux.
func Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
