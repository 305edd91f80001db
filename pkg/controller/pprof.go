package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where PprofMux expects to be mounted. pprof.Index resolves
// named profiles (heap, goroutine, ...) only under this prefix.
const PprofPrefix = "/debug/pprof/"

// PprofMux serves the net/http/pprof handlers under PprofPrefix.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	for name, h := range map[string]http.HandlerFunc{
		"":        pprof.Index,
		"cmdline": pprof.Cmdline,
		"profile": pprof.Profile,
		"symbol":  pprof.Symbol,
		"trace":   pprof.Trace,
	} {
		mux.HandleFunc(PprofPrefix+name, h)
	}

	return mux
}
