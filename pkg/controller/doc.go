// Package controller contains the HTTP middlewares and helper handlers the
// API server wraps around its routes: CORS, request scoped logging with
// request IDs, and pprof.
package controller
