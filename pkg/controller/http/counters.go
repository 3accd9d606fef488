package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// handleNotImplemented answers routed counter actions that have no behavior yet
func handleNotImplemented(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, goerr.New(action+" is not implemented", goerr.V("action", action)), http.StatusNotImplemented)
	}
}
