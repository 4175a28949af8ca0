package mux

import (
	"net/http"

	"teenpatti-server/internal/config"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version        string
	defaultPlayers int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:         gmux.NewRouter(),
		version:        version,
		defaultPlayers: config.Instance().Players,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/play_game").Handler(this.getPlayGame())

	return this
}
