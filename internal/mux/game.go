package mux

import (
	"errors"
	"net/http"
	"strconv"

	"teenpatti-server/pkg/teenpatti"
)

func (m *Mux) getPlayGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players := m.defaultPlayers
		if playersStr := r.FormValue("players"); playersStr != "" {
			val, err := strconv.Atoi(playersStr)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, errors.New("players must be an integer"))
				return
			}

			players = val
		}

		// each request gets its own game; nothing is shared between calls
		result, err := teenpatti.PlayGame(players)
		if err != nil {
			var pce teenpatti.PlayerCountError
			if errors.As(err, &pce) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
