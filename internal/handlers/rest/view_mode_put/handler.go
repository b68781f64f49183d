package view_mode_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"laundry-admin/internal/dto"
	"laundry-admin/internal/service/orderview"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var modeDTO dto.ViewModeUpdate
	err := json.NewDecoder(r.Body).Decode(&modeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.SetViewMode(modeDTO.Mode)
	if err != nil {
		switch {
		case errors.Is(err, orderview.ErrInvalidViewMode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
