package filter_options_get

import (
	"encoding/json"
	"net/http"

	"laundry-admin/internal/dto"
	"laundry-admin/pkg/logger"
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
	options := h.service.FilterOptions()

	response := dto.FilterOptions{
		CustomerNames: options.CustomerNames,
		CampNames:     options.CampNames,
		RoomNumbers:   options.RoomNumbers,
		Services:      options.Services,
		PickupMethods: options.PickupMethods,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
