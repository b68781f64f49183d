package filters_put

import (
	"encoding/json"
	"net/http"

	"laundry-admin/internal/dto"
	"laundry-admin/internal/entities"
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
	var filtersDTO dto.Filters
	err := json.NewDecoder(r.Body).Decode(&filtersDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.service.StageFilters(entities.Filters{
		CustomerName:  filtersDTO.CustomerName,
		CampName:      filtersDTO.CampName,
		RoomNumber:    filtersDTO.RoomNumber,
		Service:       filtersDTO.Service,
		PaymentStatus: filtersDTO.PaymentStatus,
		PickupMethod:  filtersDTO.PickupMethod,
		MinPrice:      filtersDTO.MinPrice,
		MaxPrice:      filtersDTO.MaxPrice,
	})

	w.WriteHeader(http.StatusNoContent)
}
