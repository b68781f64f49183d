package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"laundry-admin/internal/dto"
	"laundry-admin/internal/service/orders"
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
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusDTO dto.OrderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.UpdateStatus(r.Context(), orderID, statusDTO.Status)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orders.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orders.ErrBackendUpdate):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
