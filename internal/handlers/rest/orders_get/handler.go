package orders_get

import (
	"encoding/json"
	"net/http"

	"laundry-admin/internal/dto"
	"laundry-admin/internal/entities"
	"laundry-admin/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	formatter Formatter
}

func New(log handlerLogger, service Service, formatter Formatter) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		formatter: formatter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view := h.service.View()

	response := dto.OrderView{
		Orders:        h.toOrderDTOs(view.Orders),
		Mode:          string(view.Mode),
		Applied:       toFiltersDTO(view.Applied),
		Pending:       toFiltersDTO(view.Pending),
		ShowFilters:   view.ShowFilters,
		HighlightedID: view.HighlightedID,
		TotalCount:    view.TotalCount,
		FilteredCount: view.FilteredCount,
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

func (h *Handler) toOrderDTOs(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, 0, len(orders))
	for i := range orders {
		result = append(result, h.toOrderDTO(&orders[i]))
	}
	return result
}

func (h *Handler) toOrderDTO(order *entities.Order) dto.Order {
	services := make([]dto.Service, 0, len(order.Services))
	for _, service := range order.Services {
		services = append(services, dto.Service{
			ID:    service.ID,
			Name:  service.Name,
			Slug:  service.Slug,
			Price: service.Price,
		})
	}

	var pickupSlot *dto.PickupSlot
	if order.PickupSlot != nil {
		pickupSlot = &dto.PickupSlot{
			ID:   order.PickupSlot.ID,
			Time: order.PickupSlot.Time,
		}
	}

	return dto.Order{
		ID:                  order.ID,
		Title:               order.Title,
		CustomerName:        order.CustomerName,
		RoomNumber:          order.RoomNumber,
		PickupMethod:        order.PickupMethod,
		PaymentConfirmed:    order.PaymentConfirmed,
		TotalPrice:          order.TotalPrice,
		SpecialInstructions: order.SpecialInstructions,
		Status:              order.Status.String(),
		Timestamp:           h.formatter.FormatPerth(order.Timestamp),
		CampName:            order.CampName,
		Services:            services,
		PickupSlot:          pickupSlot,
		DateCreated:         order.DateCreated,
	}
}

func toFiltersDTO(filters entities.Filters) dto.Filters {
	return dto.Filters{
		CustomerName:  filters.CustomerName,
		CampName:      filters.CampName,
		RoomNumber:    filters.RoomNumber,
		Service:       filters.Service,
		PaymentStatus: filters.PaymentStatus,
		PickupMethod:  filters.PickupMethod,
		MinPrice:      filters.MinPrice,
		MaxPrice:      filters.MaxPrice,
	}
}
