package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/entities"
	"backoffice/internal/handlers/rest/dto"
	"backoffice/internal/service/delivery"
	"backoffice/pkg/logger"
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
	var deliveryCreateDTO dto.DeliveryCreateRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryCreateEntity := entities.DeliveryCreate{
		OrderID:          deliveryCreateDTO.OrderID,
		TrackingNumber:   deliveryCreateDTO.TrackingNumber,
		ScheduledDate:    deliveryCreateDTO.ScheduledDate,
		DeliveryFee:      deliveryCreateDTO.DeliveryFee,
		RecipientName:    deliveryCreateDTO.RecipientName,
		RecipientPhone:   deliveryCreateDTO.RecipientPhone,
		DeliveryLocation: deliveryCreateDTO.DeliveryLocation,
	}
	if deliveryCreateDTO.Status != nil {
		statusType := entities.DeliveryStatusType(*deliveryCreateDTO.Status)
		deliveryCreateEntity.Status = &statusType
	}

	deliveryEntity, err := h.service.CreateDelivery(r.Context(), deliveryCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidOrderID),
			errors.Is(err, delivery.ErrUnknownStatus),
			errors.Is(err, delivery.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrDeliveryExists),
			errors.Is(err, delivery.ErrTrackingNumberTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewDeliveryResponse(deliveryEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
