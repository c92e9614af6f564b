package delivery_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	deliveryID := mux.Vars(r)["id"]

	var detailsUpdateDTO dto.DeliveryDetailsUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&detailsUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryModifyEntity := entities.DeliveryModify{
		ID:               deliveryID,
		ScheduledDate:    detailsUpdateDTO.ScheduledDate,
		DeliveryFee:      detailsUpdateDTO.DeliveryFee,
		RecipientName:    detailsUpdateDTO.RecipientName,
		RecipientPhone:   detailsUpdateDTO.RecipientPhone,
		DeliveryLocation: detailsUpdateDTO.DeliveryLocation,
	}

	deliveryEntity, err := h.service.UpdateDeliveryDetails(r.Context(), deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewDeliveryResponse(deliveryEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
