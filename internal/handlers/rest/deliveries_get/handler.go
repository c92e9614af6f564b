package deliveries_get

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/handlers/rest/dto"
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
	deliveryEntities, err := h.service.ListDeliveries(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	deliveryDTOs := make([]dto.DeliveryResponse, len(deliveryEntities))
	for i := range deliveryEntities {
		deliveryDTOs[i] = dto.NewDeliveryResponse(&deliveryEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(deliveryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
