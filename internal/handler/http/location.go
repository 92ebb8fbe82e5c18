package http

import (
	"net/http"

	"github.com/qcc-attendance/attendance-backend-go/internal/domain/geofence"
	"github.com/qcc-attendance/attendance-backend-go/internal/handler/http/response"
)

type LocationHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	catalog geofence.CatalogRepository
}

func NewLocationHandler(catalog geofence.CatalogRepository) LocationHandler {
	return &locationHandlerImpl{catalog: catalog}
}

// ListActive implements LocationHandler.
func (h *locationHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	locations, err := h.catalog.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]geofence.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		result = append(result, geofence.NewLocationResponse(loc))
	}

	response.Success(w, result)
}
