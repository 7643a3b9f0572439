package deleteschool

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/delete_school"
	"collegereminders/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	schoolID, err := strconv.ParseInt(chi.URLParam(r, "schoolID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid school ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{SchoolID: school.ID(schoolID)})
	if err != nil {
		switch {
		case response.RenderAuthError(rw, err):
		case errors.Is(err, school.ErrSchoolDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	rw.WriteHeader(http.StatusNoContent)
}
