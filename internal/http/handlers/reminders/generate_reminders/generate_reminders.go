package generatereminders

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/generate_reminders"
	"collegereminders/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"
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
	input := service.Input{}
	if raw := r.URL.Query().Get("school_id"); raw != "" {
		schoolID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || schoolID <= 0 {
			response.RenderError(rw, "invalid school_id query parameter", http.StatusBadRequest)
			return
		}
		input.SchoolID = c.NewOptional(school.ID(schoolID), true)
	}

	result, err := h.service.Run(r.Context(), input)
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

	// The body is the bare list of groups.
	response.Render(rw, response.Groups(result.Groups), http.StatusOK)
}
