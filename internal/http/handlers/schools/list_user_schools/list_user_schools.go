package listuserschools

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/list_user_schools"
	"collegereminders/internal/http/handlers/response"
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

type Result struct {
	Schools []response.School `json:"schools"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := service.Input{}
	if raw := r.URL.Query().Get("is_active"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			response.RenderError(rw, "invalid is_active query parameter", http.StatusBadRequest)
			return
		}
		input.IsActiveEquals = c.NewOptional(isActive, true)
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		if !response.RenderAuthError(rw, err) {
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, Result{Schools: response.Schools(result.Schools)}, http.StatusOK)
}
