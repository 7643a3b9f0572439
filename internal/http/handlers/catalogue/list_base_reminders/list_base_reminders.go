package listbasereminders

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/list_base_reminders"
	"collegereminders/internal/http/handlers/response"
	"net/http"
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
	BaseReminders []response.BaseReminder `json:"base_reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	baseReminders := make([]response.BaseReminder, 0, len(result.BaseReminders))
	for _, b := range result.BaseReminders {
		baseReminders = append(baseReminders, response.NewBaseReminder(b))
	}
	response.Render(rw, Result{BaseReminders: baseReminders}, http.StatusOK)
}
