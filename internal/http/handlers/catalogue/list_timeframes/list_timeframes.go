package listtimeframes

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/list_timeframes"
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
	Timeframes []response.Timeframe `json:"timeframes"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	timeframes := make([]response.Timeframe, 0, len(result.Timeframes))
	for _, t := range result.Timeframes {
		timeframes = append(timeframes, response.NewTimeframe(t))
	}
	response.Render(rw, Result{Timeframes: timeframes}, http.StatusOK)
}
