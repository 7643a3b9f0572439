package listcategories

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/list_categories"
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
	Categories []response.Category `json:"categories"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	categories := make([]response.Category, 0, len(result.Categories))
	for _, c := range result.Categories {
		categories = append(categories, response.NewCategory(c))
	}
	response.Render(rw, Result{Categories: categories}, http.StatusOK)
}
