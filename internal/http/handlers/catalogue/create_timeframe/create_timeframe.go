package createtimeframe

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/create_timeframe"
	"collegereminders/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	Name    string  `json:"name"`
	Kind    string  `json:"type"`
	Formula *string `json:"formula"`
}

type Result struct {
	Timeframe response.Timeframe `json:"timeframe"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(0, 128)),
		validation.Field(&i.Kind, validation.Required, validation.In("now", "relative", "absolute")),
		validation.Field(&i.Formula, validation.Length(0, 32)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}
	kind, err := timeframe.ParseKind(input.Kind)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{Name: input.Name, Kind: kind}
	if input.Formula != nil {
		serviceInput.Formula = c.NewOptional(*input.Formula, true)
	}
	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case response.RenderAuthError(rw, err):
		case errors.Is(err, timeframe.ErrInvalidTimeframeFormula), errors.Is(err, timeframe.ErrInvalidTimeframeKind):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, Result{Timeframe: response.NewTimeframe(result.Timeframe)}, http.StatusCreated)
}
