package createtesttype

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/create_test_type"
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
	Type                string `json:"type"`
	RegistrationMessage string `json:"registration_message"`
	RegistrationDetail  string `json:"registration_detail"`
	AdminMessage        string `json:"admin_message"`
	AdminDetail         string `json:"admin_detail"`
}

type Result struct {
	Test response.Test `json:"test"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Type, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.RegistrationMessage, validation.Length(0, 2048)),
		validation.Field(&i.RegistrationDetail, validation.Length(0, 8192)),
		validation.Field(&i.AdminMessage, validation.Length(0, 2048)),
		validation.Field(&i.AdminDetail, validation.Length(0, 8192)),
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

	result, err := h.service.Run(r.Context(), service.Input{
		Type:                input.Type,
		RegistrationMessage: input.RegistrationMessage,
		RegistrationDetail:  input.RegistrationDetail,
		AdminMessage:        input.AdminMessage,
		AdminDetail:         input.AdminDetail,
	})
	if err != nil {
		switch {
		case response.RenderAuthError(rw, err):
		case errors.Is(err, service.ErrTestTypeNotSet):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, Result{Test: response.NewTest(result.Test)}, http.StatusCreated)
}
