package updateuser

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/update_user"
	"collegereminders/internal/http/handlers/response"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// E.164, the format Twilio accepts.
var phoneNumberRegexp = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

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
	Name                 *string `json:"name"`
	PhoneNumber          *string `json:"phone_number"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
}

type Result struct {
	User response.User `json:"user"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Length(0, 256)),
		validation.Field(&i.PhoneNumber, validation.Match(phoneNumberRegexp)),
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

	serviceInput := service.Input{}
	if input.Name != nil {
		serviceInput.DoNameUpdate = true
		serviceInput.Name = strings.TrimSpace(*input.Name)
	}
	if input.PhoneNumber != nil {
		serviceInput.DoPhoneNumberUpdate = true
		phoneNumber := strings.TrimSpace(*input.PhoneNumber)
		serviceInput.PhoneNumber = c.NewOptional(c.PhoneNumber(phoneNumber), phoneNumber != "")
	}
	if input.NotificationsEnabled != nil {
		serviceInput.DoNotificationsEnabledUpdate = true
		serviceInput.NotificationsEnabled = *input.NotificationsEnabled
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		if !response.RenderAuthError(rw, err) {
			response.RenderInternalError(rw)
		}
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}
