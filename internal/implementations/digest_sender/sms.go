package digestsender

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"context"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioSMSSender struct {
	api  messageCreator
	from string
}

func NewTwilioSMSSender(accountSid string, authToken string, from string) *TwilioSMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return newTwilioSMSSender(client.Api, from)
}

func newTwilioSMSSender(api messageCreator, from string) *TwilioSMSSender {
	if api == nil {
		panic(e.NewNilArgumentError("api"))
	}
	return &TwilioSMSSender{api: api, from: from}
}

func (s *TwilioSMSSender) SendSMS(ctx context.Context, to c.PhoneNumber, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(string(to))
	params.SetFrom(s.from)
	params.SetBody(body)
	_, err := s.api.CreateMessage(params)
	return err
}
