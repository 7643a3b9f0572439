package digestsender

import (
	c "collegereminders/internal/core/domain/common"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessageCreator struct {
	params []*twilioApi.CreateMessageParams
	err    error
}

func (f *fakeMessageCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = append(f.params, params)
	return &twilioApi.ApiV2010Message{}, f.err
}

type fakeEmailAPI struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (f *fakeEmailAPI) SendEmail(
	ctx context.Context,
	params *ses.SendEmailInput,
	optFns ...func(*ses.Options),
) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	return &ses.SendEmailOutput{}, f.err
}

func TestTwilioSMSSender(t *testing.T) {
	api := &fakeMessageCreator{}
	sender := newTwilioSMSSender(api, "+15550000000")

	err := sender.SendSMS(context.Background(), c.PhoneNumber("+15551234567"), "Write essay")

	require.Nil(t, err)
	require.Len(t, api.params, 1)
	assert.Equal(t, "+15551234567", *api.params[0].To)
	assert.Equal(t, "+15550000000", *api.params[0].From)
	assert.Equal(t, "Write essay", *api.params[0].Body)
}

func TestTwilioSMSSenderError(t *testing.T) {
	api := &fakeMessageCreator{err: errors.New("twilio is down")}
	sender := newTwilioSMSSender(api, "+15550000000")

	err := sender.SendSMS(context.Background(), c.PhoneNumber("+15551234567"), "Write essay")

	assert.EqualError(t, err, "twilio is down")
}

func TestTwilioSMSSenderCanceledContext(t *testing.T) {
	api := &fakeMessageCreator{}
	sender := newTwilioSMSSender(api, "+15550000000")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.SendSMS(ctx, c.PhoneNumber("+15551234567"), "Write essay")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, api.params)
}

func TestSESEmailSender(t *testing.T) {
	api := &fakeEmailAPI{}
	sender := newSESEmailSender(api, "reminders@example.com")

	err := sender.SendEmail(context.Background(), c.NewEmail("student@example.com"), "Today", "Write essay")

	require.Nil(t, err)
	require.Len(t, api.inputs, 1)
	input := api.inputs[0]
	assert.Equal(t, "reminders@example.com", aws.ToString(input.Source))
	assert.Equal(t, []string{"student@example.com"}, input.Destination.ToAddresses)
	assert.Equal(t, "Today", aws.ToString(input.Message.Subject.Data))
	assert.Equal(t, "Write essay", aws.ToString(input.Message.Body.Text.Data))
}
