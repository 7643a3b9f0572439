package digestsender

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type emailAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESEmailSender struct {
	ses emailAPI
	// This address must be verified with Amazon SES.
	sender string
}

func NewSESEmailSender(awsConfig aws.Config, sender string) *SESEmailSender {
	return newSESEmailSender(ses.NewFromConfig(awsConfig), sender)
}

func newSESEmailSender(api emailAPI, sender string) *SESEmailSender {
	if api == nil {
		panic(e.NewNilArgumentError("api"))
	}
	return &SESEmailSender{ses: api, sender: sender}
}

func (s *SESEmailSender) SendEmail(ctx context.Context, to c.Email, subject string, body string) error {
	_, err := s.ses.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{string(to)},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
			},
		},
	})
	return err
}
