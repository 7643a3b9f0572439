package digestready

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/services"
	senddigest "collegereminders/internal/core/services/send_digest"
	"collegereminders/internal/rabbitmq"
	"collegereminders/internal/rabbitmq/schema"
	"context"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[senddigest.Input, senddigest.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[senddigest.Input, senddigest.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

// Consume starts delivering digests in the background. Every message is acked
// once handled, failed deliveries are logged and not retried.
func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "")
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			c.handle(context.Background(), delivery.Body)
			c.ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) handle(ctx context.Context, body []byte) {
	message := &schema.Digest{}
	if err := message.Unmarshal(body); err != nil {
		c.log.Error(ctx, "Could not unmarshal digest.", logging.Entry("err", err), logging.Entry("body", string(body)))
		return
	}

	c.log.Info(ctx, "Got digest for sending.", logging.Entry("userID", message.UserID), logging.Entry("date", message.Date))
	result, err := c.service.Run(ctx, senddigest.Input{Digest: message.ToDigest()})
	if err != nil {
		c.log.Error(
			ctx,
			"Could not send digest, service returned an error.",
			logging.Entry("userID", message.UserID),
			logging.Entry("err", err),
		)
		return
	}
	c.log.Info(
		ctx,
		"Digest has been handled.",
		logging.Entry("userID", message.UserID),
		logging.Entry("channel", result.Channel.String()),
	)
}

func (c *Consumer) ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
