package notifier

import (
	"context"

	"innkeeper/internal/pkg/config"
	"innkeeper/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the broker-facing half of the occupancy event relay.
type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
	Close() error
}

// AMQPPublisher delivers occupancy events to a durable queue with
// persistent messages, so consumers survive broker restarts.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     config.AMQPConfig
}

func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to message broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errs.Wrap(err, "failed to open broker channel")
	}

	_, err = ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, errs.Wrap(err, "failed to declare queue")
	}

	return &AMQPPublisher{conn: conn, channel: ch, cfg: cfg}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.PublishTimeout)
	defer cancel()

	err := p.channel.PublishWithContext(ctx,
		"",    // default exchange
		topic, // routing key = queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
