package app

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"

	"go0183/internal/config"
	"go0183/internal/nmea"
	"go0183/internal/web"
)

// fixMessage is the JSON document published for each position fix.
type fixMessage struct {
	Receiver string `json:"receiver"`
	Date     string `json:"date,omitempty"`
	*web.FixSnapshot
}

// Publisher publishes position fixes to an MQTT broker.
type Publisher struct {
	client mqtt.Client
	topic  string
	logger *logrus.Logger
}

// NewPublisher connects to the broker and returns a fix publisher.
func NewPublisher(cfg config.MQTT, logger *logrus.Logger) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	logger.WithFields(logrus.Fields{
		"broker": cfg.Broker,
		"topic":  cfg.Topic,
	}).Info("Connected to MQTT broker")

	return &Publisher{
		client: client,
		topic:  cfg.Topic,
		logger: logger,
	}, nil
}

// PublishFix publishes one position fix as retained JSON so late
// subscribers get the last known position. States without a usable
// position are skipped.
func (p *Publisher) PublishFix(receiver string, g nmea.GNSSState) error {
	fix := web.NewFixSnapshot(g)
	if fix == nil {
		return nil
	}

	msg := fixMessage{
		Receiver:    receiver,
		FixSnapshot: fix,
	}
	if g.Date.Valid {
		msg.Date = fmt.Sprintf("%04d-%02d-%02d", g.Date.Year, g.Date.Month, g.Date.Day)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal fix: %w", err)
	}

	token := p.client.Publish(p.topic, 0, true, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish fix: %w", token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
