package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"time"

	"todo/config"
	"todo/internal/domain/service"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	mqttConnectTimeout = 10 * time.Second
	mqttQuiesceMillis  = 250
)

// mqttPublisher implements EventPublisher on an MQTT broker.
// Each event goes to <topic>/<event type>.
type mqttPublisher struct {
	client mqtt.Client
	topic  string
	qos    byte
	logger *slog.Logger
}

// NewMQTTPublisher connects to the broker and returns a publisher bound to cfg.Topic.
func NewMQTTPublisher(cfg *config.MQTTConfig, logger *slog.Logger) (service.EventPublisher, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "todo-" + uuid.NewString()
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(mqttConnectTimeout)
	opts.OnConnect = func(mqtt.Client) {
		logger.Info("Connected to MQTT broker", slog.String("broker", cfg.Broker))
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", slog.Any("error", err))
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, errors.Errorf("timed out connecting to MQTT broker %s", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to MQTT broker %s", cfg.Broker)
	}

	return newMQTTPublisher(client, cfg.Topic, cfg.QoS, logger), nil
}

func newMQTTPublisher(client mqtt.Client, topic string, qos byte, logger *slog.Logger) *mqttPublisher {
	return &mqttPublisher{
		client: client,
		topic:  topic,
		qos:    qos,
		logger: logger,
	}
}

// PublishAuditEvent publishes the event as JSON and waits for the broker or ctx.
func (p *mqttPublisher) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	topic := path.Join(p.topic, event.Type)
	token := p.client.Publish(topic, p.qos, false, data)

	select {
	case <-token.Done():
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "publish to %s", topic)
	}

	if err := token.Error(); err != nil {
		return errors.Wrapf(err, "publish to %s", topic)
	}

	p.logger.Debug("[MQTT] Event published",
		slog.String("topic", topic),
		slog.String("event_id", event.EventID),
	)

	return nil
}

// Close disconnects from the broker after in-flight work drains.
func (p *mqttPublisher) Close() error {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(mqttQuiesceMillis)
	}

	return nil
}
