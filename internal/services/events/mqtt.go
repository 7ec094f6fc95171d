package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/kits/internal/common/clock"
	"github.com/KirkDiggler/kits/internal/common/logging"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultPublishTimeout bounds how long a publish is waited on in the background
const DefaultPublishTimeout = 5 * time.Second

// Publisher is the part of an MQTT client used to send notifications
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTClientConfig holds the broker connection settings
type MQTTClientConfig struct {
	Broker         string
	ClientID       string
	Username       string
	Password       string
	ConnectTimeout time.Duration
	Logger         logrus.FieldLogger
}

// NewMQTTClient connects to the broker. The client ID gets a random suffix so
// several bots can share a broker.
func NewMQTTClient(cfg *MQTTClientConfig) (mqtt.Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Broker == "" {
		return nil, errors.New("broker cannot be empty")
	}

	logger := logging.OrDefault(cfg.Logger)
	clientID := fmt.Sprintf("%s_%s", cfg.ClientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			logger.WithField("client_id", clientID).Info("connected to MQTT broker")
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.WithError(err).Warn("MQTT connection lost")
		})

	client := mqtt.NewClient(opts)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("timed out connecting to MQTT broker %s", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	return client, nil
}

// MQTTNotifierConfig holds configuration for the MQTT notifier
type MQTTNotifierConfig struct {
	Publisher Publisher

	// TopicPrefix is prepended to redeem/<status>
	TopicPrefix string

	QoS            byte
	PublishTimeout time.Duration
	Clock          clock.Clock
	Logger         logrus.FieldLogger
}

// RedeemNotification is the JSON payload published for every redemption
type RedeemNotification struct {
	RedemptionID string    `json:"redemption_id"`
	PlayerID     string    `json:"player_id"`
	PlayerName   string    `json:"player_name"`
	Kit          string    `json:"kit"`
	Status       string    `json:"status"`
	Rejected     int       `json:"rejected"`
	Commands     []string  `json:"commands,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// MQTTNotifier publishes redemptions to <prefix>/redeem/<status>
type MQTTNotifier struct {
	publisher Publisher
	prefix    string
	qos       byte
	timeout   time.Duration
	clock     clock.Clock
	logger    logrus.FieldLogger

	pending sync.WaitGroup
}

// NewMQTTNotifier creates an MQTTNotifier
func NewMQTTNotifier(cfg *MQTTNotifierConfig) (*MQTTNotifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Publisher == nil {
		return nil, errors.New("publisher cannot be nil")
	}

	prefix := strings.TrimSuffix(cfg.TopicPrefix, "/")
	if prefix == "" {
		prefix = "kits"
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &MQTTNotifier{
		publisher: cfg.Publisher,
		prefix:    prefix,
		qos:       cfg.QoS,
		timeout:   timeout,
		clock:     clk,
		logger:    logging.OrDefault(cfg.Logger),
	}, nil
}

// Topic returns the topic a status is published to
func (n *MQTTNotifier) Topic(event *RedeemEvent) string {
	return fmt.Sprintf("%s/redeem/%s", n.prefix, strings.ToLower(string(event.Status)))
}

// Listen is a Listener; register it for both post and failed redemptions.
// Delivery is confirmed in the background.
func (n *MQTTNotifier) Listen(_ context.Context, event *RedeemEvent) {
	commands := event.Commands
	if commands == nil {
		commands = event.OriginalCommands
	}

	payload, err := json.Marshal(&RedeemNotification{
		RedemptionID: event.RedemptionID,
		PlayerID:     event.Player.ID,
		PlayerName:   event.Player.Name,
		Kit:          event.Kit.Name,
		Status:       string(event.Status),
		Rejected:     len(event.Rejected),
		Commands:     commands,
		Timestamp:    n.clock.Now().UTC(),
	})
	if err != nil {
		n.logger.WithError(err).Error("failed to encode redeem notification")
		return
	}

	topic := n.Topic(event)
	token := n.publisher.Publish(topic, n.qos, false, payload)

	n.pending.Add(1)
	go func() {
		defer n.pending.Done()

		if !token.WaitTimeout(n.timeout) {
			n.logger.WithField("topic", topic).Warn("timed out publishing redeem notification")
			return
		}
		if err := token.Error(); err != nil {
			n.logger.WithError(err).WithField("topic", topic).Error("failed to publish redeem notification")
		}
	}()
}

// Wait blocks until every publish started so far is confirmed or timed out
func (n *MQTTNotifier) Wait() {
	n.pending.Wait()
}
