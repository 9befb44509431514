// Package mqtt publishes bot lifecycle and moderation events to an MQTT
// broker so external tooling can mirror the audit trail.
package mqtt

import (
	"fmt"
	"sync"
	"time"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Topics published by the bot
const (
	TopicModlog = "sleepdeprived/modlog"
	TopicStatus = "sleepdeprived/status"
)

// StatusMessage is published on connect and shutdown
type StatusMessage struct {
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}

// Communicator handles the connection to the MQTT broker
type Communicator struct {
	client   mqtt.Client
	clientID string
	mu       sync.RWMutex
}

var (
	communicator *Communicator
	once         sync.Once
)

// Init initializes the global MQTT communicator
func Init(host, port, username, password, clientID string) *Communicator {
	once.Do(func() {
		communicator = NewCommunicator(host, port, username, password, clientID)
	})
	return communicator
}

// Get returns the global MQTT communicator, nil when MQTT is disabled
func Get() *Communicator {
	return communicator
}

// NewCommunicator creates a new Communicator and connects to the broker
func NewCommunicator(host, port, username, password, clientID string) *Communicator {
	c := &Communicator{
		clientID: clientID,
	}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(mc mqtt.Client) {
			logger.Success(fmt.Sprintf("Connected to the MQTT broker as %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(mc mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("MQTT connection lost: %v", err), "MQTT")
		})

	c.client = mqtt.NewClient(opts)

	token := c.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("MQTT connection error: %v", token.Error()), "MQTT")
	}

	return c
}

// Destroy closes the MQTT connection
func (c *Communicator) Destroy() {
	if c.client != nil && c.client.IsConnected() {
		c.PublishStatus("shutdown")
		c.client.Disconnect(250)
		logger.System("MQTT connection closed successfully.", "MQTT")
	} else {
		logger.Warn("The MQTT client was not connected, nothing to close.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (c *Communicator) IsConnected() bool {
	return c.client != nil && c.client.IsConnected()
}

// Publish sends a message to a topic
func (c *Communicator) Publish(topic string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := c.client.Publish(topic, 0, false, jsonData)
	token.Wait()
	return token.Error()
}

// PublishStatus publishes a lifecycle event to the status topic
func (c *Communicator) PublishStatus(event string) {
	if !c.IsConnected() {
		return
	}
	msg := StatusMessage{
		Event:     event,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err := c.Publish(TopicStatus, msg); err != nil {
		logger.Error(fmt.Sprintf("Failed to publish status event '%s': %v", event, err), "MQTT")
	}
}

// Subscribe subscribes to a topic with a message handler
func (c *Communicator) Subscribe(topic string, handler func(topic string, payload []byte)) error {
	token := c.client.Subscribe(topic, 0, func(mc mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	return token.Error()
}

// Unsubscribe unsubscribes from a topic
func (c *Communicator) Unsubscribe(topic string) error {
	token := c.client.Unsubscribe(topic)
	token.Wait()
	return token.Error()
}
