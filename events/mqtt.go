package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gofiber/fiber/v2/log"
)

const (
	defaultTopic   = "todos"
	connectTimeout = 5 * time.Second
	publishTimeout = 2 * time.Second
)

// MQTTPublisher sends events as JSON to <topic>/<user_id>.
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
}

// NewMQTTPublisher connects to the broker in rawURL (tcp://host:port/topic).
// The path selects the base topic and defaults to "todos".
func NewMQTTPublisher(rawURL, clientID string) (*MQTTPublisher, error) {
	uri, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse MQTT_URL: %w", err)
	}
	if uri.Host == "" {
		return nil, errors.New("MQTT_URL must include a host")
	}

	client := mqtt.NewClient(createClientOptions(clientID, uri))
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connect to MQTT broker %s: timed out", uri.Host)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to MQTT broker %s: %w", uri.Host, err)
	}

	log.Infof("connected to MQTT broker %s", uri.Host)
	return &MQTTPublisher{client: client, topic: topicFromURL(uri)}, nil
}

func createClientOptions(clientID string, uri *url.URL) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", uri.Host))
	if uri.User != nil {
		opts.SetUsername(uri.User.Username())
		password, _ := uri.User.Password()
		opts.SetPassword(password)
	}
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warnf("MQTT connection lost: %v", err)
	})
	return opts
}

func topicFromURL(uri *url.URL) string {
	topic := strings.Trim(uri.Path, "/")
	if topic == "" {
		return defaultTopic
	}
	return topic
}

// TopicFor returns the topic an event for userID is published on.
func (p *MQTTPublisher) TopicFor(userID int64) string {
	return fmt.Sprintf("%s/%d", p.topic, userID)
}

func (p *MQTTPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	token := p.client.Publish(p.TopicFor(e.UserID), 1, false, payload)
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return fmt.Errorf("publish %s: timed out", e.Type)
	}
}

func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
	log.Info("MQTT connection closed")
}
