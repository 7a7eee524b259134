package mqtt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nerrad567/smarthome-core/internal/controller"
	"github.com/nerrad567/smarthome-core/internal/device"
	"github.com/nerrad567/smarthome-core/internal/infrastructure/config"
)

// publisher is the subset of Client used by EventPublisher.
type publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// EventPublisher maps controller events onto MQTT topics.
// It implements controller.Publisher.
type EventPublisher struct {
	client publisher
	topics Topics
	qos    byte
}

// NewEventPublisher creates an EventPublisher that sends through client.
func NewEventPublisher(client *Client, cfg config.MQTTConfig) *EventPublisher {
	return newEventPublisher(client, cfg)
}

func newEventPublisher(client publisher, cfg config.MQTTConfig) *EventPublisher {
	return &EventPublisher{
		client: client,
		topics: Topics{Prefix: cfg.TopicPrefix},
		qos:    byte(cfg.QoS),
	}
}

// Publish sends the event to its event topic and updates the device's
// retained state. A removed device has its retained state cleared, unless
// another device with the same ID remains, whose state then replaces it.
func (p *EventPublisher) Publish(ev controller.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	var errs []error
	if err := p.client.Publish(p.topics.Event(string(ev.Type)), payload, p.qos, false); err != nil {
		errs = append(errs, fmt.Errorf("event %s: %w", ev.Type, err))
	}

	var state []byte
	if current := retainedState(ev); current != nil {
		if state, err = json.Marshal(current); err != nil {
			return fmt.Errorf("encoding device state: %w", err)
		}
	}
	if err := p.client.Publish(p.topics.DeviceState(ev.DeviceID), state, p.qos, true); err != nil {
		errs = append(errs, fmt.Errorf("device %d state: %w", ev.DeviceID, err))
	}

	return errors.Join(errs...)
}

// retainedState returns the details to keep on the device's state topic,
// or nil when the topic should be cleared.
func retainedState(ev controller.Event) *device.Details {
	if ev.Type == controller.EventDeviceRemoved {
		return ev.Successor
	}
	return &ev.Device
}
