package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	mochi "github.com/mochi-mqtt/server/v2"
	"github.com/mochi-mqtt/server/v2/hooks/auth"
	"github.com/mochi-mqtt/server/v2/listeners"
	"github.com/mochi-mqtt/server/v2/packets"

	"github.com/nerrad567/smarthome-core/internal/controller"
	"github.com/nerrad567/smarthome-core/internal/device"
	"github.com/nerrad567/smarthome-core/internal/infrastructure/config"
)

// freePort returns a TCP port nothing is listening on.
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()
	return port
}

// startBroker runs an in-process broker and returns its port.
func startBroker(t *testing.T) (*mochi.Server, int) {
	t.Helper()

	port := freePort(t)
	addr := "127.0.0.1:" + strconv.Itoa(port)

	server := mochi.New(&mochi.Options{
		InlineClient: true,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err := server.AddHook(new(auth.AllowHook), nil); err != nil {
		t.Fatalf("AddHook() error = %v", err)
	}
	if err := server.AddListener(listeners.NewTCP(listeners.Config{ID: "test", Address: addr})); err != nil {
		t.Fatalf("AddListener() error = %v", err)
	}

	go func() {
		_ = server.Serve()
	}()
	t.Cleanup(func() { server.Close() })

	// Wait for the listener to accept connections.
	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("broker did not start: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	return server, port
}

// testConfig returns an MQTT configuration pointing at a local port.
func testConfig(port int) config.MQTTConfig {
	return config.MQTTConfig{
		Enabled: true,
		Broker: config.MQTTBrokerConfig{
			Host:     "127.0.0.1",
			Port:     port,
			ClientID: "smarthome-test",
		},
		QoS: 1,
		Reconnect: config.MQTTReconnectConfig{
			MaxDelay: 5,
		},
		TopicPrefix: "test",
	}
}

// =============================================================================
// Topic Tests
// =============================================================================

func TestTopics(t *testing.T) {
	topics := Topics{Prefix: "home"}

	tests := []struct {
		got, want string
	}{
		{topics.DeviceState(3), "home/core/device/3/state"},
		{topics.Event("device_added"), "home/core/event/device_added"},
		{topics.SystemStatus(), "home/system/status"},
		{topics.AllDeviceStates(), "home/core/device/+/state"},
		{topics.AllEvents(), "home/core/event/#"},
		{Topics{}.SystemStatus(), "smarthome/system/status"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("topic = %q, want %q", tt.got, tt.want)
		}
	}
}

// =============================================================================
// Publish Validation Tests
// =============================================================================

func TestPublishValidation(t *testing.T) {
	c := &Client{}

	tests := []struct {
		name    string
		topic   string
		payload []byte
		qos     byte
		wantErr error
	}{
		{"empty topic", "", []byte("x"), 0, ErrInvalidTopic},
		{"invalid qos", "a/b", []byte("x"), 3, ErrInvalidQoS},
		{"payload too large", "a/b", make([]byte, maxPayloadSize+1), 1, ErrPublishFailed},
		{"not connected", "a/b", []byte("x"), 1, ErrNotConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Publish(tt.topic, tt.payload, tt.qos, false)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Publish() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHealthCheck_NotConnected(t *testing.T) {
	c := &Client{}
	if err := c.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.HealthCheck(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("HealthCheck(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestClose_NeverConnected(t *testing.T) {
	if err := (&Client{}).Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestConnectInvalidBroker(t *testing.T) {
	_, err := Connect(testConfig(freePort(t)))
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

// =============================================================================
// EventPublisher Tests
// =============================================================================

type published struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

type fakeClient struct {
	messages []published
	err      error
}

func (f *fakeClient) Publish(topic string, payload []byte, qos byte, retained bool) error {
	f.messages = append(f.messages, published{topic, payload, qos, retained})
	return f.err
}

func TestEventPublisher_Mapping(t *testing.T) {
	fake := &fakeClient{}
	pub := newEventPublisher(fake, testConfig(1883))

	details := device.NewLight(7, "lamp", 30).Details()
	err := pub.Publish(controller.Event{
		ID:       "ev-1",
		Type:     controller.EventDeviceAdded,
		DeviceID: 7,
		Device:   details,
		Message:  "Device added successfully.",
	})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(fake.messages) != 2 {
		t.Fatalf("published %d messages, want 2", len(fake.messages))
	}

	event := fake.messages[0]
	if event.topic != "test/core/event/device_added" || event.retained {
		t.Errorf("event message = %+v", event)
	}
	var decoded controller.Event
	if err := json.Unmarshal(event.payload, &decoded); err != nil {
		t.Fatalf("event payload is not JSON: %v", err)
	}
	if decoded.ID != "ev-1" || decoded.DeviceID != 7 {
		t.Errorf("decoded event = %+v", decoded)
	}

	state := fake.messages[1]
	if state.topic != "test/core/device/7/state" || !state.retained || state.qos != 1 {
		t.Errorf("state message = %+v", state)
	}
	var decodedDetails device.Details
	if err := json.Unmarshal(state.payload, &decodedDetails); err != nil {
		t.Fatalf("state payload is not JSON: %v", err)
	}
	if decodedDetails.Name != "lamp" || decodedDetails.Kind != device.KindLight {
		t.Errorf("decoded details = %+v", decodedDetails)
	}
}

func TestEventPublisher_RemovedClearsState(t *testing.T) {
	fake := &fakeClient{}
	pub := newEventPublisher(fake, testConfig(1883))

	err := pub.Publish(controller.Event{Type: controller.EventDeviceRemoved, DeviceID: 2})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	state := fake.messages[1]
	if state.topic != "test/core/device/2/state" || len(state.payload) != 0 || !state.retained {
		t.Errorf("state message = %+v, want empty retained payload", state)
	}
}

func TestEventPublisher_RemovedWithSuccessorKeepsState(t *testing.T) {
	fake := &fakeClient{}
	pub := newEventPublisher(fake, testConfig(1883))

	survivor := device.NewHeater(2, "second", 22).Details()
	err := pub.Publish(controller.Event{
		Type:      controller.EventDeviceRemoved,
		DeviceID:  2,
		Device:    device.NewLight(2, "first", 50).Details(),
		Successor: &survivor,
	})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	state := fake.messages[1]
	if state.topic != "test/core/device/2/state" || !state.retained {
		t.Fatalf("state message = %+v", state)
	}
	var decoded device.Details
	if err := json.Unmarshal(state.payload, &decoded); err != nil {
		t.Fatalf("state payload is not JSON: %v", err)
	}
	if decoded.Name != "second" || decoded.Kind != device.KindHeater {
		t.Errorf("retained state = %+v, want the surviving heater", decoded)
	}
}

func TestEventPublisher_Errors(t *testing.T) {
	fake := &fakeClient{err: ErrNotConnected}
	pub := newEventPublisher(fake, testConfig(1883))

	err := pub.Publish(controller.Event{Type: controller.EventDevicePowerChanged, DeviceID: 1})
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Publish() error = %v, want ErrNotConnected", err)
	}
	if len(fake.messages) != 2 {
		t.Errorf("published %d messages, want both attempted", len(fake.messages))
	}
}

// =============================================================================
// End-to-end Tests
// =============================================================================

func TestEndToEnd_ControllerEventsReachBroker(t *testing.T) {
	server, port := startBroker(t)
	cfg := testConfig(port)
	topics := Topics{Prefix: cfg.TopicPrefix}

	received := make(chan packets.Packet, 16)
	handler := func(_ *mochi.Client, _ packets.Subscription, pk packets.Packet) {
		received <- pk
	}
	if err := server.Subscribe(topics.AllEvents(), 1, handler); err != nil {
		t.Fatalf("Subscribe(events) error = %v", err)
	}
	if err := server.Subscribe(topics.AllDeviceStates(), 2, handler); err != nil {
		t.Fatalf("Subscribe(states) error = %v", err)
	}

	client, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer client.Close()

	if !client.IsConnected() {
		t.Fatal("IsConnected() = false, want true")
	}
	if client.Topics() != topics {
		t.Errorf("Topics() = %+v, want %+v", client.Topics(), topics)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	ctrl := controller.New(controller.Options{})
	ctrl.SetPublisher(NewEventPublisher(client, cfg))
	if _, err := ctrl.AddDevice(device.NewFan(5, "fan", 2)); err != nil {
		t.Fatalf("AddDevice() error = %v", err)
	}

	got := make(map[string][]byte)
	timeout := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case pk := <-received:
			got[pk.TopicName] = pk.Payload
		case <-timeout:
			t.Fatalf("timed out waiting for messages, got %v", got)
		}
	}

	var ev controller.Event
	if err := json.Unmarshal(got[topics.Event(string(controller.EventDeviceAdded))], &ev); err != nil {
		t.Fatalf("event payload: %v", err)
	}
	if ev.DeviceID != 5 || ev.Type != controller.EventDeviceAdded {
		t.Errorf("event = %+v", ev)
	}

	var details device.Details
	if err := json.Unmarshal(got[topics.DeviceState(5)], &details); err != nil {
		t.Fatalf("state payload: %v", err)
	}
	if f, _ := details.Field("speed"); f.Value != float64(2) {
		t.Errorf("speed = %v, want 2", f.Value)
	}
}
