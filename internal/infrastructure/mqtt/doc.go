// Package mqtt publishes smart home controller events to an MQTT broker.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Mapping controller events onto topics (EventPublisher)
//
// The client is outbound-only. Nothing received from the broker is fed back
// into the controller.
//
// # Topics
//
//	{prefix}/core/event/{type}        controller events, not retained
//	{prefix}/core/device/{id}/state   device details, retained
//	{prefix}/system/status            online/offline, retained, LWT
//
// A removed device has its retained state cleared with an empty payload.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	ctrl.SetPublisher(mqtt.NewEventPublisher(client, cfg.MQTT))
package mqtt
