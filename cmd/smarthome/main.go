// Smart Home Core - device registry and control console
//
// This is the main entry point for the smart home controller. It loads the
// configuration, seeds the controller with the configured devices, optionally
// publishes controller events to an MQTT broker and then hands the terminal
// to the interactive console.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/smarthome-core/internal/console"
	"github.com/nerrad567/smarthome-core/internal/controller"
	"github.com/nerrad567/smarthome-core/internal/device"
	"github.com/nerrad567/smarthome-core/internal/infrastructure/config"
	"github.com/nerrad567/smarthome-core/internal/infrastructure/logging"
	"github.com/nerrad567/smarthome-core/internal/infrastructure/mqtt"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on Ctrl+C or SIGTERM; the console returns even mid-prompt.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// The console reads from in and writes to out; logs go where the logging
// configuration says.
func run(ctx context.Context, in io.Reader, out io.Writer) error {
	// Use a default logger until config is loaded
	log := logging.Default()
	log.Info("starting smart home core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log = logging.New(cfg.Logging, version).Home(cfg.Home.Name)
	log.Info("configuration loaded", "devices", len(cfg.Devices))

	ctrl := controller.New(controller.Options{
		RejectDuplicateIDs: cfg.Controller.RejectDuplicateIDs,
	})
	ctrl.SetLogger(log.Component(logging.ComponentController))

	// Connect to MQTT before seeding so seeded devices get retained state.
	if cfg.MQTT.Enabled {
		mqttLog := log.Component(logging.ComponentMQTT)

		mqttClient, err := mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			mqttLog.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				mqttLog.Error("error closing MQTT", "error", closeErr)
			}
		}()
		mqttLog.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		mqttClient.SetLogger(mqttLog)
		mqttClient.SetOnConnect(func() {
			mqttLog.Info("MQTT reconnected")
		})
		mqttClient.SetOnDisconnect(func(err error) {
			mqttLog.Warn("MQTT disconnected", "error", err)
		})

		if err := mqttClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("health check failed: mqtt: %w", err)
		}
		mqttLog.Info("MQTT health check passed")

		ctrl.SetPublisher(mqtt.NewEventPublisher(mqttClient, cfg.MQTT))
	} else {
		log.Info("MQTT disabled")
	}

	if err := seedDevices(ctrl, cfg.Devices); err != nil {
		return err
	}
	log.Info("device registry initialised", "devices", ctrl.Count())

	if err := console.New(ctrl, in, out).Run(ctx); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	log.Info("smart home core stopped")
	return nil
}

// loadConfig loads the configuration file. A missing file at the default
// path falls back to built-in defaults; an explicitly configured path must
// exist.
func loadConfig() (*config.Config, error) {
	path, explicit := getConfigPath()
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	return config.Load(path)
}

// getConfigPath returns the configuration file path and whether it was set
// explicitly. Uses SMARTHOME_CONFIG environment variable if set, otherwise
// default.
func getConfigPath() (string, bool) {
	if path := os.Getenv("SMARTHOME_CONFIG"); path != "" {
		return path, true
	}
	return defaultConfigPath, false
}

// seedDevices builds each configured device and adds it to the controller.
func seedDevices(ctrl *controller.Controller, specs []device.Spec) error {
	for i, spec := range specs {
		d, err := device.Build(spec)
		if err != nil {
			return fmt.Errorf("building device %d (%q): %w", i, spec.Name, err)
		}
		if _, err := ctrl.AddDevice(d); err != nil {
			return fmt.Errorf("adding device %d (%q): %w", i, spec.Name, err)
		}
	}
	return nil
}
