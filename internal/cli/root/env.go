package root

import (
	"github.com/apex/log"
	pkgerrors "github.com/pkg/errors"
	"github.com/sikapp/devicetrust/internal/bridge"
	"github.com/sikapp/devicetrust/internal/config"
	"github.com/sikapp/devicetrust/internal/devicestate"
	"github.com/sikapp/devicetrust/internal/kvstore"
	"github.com/sikapp/devicetrust/internal/model"
	"github.com/sikapp/devicetrust/internal/settingsstore"
	"github.com/sikapp/devicetrust/internal/trustprobe"
)

// Env is the environment shared by subcommands.
type Env struct {
	// Config is the loaded config.
	Config *config.Config

	// KVStore is the key-value store inside Config.StateDir.
	KVStore model.KeyValueStore

	// Settings reads and writes settings stored inside KVStore.
	Settings *settingsstore.Store

	// Snapshot is the device snapshot.
	Snapshot *devicestate.Snapshot

	// Probe is the probe using Snapshot.
	Probe *trustprobe.Probe

	// Messenger serves the probe channel.
	Messenger *bridge.Messenger
}

// NewEnv creates a new [*Env]. When the config names a device snapshot file
// we read the whole device state from it. Otherwise, we load the snapshot
// from the state directory and read settings from the same directory.
func NewEnv(c *config.Config) (*Env, error) {
	kvs, err := kvstore.NewFS(c.StateDir)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "opening state dir")
	}
	env := &Env{
		Config:   c,
		KVStore:  kvs,
		Settings: settingsstore.New(kvs),
	}
	probeConfig := &trustprobe.Config{Logger: log.Log}
	if c.DeviceSnapshot != "" {
		log.Debugf("Reading device snapshot from %s", c.DeviceSnapshot)
		env.Snapshot, err = devicestate.ReadFile(c.DeviceSnapshot)
		if err != nil {
			return nil, err
		}
		probeConfig.Settings = env.Snapshot
	} else {
		log.Debugf("Loading device snapshot from %s", c.StateDir)
		env.Snapshot, err = devicestate.Load(kvs)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "no device snapshot (use `trustprobe device import`)")
		}
		probeConfig.Settings = env.Settings
	}
	probeConfig.Authorizer = env.Snapshot
	probeConfig.Locations = env.Snapshot
	env.Probe = trustprobe.New(probeConfig)
	env.Messenger = bridge.NewMessenger(log.Log)
	if err := env.Messenger.Register(trustprobe.NewChannel(env.Probe)); err != nil {
		return nil, err
	}
	return env, nil
}
