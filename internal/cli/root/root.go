// Package root contains the root command and the shared command environment.
package root

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/sikapp/devicetrust/internal/config"
	"github.com/sikapp/devicetrust/internal/log/handlers/cli"
	"github.com/sikapp/devicetrust/internal/version"
)

// Cmd is the root command
var Cmd = kingpin.New("trustprobe", "Best-effort device trust signals.")

// Command is syntax sugar for defining sub-commands
var Command = Cmd.Command

// Init should be called by all subcommands that need an [*Env].
var Init func() (*Env, error)

func init() {
	configPath := Cmd.Flag("config", "Set a custom config file path").Short('c').String()
	devicePath := Cmd.Flag("device", "Read the device snapshot from this file").Short('d').String()
	verbose := Cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()

	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if *verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("trustprobe version %s", version.Version)
		}

		Init = func() (*Env, error) {
			var c *config.Config
			var err error

			if *configPath != "" {
				log.Debugf("Reading config file from %s", *configPath)
				c, err = config.ReadConfig(*configPath)
			} else {
				log.Debug("Reading default config file")
				c, err = config.ReadDefaultConfig()
			}
			if err != nil {
				return nil, err
			}
			if !*verbose {
				log.SetLevelFromString(c.LogLevel)
			}
			if *devicePath != "" {
				c.DeviceSnapshot = *devicePath
			}
			return NewEnv(c)
		}

		return nil
	})
}
