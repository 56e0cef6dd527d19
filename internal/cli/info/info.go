// Package info implements the info subcommand.
package info

import (
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/sikapp/devicetrust/internal/cli/root"
	"github.com/sikapp/devicetrust/internal/platform"
	"github.com/sikapp/devicetrust/internal/version"
)

func init() {
	cmd := root.Command("info", "Display information about the environment")

	cmd.Action(func(_ *kingpin.ParseContext) error {
		env, err := root.Init()
		if err != nil {
			log.Errorf("%s", err)
			return err
		}
		log.WithFields(log.Fields{
			"type":     "table",
			"version":  version.Version,
			"platform": platform.Name(),
			"mobile":   platform.IsMobile(),
			"config":   env.Config.Path(),
			"state":    env.Config.StateDir,
			"device":   env.Snapshot.Platform,
		}).Info("info")
		for _, name := range env.Messenger.Channels() {
			ch, _ := env.Messenger.Lookup(name)
			log.Infof("channel %s: %s", name, strings.Join(ch.Methods(), ", "))
		}
		return nil
	})
}
