// Package device implements the device subcommand.
package device

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	pkgerrors "github.com/pkg/errors"
	"github.com/sikapp/devicetrust/internal/cli/root"
	"github.com/sikapp/devicetrust/internal/config"
	"github.com/sikapp/devicetrust/internal/devicestate"
	"github.com/sikapp/devicetrust/internal/kvstore"
)

func init() {
	cmd := root.Command("device", "Manage the device snapshot in the state directory")
	importCmd := cmd.Command("import", "Import a device snapshot file")
	path := importCmd.Arg("file", "the snapshot file").Required().ExistingFile()
	stateDir := importCmd.Flag("state-dir", "override the state directory").String()

	importCmd.Action(func(_ *kingpin.ParseContext) error {
		snap, err := devicestate.ReadFile(*path)
		if err != nil {
			log.Errorf("%s", err)
			return err
		}
		dir := *stateDir
		if dir == "" {
			c, err := config.ReadDefaultConfig()
			if err != nil {
				return err
			}
			dir = c.StateDir
		}
		kvs, err := kvstore.NewFS(dir)
		if err != nil {
			return pkgerrors.Wrap(err, "opening state dir")
		}
		if err := snap.Store(kvs); err != nil {
			return pkgerrors.Wrap(err, "storing device snapshot")
		}
		log.Infof("Imported %s into %s", *path, dir)
		return nil
	})
}
