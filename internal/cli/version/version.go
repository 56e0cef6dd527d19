// Package version implements the version subcommand.
package version

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sikapp/devicetrust/internal/cli/root"
	"github.com/sikapp/devicetrust/internal/version"
)

func init() {
	cmd := root.Command("version", "Show version.")
	cmd.Action(func(_ *kingpin.ParseContext) error {
		fmt.Println(version.Version)
		return nil
	})
}
