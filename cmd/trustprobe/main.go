// Command trustprobe computes device trust signals from a device
// snapshot and exposes them through the call bridge.
package main

import (
	"os"

	"github.com/apex/log"
	"github.com/sikapp/devicetrust/internal/cli/app"
	_ "github.com/sikapp/devicetrust/internal/cli/call"
	_ "github.com/sikapp/devicetrust/internal/cli/check"
	_ "github.com/sikapp/devicetrust/internal/cli/device"
	_ "github.com/sikapp/devicetrust/internal/cli/info"
	_ "github.com/sikapp/devicetrust/internal/cli/serve"
	_ "github.com/sikapp/devicetrust/internal/cli/setting"
	_ "github.com/sikapp/devicetrust/internal/cli/version"
)

func main() {
	if err := app.Run(); err != nil {
		log.WithError(err).Error("trustprobe failed")
		os.Exit(1)
	}
}
