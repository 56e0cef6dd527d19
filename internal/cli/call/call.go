// Package call implements the call subcommand.
package call

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/sikapp/devicetrust/internal/bridge"
	"github.com/sikapp/devicetrust/internal/cli/root"
	"github.com/sikapp/devicetrust/internal/trustprobe"
)

func init() {
	cmd := root.Command("call", "Invoke a method through the call bridge")
	method := cmd.Arg("method", "the method to invoke").Required().String()
	channel := cmd.Flag("channel", "the channel to use").Default(trustprobe.ChannelName).String()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		env, err := root.Init()
		if err != nil {
			log.Errorf("%s", err)
			return err
		}
		resp := env.Messenger.Dispatch(bridge.NewCall(*channel, *method))
		fmt.Println(string(bridge.EncodeResponse(resp)))
		return resp.Err()
	})
}
