package trustprobe

import "github.com/sikapp/devicetrust/internal/bridge"

// ChannelName is the name of the method channel serving the probe.
const ChannelName = "sik/mock_location"

// Names of the methods exposed by the channel.
const (
	MethodIsMockLocation  = "isMockLocation"
	MethodIsDeveloperMode = "isDeveloperMode"
)

// NewChannel returns a [*bridge.Channel] named [ChannelName] that answers
// [MethodIsMockLocation] and [MethodIsDeveloperMode] using p. Any other
// method results in a not implemented response.
func NewChannel(p *Probe) *bridge.Channel {
	ch := bridge.NewChannel(ChannelName, p.logger)
	ch.Handle(MethodIsMockLocation, func(*bridge.Call) (any, error) {
		return p.IsMockLocation(), nil
	})
	ch.Handle(MethodIsDeveloperMode, func(*bridge.Call) (any, error) {
		return p.IsDeveloperModeEnabled(), nil
	})
	return ch
}
