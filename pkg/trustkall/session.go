package trustkall

import (
	"errors"

	"github.com/sikapp/devicetrust/internal/bridge"
	"github.com/sikapp/devicetrust/internal/platform"
	"github.com/sikapp/devicetrust/internal/trustprobe"
)

// ErrNilDevice is returned by [NewSession] when the device is nil.
var ErrNilDevice = errors.New("trustkall: passed nil device")

// Session answers trust queries for a device. A Session is
// safe for concurrent use if the Device is.
type Session struct {
	messenger *bridge.Messenger
	probe     *trustprobe.Probe
}

// NewSession creates a new [*Session]. The logger MAY be nil.
func NewSession(device Device, logger Logger) (*Session, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	adapter := &deviceAdapter{d: device}
	mlogger := newLogger(logger)
	probe := trustprobe.New(&trustprobe.Config{
		Authorizer: adapter,
		Locations:  adapter,
		Settings:   adapter,
		Logger:     mlogger,
	})
	messenger := bridge.NewMessenger(mlogger)
	if err := messenger.Register(trustprobe.NewChannel(probe)); err != nil {
		return nil, err
	}
	return &Session{messenger: messenger, probe: probe}, nil
}

// ChannelName returns the name of the channel served by Invoke.
func (s *Session) ChannelName() string {
	return trustprobe.ChannelName
}

// Platform returns the platform name.
func (s *Session) Platform() string {
	return platform.Name()
}

// IsMockLocation returns whether the location is mocked.
func (s *Session) IsMockLocation() bool {
	return s.probe.IsMockLocation()
}

// IsDeveloperMode returns whether developer mode is enabled.
func (s *Session) IsDeveloperMode() bool {
	return s.probe.IsDeveloperModeEnabled()
}

// Invoke invokes method on the trust channel and returns the
// serialized response envelope.
func (s *Session) Invoke(method string) string {
	call := bridge.NewCall(trustprobe.ChannelName, method)
	return string(bridge.EncodeResponse(s.messenger.Dispatch(call)))
}

// InvokeJSON handles a serialized call envelope and returns the
// serialized response envelope. This method never fails.
func (s *Session) InvokeJSON(request string) string {
	return string(bridge.HandleJSON(s.messenger, []byte(request)))
}
