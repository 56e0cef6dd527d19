package bridge

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sikapp/devicetrust/internal/model"
	"github.com/sikapp/devicetrust/internal/runtimex"
)

// ErrDuplicateChannel indicates that a channel with the
// same name has already been registered.
var ErrDuplicateChannel = errors.New("bridge: duplicate channel")

// Messenger routes calls to channels by channel name. The
// zero value is invalid; use [NewMessenger].
type Messenger struct {
	channels map[string]*Channel
	logger   model.Logger
	mu       sync.Mutex
}

// NewMessenger creates a new [*Messenger]. The logger MAY be nil.
func NewMessenger(logger model.Logger) *Messenger {
	return &Messenger{
		channels: map[string]*Channel{},
		logger:   model.ValidLoggerOrDefault(logger),
	}
}

// Register registers a channel.
func (m *Messenger) Register(ch *Channel) error {
	runtimex.PanicIfNil(ch, "passed nil channel")
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.channels[ch.Name()]; found {
		return fmt.Errorf("%w: %s", ErrDuplicateChannel, ch.Name())
	}
	m.channels[ch.Name()] = ch
	m.logger.Debugf("bridge: registered channel %s", ch.Name())
	return nil
}

// Lookup returns the channel with the given name.
func (m *Messenger) Lookup(name string) (*Channel, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch, found := m.channels[name]
	return ch, found
}

// Channels returns the sorted names of the registered channels.
func (m *Messenger) Channels() (out []string) {
	m.mu.Lock()
	for name := range m.channels {
		out = append(out, name)
	}
	m.mu.Unlock()
	sort.Strings(out)
	return
}

// Dispatch routes call to the channel named call.Channel. An unknown
// channel results in a not implemented response.
func (m *Messenger) Dispatch(call *Call) *Response {
	ch, found := m.Lookup(call.Channel)
	if !found {
		m.logger.Warnf("bridge: %s: no such channel", call.Channel)
		return NewNotImplemented(call)
	}
	return ch.Invoke(call)
}
