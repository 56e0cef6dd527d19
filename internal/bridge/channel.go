package bridge

import (
	"sort"
	"sync"

	"github.com/sikapp/devicetrust/internal/model"
	"github.com/sikapp/devicetrust/internal/runtimex"
)

// Handler handles a method call and returns either a value or an error.
type Handler func(call *Call) (any, error)

// Channel dispatches calls to handlers by method name. A Channel is
// safe for concurrent use.
type Channel struct {
	handlers map[string]Handler
	logger   model.Logger
	mu       sync.Mutex
	name     string
}

// NewChannel creates a new [*Channel]. The logger MAY be nil.
func NewChannel(name string, logger model.Logger) *Channel {
	return &Channel{
		handlers: map[string]Handler{},
		logger:   model.ValidLoggerOrDefault(logger),
		name:     name,
	}
}

// Name returns the channel name.
func (c *Channel) Name() string {
	return c.name
}

// Handle registers the handler for method, replacing any
// previously registered handler for the same method.
func (c *Channel) Handle(method string, handler Handler) {
	runtimex.PanicIfNil(handler, "passed nil handler")
	c.mu.Lock()
	c.handlers[method] = handler
	c.mu.Unlock()
}

// Methods returns the sorted list of registered methods.
func (c *Channel) Methods() (out []string) {
	c.mu.Lock()
	for method := range c.handlers {
		out = append(out, method)
	}
	c.mu.Unlock()
	sort.Strings(out)
	return
}

// Invoke invokes the handler for call.Method. A missing handler results
// in a not implemented response. A failing or panicking handler results
// in an error response with CodeGeneric.
func (c *Channel) Invoke(call *Call) *Response {
	c.mu.Lock()
	handler, found := c.handlers[call.Method]
	c.mu.Unlock()
	if !found {
		c.logger.Warnf("bridge: %s: %s: not implemented", c.name, call.Method)
		return NewNotImplemented(call)
	}
	var value any
	err := runtimex.Try(func() (err error) {
		value, err = handler(call)
		return
	})
	if err != nil {
		c.logger.Warnf("bridge: %s: %s: %s", c.name, call.Method, err.Error())
		return NewError(call, CodeGeneric, err)
	}
	c.logger.Debugf("bridge: %s: %s: %+v", c.name, call.Method, value)
	return NewSuccess(call, value)
}
