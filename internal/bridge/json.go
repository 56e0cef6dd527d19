package bridge

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/sikapp/devicetrust/internal/runtimex"
)

// ErrNoMethod indicates that a serialized call does not name a method.
var ErrNoMethod = errors.New("bridge: missing method name")

// DecodeCall parses a serialized [*Call]. When the call has no ID, we
// assign it a random UUID so that the response can be correlated.
func DecodeCall(data []byte) (*Call, error) {
	var call Call
	if err := json.Unmarshal(data, &call); err != nil {
		return nil, err
	}
	if call.Method == "" {
		return nil, ErrNoMethod
	}
	if call.ID == "" {
		call.ID = newCallID()
	}
	return &call, nil
}

// NewCall creates a [*Call] without arguments and with a random ID.
func NewCall(channel, method string) *Call {
	return &Call{ID: newCallID(), Channel: channel, Method: method}
}

func newCallID() string {
	return uuid.Must(uuid.NewRandom()).String()
}

// EncodeResponse serializes a [*Response]. When the value returned by
// a handler cannot be serialized, we serialize an error response instead.
func EncodeResponse(resp *Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		data, err = json.Marshal(NewError(&Call{ID: resp.ID}, CodeGeneric, err))
		runtimex.PanicOnError(err, "json.Marshal failed")
	}
	return data
}

// HandleJSON decodes a serialized call, dispatches it using m, and
// returns the serialized response. This function never fails: a call
// we cannot decode results in an error response with CodeBadRequest.
func HandleJSON(m *Messenger, data []byte) []byte {
	call, err := DecodeCall(data)
	if err != nil {
		return EncodeResponse(NewError(&Call{}, CodeBadRequest, err))
	}
	return EncodeResponse(m.Dispatch(call))
}
