package bridge

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChannel(t *testing.T) {
	newChannel := func() *Channel {
		ch := NewChannel("antani", nil)
		ch.Handle("truth", func(call *Call) (any, error) {
			return true, nil
		})
		ch.Handle("fail", func(call *Call) (any, error) {
			return nil, errors.New("mocked error")
		})
		ch.Handle("explode", func(call *Call) (any, error) {
			panic("mascetti")
		})
		return ch
	}

	t.Run("Name", func(t *testing.T) {
		if name := newChannel().Name(); name != "antani" {
			t.Fatal("unexpected name", name)
		}
	})

	t.Run("Methods", func(t *testing.T) {
		expect := []string{"explode", "fail", "truth"}
		if diff := cmp.Diff(expect, newChannel().Methods()); diff != "" {
			t.Fatal(diff)
		}
	})

	type testcase struct {
		name   string
		method string
		expect *Response
	}

	testcases := []testcase{{
		name:   "with success",
		method: "truth",
		expect: &Response{ID: "xx", Status: StatusSuccess, Value: true},
	}, {
		name:   "with handler error",
		method: "fail",
		expect: &Response{ID: "xx", Status: StatusError, Code: CodeGeneric, Message: "mocked error"},
	}, {
		name:   "with unknown method",
		method: "nonexistent",
		expect: &Response{ID: "xx", Status: StatusNotImplemented},
	}}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			resp := newChannel().Invoke(&Call{ID: "xx", Channel: "antani", Method: tc.method})
			if diff := cmp.Diff(tc.expect, resp); diff != "" {
				t.Fatal(diff)
			}
		})
	}

	t.Run("with handler panic", func(t *testing.T) {
		resp := newChannel().Invoke(&Call{ID: "xx", Method: "explode"})
		if resp.Status != StatusError || resp.Code != CodeGeneric {
			t.Fatal("unexpected response", resp)
		}
		if resp.Value != nil {
			t.Fatal("expected nil value")
		}
	})

	t.Run("Handle replaces existing handlers", func(t *testing.T) {
		ch := newChannel()
		ch.Handle("truth", func(call *Call) (any, error) {
			return false, nil
		})
		resp := ch.Invoke(&Call{Method: "truth"})
		if resp.Value != false {
			t.Fatal("unexpected value", resp.Value)
		}
	})
}

func TestResponseErr(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		resp := NewSuccess(&Call{}, true)
		if err := resp.Err(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("on not implemented", func(t *testing.T) {
		resp := NewNotImplemented(&Call{})
		if err := resp.Err(); !errors.Is(err, ErrNotImplemented) {
			t.Fatal("unexpected err", err)
		}
	})

	t.Run("on error", func(t *testing.T) {
		resp := NewError(&Call{}, CodeGeneric, errors.New("mocked error"))
		var berr *Error
		if err := resp.Err(); !errors.As(err, &berr) {
			t.Fatal("unexpected err", err)
		}
		if berr.Code != CodeGeneric || berr.Message != "mocked error" {
			t.Fatal("unexpected error content", berr)
		}
		if berr.Error() != "bridge: ERR: mocked error" {
			t.Fatal("unexpected error string", berr.Error())
		}
	})
}
