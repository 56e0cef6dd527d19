// Package httpbridge exposes a [*bridge.Messenger] over local HTTP.
//
// The host application (or a developer using curl) POSTs call envelopes
// and receives response envelopes. We always reply with 200 and let the
// envelope status tell success, error and not implemented apart.
package httpbridge

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sikapp/devicetrust/internal/bridge"
	"github.com/sikapp/devicetrust/internal/model"
	"github.com/sikapp/devicetrust/internal/runtimex"
)

// maxBodySize is the maximum size of a call envelope.
const maxBodySize = 1 << 16

// Handler is the HTTP handler. Use [New] to construct.
type Handler struct {
	calls     *prometheus.CounterVec
	logger    model.Logger
	messenger *bridge.Messenger
	router    *mux.Router
}

var _ http.Handler = &Handler{}

// New creates a new [*Handler] dispatching calls using messenger. The
// logger MAY be nil. Each handler owns its own metrics registry.
func New(messenger *bridge.Messenger, logger model.Logger) *Handler {
	runtimex.PanicIfNil(messenger, "passed nil messenger")
	registry := prometheus.NewRegistry()
	h := &Handler{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "devicetrust",
			Subsystem: "bridge",
			Name:      "calls_total",
			Help:      "Number of bridge calls by channel, method and status.",
		}, []string{"channel", "method", "status"}),
		logger:    model.ValidLoggerOrDefault(logger),
		messenger: messenger,
		router:    mux.NewRouter(),
	}
	registry.MustRegister(h.calls)
	h.router.HandleFunc("/health", h.health).Methods(http.MethodGet)
	h.router.HandleFunc("/v1/call", h.call).Methods(http.MethodPost)
	h.router.HandleFunc("/v1/channels/{channel:.+}/{method}", h.shorthand).Methods(http.MethodPost)
	h.router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "OK")
}

func (h *Handler) call(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		h.logger.Warnf("httpbridge: cannot read body: %s", err.Error())
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	call, err := bridge.DecodeCall(data)
	if err != nil {
		h.reply(w, &bridge.Call{}, bridge.NewError(&bridge.Call{}, bridge.CodeBadRequest, err))
		return
	}
	h.reply(w, call, h.messenger.Dispatch(call))
}

func (h *Handler) shorthand(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	call := bridge.NewCall(vars["channel"], vars["method"])
	h.reply(w, call, h.messenger.Dispatch(call))
}

func (h *Handler) reply(w http.ResponseWriter, call *bridge.Call, resp *bridge.Response) {
	h.calls.WithLabelValues(call.Channel, call.Method, resp.Status).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.Write(bridge.EncodeResponse(resp))
}
