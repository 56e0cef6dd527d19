// Package serve implements the serve subcommand.
package serve

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/sikapp/devicetrust/internal/cli/root"
	"github.com/sikapp/devicetrust/internal/httpbridge"
)

func init() {
	cmd := root.Command("serve", "Expose the call bridge over local HTTP")
	address := cmd.Flag("address", "the address where to listen").String()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		env, err := root.Init()
		if err != nil {
			log.Errorf("%s", err)
			return err
		}
		if *address == "" {
			*address = env.Config.HTTP.Address
		}
		srv := &http.Server{
			Addr:              *address,
			Handler:           httpbridge.New(env.Messenger, log.Log),
			ReadHeaderTimeout: 10 * time.Second,
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
		log.Infof("Listening at http://%s", *address)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}
