package main

import (
	"context"

	httputil "github.com/cellar-dev/cellar-node/pkg/util/http"
	"go.uber.org/zap"
)

func initProfiler(c *cfg) {
	if !c.viper.GetBool(cfgProfilerEnable) {
		return
	}

	var prm httputil.Prm

	prm.Address = c.viper.GetString(cfgProfilerAddr)
	prm.Handler = httputil.Handler()

	srv := httputil.New(prm,
		httputil.WithShutdownTimeout(
			c.viper.GetDuration(cfgProfilerTTL),
		),
	)

	c.workers = append(c.workers, newWorkerFromFunc(func(context.Context) {
		c.log.Info("serving profiler",
			zap.String("address", prm.Address),
		)

		fatalOnErr(srv.Serve())
	}))

	c.closers = append(c.closers, func() {
		c.log.Debug("shutting down profiling service")

		err := srv.Shutdown()
		if err != nil {
			c.log.Debug("could not shutdown pprof server",
				zap.String("error", err.Error()),
			)
		}

		c.log.Debug("profiling service has been stopped")
	})
}
