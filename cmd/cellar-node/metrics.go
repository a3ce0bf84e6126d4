package main

import (
	"context"

	"github.com/cellar-dev/cellar-node/misc"
	"github.com/cellar-dev/cellar-node/pkg/metrics"
	httputil "github.com/cellar-dev/cellar-node/pkg/util/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func initMetrics(c *cfg) {
	if !c.viper.GetBool(cfgMetricsEnable) {
		return
	}

	c.metrics = metrics.NewNodeMetrics(misc.Version)

	var prm httputil.Prm

	prm.Address = c.viper.GetString(cfgMetricsAddr)
	prm.Handler = promhttp.Handler()

	srv := httputil.New(prm,
		httputil.WithShutdownTimeout(
			c.viper.GetDuration(cfgMetricsTTL),
		),
	)

	c.workers = append(c.workers, newWorkerFromFunc(func(context.Context) {
		c.log.Info("serving prometheus metrics",
			zap.String("address", prm.Address),
		)

		fatalOnErr(srv.Serve())
	}))

	c.closers = append(c.closers, func() {
		c.log.Debug("shutting down metrics service")

		err := srv.Shutdown()
		if err != nil {
			c.log.Debug("could not shutdown metrics server",
				zap.String("error", err.Error()),
			)
		}

		c.log.Debug("metrics service has been stopped")
	})
}
