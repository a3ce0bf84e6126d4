package main

import (
	"context"

	"github.com/cellar-dev/cellar-node/pkg/services/object"
	httputil "github.com/cellar-dev/cellar-node/pkg/util/http"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func initObjectService(c *cfg) {
	svc := object.NewMetricCollector(
		object.NewExecutionService(c.cfgObject.storage),
	)

	gin.SetMode(gin.ReleaseMode)
	router := object.NewRouter(svc, c.log)

	var prm httputil.Prm

	prm.Address = c.cfgGateway.address
	prm.Handler = router

	srv := httputil.New(prm,
		httputil.WithShutdownTimeout(c.cfgGateway.shutdownTimeout),
	)

	c.workers = append(c.workers, newWorkerFromFunc(func(context.Context) {
		c.log.Info("serving object gateway",
			zap.String("address", c.cfgGateway.address),
		)

		fatalOnErr(srv.Serve())
	}))

	c.closers = append(c.closers, func() {
		c.log.Debug("shutting down object gateway")

		err := srv.Shutdown()
		if err != nil {
			c.log.Debug("could not shutdown object gateway",
				zap.String("error", err.Error()),
			)
		}

		c.log.Debug("object gateway has been stopped")
	})
}
