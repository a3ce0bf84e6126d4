package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/cellar-dev/cellar-node/misc"
	"github.com/cellar-dev/cellar-node/pkg/util/grace"
)

func fatalOnErr(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	configFile := flag.String("config", "", "path to config")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("%s %s (build %s)\n", misc.NodeName, misc.Version, misc.Build)
		return
	}

	c := initCfg(*configFile)

	init_(c)

	bootUp(c)

	wait(c)

	shutdown(c)
}

func init_(c *cfg) {
	c.ctx = grace.NewGracefulContext(c.log)

	initProfiler(c)
	initMetrics(c)
	initObjectService(c)
}

func bootUp(c *cfg) {
	startWorkers(c)

	if c.metrics != nil {
		c.metrics.SetHealth(1)
	}
}

func wait(c *cfg) {
	<-c.ctx.Done()
}

func shutdown(c *cfg) {
	if c.metrics != nil {
		c.metrics.SetHealth(0)
	}

	// Closers run in reverse so the gateway drains before anything it
	// depends on goes away.
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}

	c.wg.Wait()

	c.log.Info("node has been stopped")
}
