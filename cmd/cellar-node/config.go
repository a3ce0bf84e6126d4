package main

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cellar-dev/cellar-node/internal/uriutil"
	"github.com/cellar-dev/cellar-node/misc"
	"github.com/cellar-dev/cellar-node/pkg/local_object_storage/common"
	"github.com/cellar-dev/cellar-node/pkg/metrics"
	"github.com/cellar-dev/cellar-node/pkg/util/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// logger keys
	cfgLogLevel              = "logger.level"
	cfgLogFormat             = "logger.format"
	cfgLogTrace              = "logger.trace_level"
	cfgLogInitSampling       = "logger.sampling.initial"
	cfgLogThereafterSampling = "logger.sampling.thereafter"

	// config keys for the object gateway
	cfgNodeAddress     = "node.address"
	cfgNodeShutdownTTL = "node.shutdown_ttl"

	// config keys for the local storage
	cfgStoragePath     = "storage.path"
	cfgStoragePerm     = "storage.perm"
	cfgStorageReadOnly = "storage.read_only"

	// pprof keys
	cfgProfilerEnable = "pprof.enabled"
	cfgProfilerAddr   = "pprof.address"
	cfgProfilerTTL    = "pprof.shutdown_ttl"

	// prometheus keys
	cfgMetricsEnable = "prometheus.enabled"
	cfgMetricsAddr   = "prometheus.address"
	cfgMetricsTTL    = "prometheus.shutdown_ttl"
)

type cfg struct {
	ctx context.Context

	viper *viper.Viper

	log *zap.Logger

	wg *sync.WaitGroup

	cfgObject cfgObject

	cfgGateway cfgGateway

	metrics *metrics.NodeMetrics

	workers []worker

	closers []func()
}

type cfgObject struct {
	storage common.Storage
}

type cfgGateway struct {
	address string

	shutdownTimeout time.Duration
}

func initCfg(path string) *cfg {
	viperCfg := initViper(path)

	log, err := logger.NewLogger(viperCfg)
	fatalOnErr(err)

	addr, withTLS, err := uriutil.Parse(viperCfg.GetString(cfgNodeAddress))
	fatalOnErr(err)

	if withTLS {
		fatalOnErr(errors.New("https listen endpoints are not supported"))
	}

	c := &cfg{
		ctx:   context.Background(),
		viper: viperCfg,
		log:   log,
		wg:    new(sync.WaitGroup),
		cfgGateway: cfgGateway{
			address:         addr,
			shutdownTimeout: viperCfg.GetDuration(cfgNodeShutdownTTL),
		},
	}

	initLocalStorage(c)

	return c
}

func initViper(path string) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(misc.Prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", misc.NodeName)
	v.SetDefault("app.version", misc.Version)

	defaultConfiguration(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yml")
		fatalOnErr(v.ReadInConfig())
	}

	return v
}

func defaultConfiguration(v *viper.Viper) {
	v.SetDefault(cfgNodeAddress, "127.0.0.1:8080") // object gateway listen address
	v.SetDefault(cfgNodeShutdownTTL, 30*time.Second)

	v.SetDefault(cfgStoragePath, "data") // root directory of the local storage
	v.SetDefault(cfgStoragePerm, 0o700)
	v.SetDefault(cfgStorageReadOnly, false)

	v.SetDefault(cfgLogLevel, "info")
	v.SetDefault(cfgLogFormat, "console")
	v.SetDefault(cfgLogTrace, "fatal")
	v.SetDefault(cfgLogInitSampling, 1000)
	v.SetDefault(cfgLogThereafterSampling, 1000)

	v.SetDefault(cfgProfilerEnable, false)
	v.SetDefault(cfgProfilerAddr, ":6060")
	v.SetDefault(cfgProfilerTTL, 30*time.Second)

	v.SetDefault(cfgMetricsEnable, false)
	v.SetDefault(cfgMetricsAddr, ":9090")
	v.SetDefault(cfgMetricsTTL, 30*time.Second)
}
