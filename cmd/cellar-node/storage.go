package main

import (
	"io/fs"

	"github.com/cellar-dev/cellar-node/pkg/local_object_storage/fstree"
	"go.uber.org/zap"
)

func initLocalStorage(c *cfg) {
	readOnly := c.viper.GetBool(cfgStorageReadOnly)

	t := fstree.New(
		fstree.WithPath(c.viper.GetString(cfgStoragePath)),
		fstree.WithPerm(fs.FileMode(c.viper.GetInt(cfgStoragePerm))),
	)

	fatalOnErr(t.Open(readOnly))
	fatalOnErr(t.Init())

	c.cfgObject.storage = t

	c.closers = append(c.closers, func() {
		err := t.Close()
		if err != nil {
			c.log.Debug("could not close local storage",
				zap.String("error", err.Error()),
			)
		}
	})

	c.log.Info("local storage opened",
		zap.String("type", t.Type()),
		zap.String("path", t.Path()),
		zap.Bool("read_only", readOnly),
	)
}
