package main

import (
	"github.com/alienth/dbgctl/config"
	"github.com/alienth/dbgctl/dbg"
	"github.com/alienth/dbgctl/log"
	"github.com/urfave/cli"
)

func dumpFile(c *cli.Context) error {
	file := c.Args().First()
	log.Debugf("Decoding %s.\n", file)
	v, err := config.Decode(file, c.String("path"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	opts := dbg.Options{Pretty: true}
	if c.Bool("now") {
		dbg.NowWith(opts, v)
	} else {
		dbg.LogWith(opts, v)
	}
	return nil
}
