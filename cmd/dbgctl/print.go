package main

import (
	"github.com/alienth/dbgctl/dbg"
	"github.com/urfave/cli"
)

var printFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "pretty, P",
		Usage: "Use the structure-aware printer.",
	},
	cli.StringFlag{
		Name:  "sep",
		Usage: "Separate values with `SEP` instead of a space",
	},
}

func printOptions(c *cli.Context) dbg.Options {
	return dbg.Options{
		Pretty: c.Bool("pretty"),
		Sep:    c.String("sep"),
	}
}

func argValues(c *cli.Context) (interface{}, []interface{}) {
	args := c.Args()
	rest := make([]interface{}, 0, len(args)-1)
	for _, a := range args.Tail() {
		rest = append(rest, a)
	}
	return args.First(), rest
}

func printValues(c *cli.Context) error {
	v, rest := argValues(c)
	dbg.LogWith(printOptions(c), v, rest...)
	return nil
}

func printNow(c *cli.Context) error {
	v, rest := argValues(c)
	dbg.NowWith(printOptions(c), v, rest...)
	return nil
}
