package main

import (
	"fmt"
	"os"

	"github.com/alienth/dbgctl/dbg"
	"github.com/alienth/dbgctl/log"
	"github.com/alienth/dbgctl/util"
	"github.com/alienth/dbgctl/version"
	"github.com/urfave/cli"
)

const defaultConfig = "dbgctl.toml"

// profileErr is set by the app's Before when the selected profile could not
// be loaded. Commands that print through the toggle refuse to run with it;
// "profiles" does not, so the valid names can still be listed.
var profileErr error

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Printf("Error starting app: %s\n", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "dbgctl"
	app.Usage = "Print values and trace calls through a switchable debug toggle."
	app.Version = version.FullVersion()

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config, c",
			Value:  defaultConfig,
			Usage:  "Load toggle profiles from `FILE` (.toml or .json)",
			EnvVar: "DBGCTL_CONFIG",
		},
		cli.StringFlag{
			Name:   "profile, p",
			Value:  "_default_",
			Usage:  "Use profile `NAME` from the config file",
			EnvVar: "DBGCTL_PROFILE",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "Print more detailed info for debugging dbgctl itself.",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "Switch the toggle off. Output forced with 'now' is still printed.",
		},
		cli.BoolFlag{
			Name:  "silent, s",
			Usage: "Run the command inside an off scope. Nothing is printed, not even 'now'.",
		},
		cli.BoolFlag{
			Name:  "expand, e",
			Usage: "Keep indented pretty output when stdout is not a terminal.",
		},
	}

	app.Before = func(c *cli.Context) error {
		if c.Bool("debug") {
			log.EnableDebug()
		}
		profile, err := loadProfile(c.String("config"), c.String("profile"), c.IsSet("config"))
		profileErr = err
		if err != nil {
			log.Debugf("%s\n", err)
			return nil
		}
		profile.Apply(dbg.Std)
		dbg.Configure(outputSettings(dbg.Std.Settings(), util.IsInteractive(), c.Bool("expand")))
		if c.Bool("quiet") {
			dbg.Off()
		}
		log.Debugf("Toggle enabled: %t, settings: %+v\n", dbg.Enabled(), dbg.Std.Settings())
		return nil
	}

	app.Commands = []cli.Command{
		cli.Command{
			Name:      "print",
			Usage:     "Print values if the toggle is enabled.",
			ArgsUsage: "<VALUE>...",
			Flags:     printFlags,
			Before:    requireArgs("Please specify values to print."),
			Action:    toggled(printValues),
		},
		cli.Command{
			Name:      "now",
			Usage:     "Print values even if the toggle is switched off.",
			ArgsUsage: "<VALUE>...",
			Flags:     printFlags,
			Before:    requireArgs("Please specify values to print."),
			Action:    toggled(printNow),
		},
		cli.Command{
			Name:      "dump",
			Usage:     "Pretty-print a TOML or JSON data file.",
			ArgsUsage: "<FILE>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "path",
					Usage: "Only dump the value at gjson `PATH` (JSON files only)",
				},
				cli.BoolFlag{
					Name:  "now, n",
					Usage: "Dump even if the toggle is switched off.",
				},
			},
			Before: requireArgs("Please specify a file to dump."),
			Action: toggled(dumpFile),
		},
		cli.Command{
			Name:      "trace",
			Usage:     "Count words through traced functions.",
			ArgsUsage: "<WORD>...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "now, n",
					Usage: "Trace even if the toggle is switched off.",
				},
			},
			Before: requireArgs("Please specify words to count."),
			Action: toggled(traceWords),
		},
		cli.Command{
			Name:   "profiles",
			Usage:  "List the profiles defined in the config file.",
			Action: listProfiles,
		},
	}

	return app
}

func requireArgs(msg string) cli.BeforeFunc {
	return func(c *cli.Context) error {
		if !c.Args().Present() {
			return cli.NewExitError(msg, 1)
		}
		return nil
	}
}

// outputSettings forces compact pretty output when stdout is piped, unless
// expand asks for the indented form.
func outputSettings(s dbg.Settings, interactive, expand bool) dbg.Settings {
	if !interactive && !expand {
		s.Compact = true
	}
	return s
}

// toggled guards commands that print through the toggle: they need a valid
// profile, and run inside an off scope when --silent is given.
func toggled(action cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		if profileErr != nil {
			return cli.NewExitError(profileErr.Error(), 1)
		}
		if c.GlobalBool("silent") {
			defer dbg.OffScope().Exit()
		}
		return action(c)
	}
}
