package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alienth/dbgctl/config"
	"github.com/alienth/dbgctl/log"
	"github.com/alienth/dbgctl/util"
	"github.com/urfave/cli"
)

// loadProfile reads the named profile from file. A missing file is only an
// error if it was asked for explicitly.
func loadProfile(file, name string, explicit bool) (config.Profile, error) {
	profiles, err := config.Load(file)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		log.Debugf("No config file %s, using defaults.\n", file)
		profiles = config.Profiles{}
	} else if err != nil {
		return config.Profile{}, fmt.Errorf("Error loading config %s: %s", file, err)
	}
	return profiles.Get(name)
}

func listProfiles(c *cli.Context) error {
	file := c.GlobalString("config")
	profiles, err := config.Load(file)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error loading config %s: %s", file, err), 1)
	}
	current := c.GlobalString("profile")
	names := profiles.Names()

	fmt.Printf("Profiles in %s:\n\n", file)
	for _, name := range names {
		active := ""
		if name == current {
			active = "*"
		}
		fmt.Printf("%2s %s\n", active, name)
	}
	if current != config.DefaultProfile && !util.StringInSlice(current, names) {
		fmt.Printf("\nProfile %s is not defined.\n", current)
	}
	return nil
}
