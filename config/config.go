// Package config reads dbgctl profile files. A profile file is TOML or JSON
// keyed by profile name; every profile inherits what the "_default_" profile
// sets:
//
//	[_default_]
//	strip_package_names = true
//
//	[verbose]
//	diff_args = true
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alienth/dbgctl/dbg"
	"github.com/alienth/dbgctl/log"
	"github.com/imdario/mergo"
)

const DefaultProfile = "_default_"

var (
	ErrUnknownProfile  = errors.New("unknown profile")
	ErrUnknownFileType = errors.New("unknown file type")
)

// Profile is one named set of toggle settings. All fields are opt-in
// flags: a profile can add to what _default_ sets but cannot switch it back
// off.
type Profile struct {
	Disabled          bool `toml:"disabled" json:"disabled"`
	Compact           bool `toml:"compact" json:"compact"`
	StripPackageNames bool `toml:"strip_package_names" json:"strip_package_names"`
	HidePrivateFields bool `toml:"hide_private_fields" json:"hide_private_fields"`
	HideZeroValues    bool `toml:"hide_zero_values" json:"hide_zero_values"`
	DiffArgs          bool `toml:"diff_args" json:"diff_args"`
}

type Profiles map[string]Profile

// Load reads the profiles in file and merges _default_ into each of them.
func Load(file string) (Profiles, error) {
	body, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var profiles Profiles
	switch {
	case strings.HasSuffix(file, ".toml"):
		if err := toml.Unmarshal(body, &profiles); err != nil {
			return nil, fmt.Errorf("toml parsing error: %w", err)
		}
	case strings.HasSuffix(file, ".json"):
		if err := json.Unmarshal(body, &profiles); err != nil {
			return nil, fmt.Errorf("json parsing error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, file)
	}

	for name, profile := range profiles {
		if name == DefaultProfile {
			continue
		}
		log.Debugf("Merging %s into profile %s.\n", DefaultProfile, name)
		if err := mergo.Merge(&profile, profiles[DefaultProfile]); err != nil {
			return nil, err
		}
		profiles[name] = profile
	}

	return profiles, nil
}

// Get returns the named profile. The default profile always exists, even
// when the file does not define it.
func (ps Profiles) Get(name string) (Profile, error) {
	if p, ok := ps[name]; ok {
		return p, nil
	}
	if name == DefaultProfile {
		return Profile{}, nil
	}
	return Profile{}, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
}

func (ps Profiles) Names() []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p Profile) Settings() dbg.Settings {
	return dbg.Settings{
		Compact:           p.Compact,
		StripPackageNames: p.StripPackageNames,
		HidePrivateFields: p.HidePrivateFields,
		HideZeroValues:    p.HideZeroValues,
		DiffArgs:          p.DiffArgs,
	}
}

// Apply switches t on or off and installs the profile's settings.
func (p Profile) Apply(t *dbg.Toggle) {
	t.Enabled = !p.Disabled
	t.Configure(p.Settings())
}
