package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	// Unit and Wrap are used for values given without a unit suffix.
	Unit angle.Unit `yaml:"unit"`
	Wrap angle.Wrap `yaml:"wrap"`

	// Precision is the number of decimal places printed; -1 prints the
	// shortest exact representation.
	Precision int `yaml:"precision"`

	Dial Dial `yaml:"dial"`
}

type Dial struct {
	Size   int    `yaml:"size"`
	Output string `yaml:"output"`
}

func Default() Config {
	return Config{
		Unit:      angle.UnitDegree,
		Wrap:      angle.WrapSigned,
		Precision: -1,
		Dial: Dial{
			Size:   256,
			Output: "dial.png",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (Config, error) {
	c := Default()
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Println("No config at", path, "using defaults")
		return c, nil
	} else if err != nil {
		return c, errors.Wrapf(err, "reading %s", path)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parsing %s", path)
	}
	if err := c.Validate(); err != nil {
		return c, errors.Wrap(err, path)
	}
	return c, nil
}

// Save writes the config out, so that the values actually in use can be
// inspected after a run.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return errors.Wrap(err, "marshalling config")
	}
	return errors.Wrapf(ioutil.WriteFile(path, data, 0666), "writing %s", path)
}

func (c Config) Validate() error {
	if c.Precision < -1 {
		return errors.Wrapf(ErrInvalid, "precision %d", c.Precision)
	}
	if c.Dial.Size <= 0 {
		return errors.Wrapf(ErrInvalid, "dial size %d", c.Dial.Size)
	}
	return nil
}
