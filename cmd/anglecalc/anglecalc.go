package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/calc"
	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/config"
	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/dial"
)

const (
	defaultConfig = "anglecalc.yaml"
	configEnv     = "ANGLECALC_CONFIG"
)

// Angles without a suffix are read in the configured unit. Negative values
// must follow "--", e.g. "between -- -10 -90 90".
type CLI struct {
	Config string `help:"YAML config file." default:"anglecalc.yaml" env:"ANGLECALC_CONFIG" type:"path"`

	Normalize NormalizeCmd `cmd:"" help:"Wrap angles under the configured policy."`
	Convert   ConvertCmd   `cmd:"" help:"Convert angles to another unit and wrap policy."`
	Between   BetweenCmd   `cmd:"" help:"Is TEST on the anti-clockwise arc from FIRST to SECOND?"`
	Sweep     SweepCmd     `cmd:"" help:"Size of the anti-clockwise arc from FIRST to SECOND."`
	Atan2     Atan2Cmd     `cmd:"" name:"atan2" help:"Angle of the point (X, Y)."`
	Dial      DialCmd      `cmd:"" help:"Draw the arc from FIRST to SECOND to a PNG."`
	Quit      QuitCmd      `cmd:"" help:"Quit"`
}

type Context struct {
	config     config.Config
	calculator calc.Calculator
}

func newContext(path string) (*Context, error) {
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &Context{
		config: c,
		calculator: calc.Calculator{
			Unit:      c.Unit,
			Wrap:      c.Wrap,
			Precision: c.Precision,
		},
	}, nil
}

type NormalizeCmd struct {
	Angles []string `arg:"" name:"angle"`
}

func (c *NormalizeCmd) Run(ctx *Context) error {
	for _, a := range c.Angles {
		s, err := ctx.calculator.Normalize(a)
		if err != nil {
			return err
		}
		fmt.Println(a, "=", s)
	}
	return nil
}

type ConvertCmd struct {
	To     angle.Unit `help:"Target unit (rad, deg)." default:"rad"`
	Wrap   angle.Wrap `help:"Target wrap policy (signed, unsigned, nowrap)." default:"signed"`
	Angles []string   `arg:"" name:"angle"`
}

func (c *ConvertCmd) Run(ctx *Context) error {
	for _, a := range c.Angles {
		s, err := ctx.calculator.Convert(a, c.To, c.Wrap)
		if err != nil {
			return err
		}
		fmt.Println(a, "=", s)
	}
	return nil
}

type BetweenCmd struct {
	Test   string `arg:""`
	First  string `arg:""`
	Second string `arg:""`
}

func (c *BetweenCmd) Run(ctx *Context) error {
	in, err := ctx.calculator.Between(c.Test, c.First, c.Second)
	if err != nil {
		return err
	}
	fmt.Printf("%s between %s and %s: %v\n", c.Test, c.First, c.Second, in)
	return nil
}

type SweepCmd struct {
	First  string `arg:""`
	Second string `arg:""`
}

func (c *SweepCmd) Run(ctx *Context) error {
	s, err := ctx.calculator.Sweep(c.First, c.Second)
	if err != nil {
		return err
	}
	fmt.Println("sweep", c.First, "->", c.Second, "=", s)
	return nil
}

type Atan2Cmd struct {
	Y float64 `arg:""`
	X float64 `arg:""`
}

func (c *Atan2Cmd) Run(ctx *Context) error {
	s, err := ctx.calculator.ATan2(c.Y, c.X)
	if err != nil {
		return err
	}
	fmt.Println("atan2", c.Y, c.X, "=", s)
	return nil
}

type DialCmd struct {
	Output string   `help:"PNG file to write; defaults to the configured output." type:"path"`
	Size   int      `help:"Image size in pixels; defaults to the configured size."`
	First  string   `arg:""`
	Second string   `arg:""`
	Tests  []string `arg:"" optional:"" name:"test"`
}

func (c *DialCmd) Run(ctx *Context) error {
	output := c.Output
	if output == "" {
		output = ctx.config.Dial.Output
	}
	size := c.Size
	if size <= 0 {
		size = ctx.config.Dial.Size
	}

	vs, err := ctx.calculator.Values(append([]string{c.First, c.Second}, c.Tests...)...)
	if err != nil {
		return err
	}
	if ctx.calculator.Unit == angle.UnitDegree {
		err = saveDial(output, size, vs, angle.Degrees[angle.NoWrap, float64])
	} else {
		err = saveDial(output, size, vs, angle.Radians[angle.NoWrap, float64])
	}
	if err != nil {
		return err
	}
	fmt.Println("Wrote", output)
	return nil
}

func saveDial[U angle.UnitPolicy](output string, size int, vs []float64, mk func(float64) angle.Angle[float64, U, angle.NoWrap]) error {
	as := make([]angle.Angle[float64, U, angle.NoWrap], len(vs))
	for i, v := range vs {
		as[i] = mk(v)
	}
	return dial.SavePNG(output, size, as[0], as[1], as[2:]...)
}

type QuitCmd struct{}

func (q *QuitCmd) Run(ctx *Context) error {
	return Quit
}

var Quit = errors.New("Quit")

func newParser(cli *CLI, options ...kong.Option) *kong.Kong {
	options = append([]kong.Option{
		kong.Name("anglecalc"),
		kong.Description("Angle arithmetic with unit and wrap policies."),
	}, options...)
	k, err := kong.New(cli, options...)
	if err != nil {
		panic(err)
	}
	return k
}

func main() {
	var cli CLI

	// One-shot mode.
	if len(os.Args) > 1 {
		parsed, err := newParser(&cli).Parse(os.Args[1:])
		if err != nil {
			log.Fatal(err)
		}
		if err := run(parsed, cli.Config); err != nil && err != Quit {
			log.Fatal(err)
		}
		return
	}

	fmt.Println("---- anglecalc ----")
	// Help must not end the session.
	k := newParser(&cli, kong.Exit(func(int) {}))
	path := configPath()
	ctx, err := newContext(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := ctx.config.Save(inUsePath(path)); err != nil {
		fmt.Println("Failed to save in-use config:", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Enter a command:")
		if !scanner.Scan() {
			break
		}
		command := strings.TrimSpace(scanner.Text())
		if command == "" {
			continue
		}
		parsed, err := k.Parse(strings.Fields(command))
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		err = parsed.Run(ctx)
		if err == Quit {
			break
		} else if err != nil {
			fmt.Println("ERROR:", err)
			continue
		}
	}
}

// configPath is the config file for the interactive loop, where there is no
// command line to carry --config.
func configPath() string {
	if path := os.Getenv(configEnv); path != "" {
		return path
	}
	return defaultConfig
}

func inUsePath(path string) string {
	return strings.TrimSuffix(path, ".yaml") + "-in-use.yaml"
}

func run(parsed *kong.Context, path string) error {
	ctx, err := newContext(path)
	if err != nil {
		return err
	}
	return parsed.Run(ctx)
}
