package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bytebeat/internal/synth"
)

// Audio backends.
const (
	BackendOto   = "oto"
	BackendPulse = "pulse"
	BackendNone  = "none"
)

// DefaultExpression is loaded into the field on start-up.
const DefaultExpression = "t*(t>>5|t>>8)"

// Config is everything the front ends need to start.
type Config struct {
	SampleRate int
	Backend    string
	Expression string
	Preset     bool // start the preset song immediately
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate: synth.DefaultSampleRate,
		Backend:    BackendOto,
		Expression: DefaultExpression,
	}
}

// ApplyEnv overrides cfg from BYTEBEAT_RATE and BYTEBEAT_BACKEND. Unset
// variables leave cfg alone; malformed ones are reported.
func (cfg *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if s := getenv("BYTEBEAT_RATE"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("BYTEBEAT_RATE: %w", err)
		}
		cfg.SampleRate = v
	}
	if s := getenv("BYTEBEAT_BACKEND"); s != "" {
		cfg.Backend = strings.ToLower(s)
	}
	return nil
}

// Validate checks the options that would otherwise fail deep inside a
// backend.
func (cfg Config) Validate() error {
	if cfg.SampleRate < 1000 || cfg.SampleRate > 192000 {
		return fmt.Errorf("sample rate %d out of range [1000, 192000]", cfg.SampleRate)
	}
	switch cfg.Backend {
	case BackendOto, BackendPulse, BackendNone:
	default:
		return fmt.Errorf("unknown audio backend %q (want %s, %s or %s)", cfg.Backend, BackendOto, BackendPulse, BackendNone)
	}
	return nil
}

// Mode selects the front end.
type Mode int

const (
	ModeDesktop  Mode = iota
	ModeTerminal      // raw-mode keyboard control, no window
	ModeRender        // write a WAV file and exit
)

// Options is a parsed command line.
type Options struct {
	Config
	Mode       Mode
	RenderPath string
	Seconds    float64
}

// Frames is the number of samples a render of o.Seconds produces.
func (o Options) Frames() int {
	return int(o.Seconds * float64(o.SampleRate))
}

// Parse reads flags from args (without the program name) on top of the
// defaults and the environment. A trailing positional argument is taken as
// the expression. flag.ErrHelp is returned for -h.
func Parse(args []string, getenv func(string) string, usage io.Writer) (Options, error) {
	o := Options{Config: DefaultConfig(), Seconds: 30}
	if err := o.ApplyEnv(getenv); err != nil {
		return o, err
	}

	fs := flag.NewFlagSet("bytebeat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.Expression, "expr", o.Expression, "bytebeat expression in t")
	fs.IntVar(&o.SampleRate, "rate", o.SampleRate, "samples per second (t steps per second)")
	fs.StringVar(&o.Backend, "backend", o.Backend, "audio backend: oto, pulse or none")
	fs.BoolVar(&o.Preset, "preset", false, "start the preset song")
	tty := fs.Bool("tty", false, "control playback from the terminal instead of a window")
	fs.StringVar(&o.RenderPath, "render", "", "render to this WAV file and exit")
	fs.Float64Var(&o.Seconds, "seconds", o.Seconds, "length of -render output in seconds")

	fs.Usage = func() {
		if usage == nil {
			return
		}
		fs.SetOutput(usage)
		fmt.Fprintln(usage, "Usage: bytebeat [-expr EXPR] [-rate N] [-backend oto|pulse|none] [-preset] [-tty] [-render out.wav [-seconds S]] [EXPR]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		o.Expression = strings.Join(fs.Args(), " ")
	}
	o.Backend = strings.ToLower(o.Backend)

	switch {
	case o.RenderPath != "":
		o.Mode = ModeRender
		if o.Seconds <= 0 {
			return o, fmt.Errorf("-seconds must be positive, got %v", o.Seconds)
		}
	case *tty:
		o.Mode = ModeTerminal
	}
	return o, o.Validate()
}
