package config

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseDefaults(t *testing.T) {
	o, err := Parse(nil, env(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	if o.Mode != ModeDesktop || o.SampleRate != 8000 || o.Backend != BackendOto || o.Expression != DefaultExpression || o.Preset {
		t.Errorf("defaults = %+v", o)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		env   map[string]string
		check func(t *testing.T, o Options)
	}{
		{
			name: "expression flag",
			args: []string{"-expr", "t&t>>8"},
			check: func(t *testing.T, o Options) {
				if o.Expression != "t&t>>8" {
					t.Errorf("Expression = %q", o.Expression)
				}
			},
		},
		{
			name: "positional expression",
			args: []string{"t", "*", "3"},
			check: func(t *testing.T, o Options) {
				if o.Expression != "t * 3" {
					t.Errorf("Expression = %q", o.Expression)
				}
			},
		},
		{
			name: "terminal preset",
			args: []string{"-tty", "-preset", "-backend", "PULSE"},
			check: func(t *testing.T, o Options) {
				if o.Mode != ModeTerminal || !o.Preset || o.Backend != BackendPulse {
					t.Errorf("options = %+v", o)
				}
			},
		},
		{
			name: "render",
			args: []string{"-render", "out.wav", "-seconds", "2", "-rate", "11025"},
			check: func(t *testing.T, o Options) {
				if o.Mode != ModeRender || o.RenderPath != "out.wav" || o.Frames() != 22050 {
					t.Errorf("options = %+v frames %d", o, o.Frames())
				}
			},
		},
		{
			name: "environment",
			env:  map[string]string{"BYTEBEAT_RATE": "44100", "BYTEBEAT_BACKEND": "none"},
			check: func(t *testing.T, o Options) {
				if o.SampleRate != 44100 || o.Backend != BackendNone {
					t.Errorf("options = %+v", o)
				}
			},
		},
		{
			name: "flags override environment",
			args: []string{"-rate", "16000"},
			env:  map[string]string{"BYTEBEAT_RATE": "44100"},
			check: func(t *testing.T, o Options) {
				if o.SampleRate != 16000 {
					t.Errorf("SampleRate = %d", o.SampleRate)
				}
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Parse(tc.args, env(tc.env), nil)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			tc.check(t, o)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{"bad backend", []string{"-backend", "alsa"}, nil, "unknown audio backend"},
		{"rate too low", []string{"-rate", "10"}, nil, "out of range"},
		{"bad env rate", nil, map[string]string{"BYTEBEAT_RATE": "fast"}, "BYTEBEAT_RATE"},
		{"zero seconds", []string{"-render", "x.wav", "-seconds", "0"}, nil, "-seconds"},
		{"unknown flag", []string{"-loud"}, nil, "flag provided but not defined"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.args, env(tc.env), nil)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-h"}, env(nil), &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(out.String(), "Usage: bytebeat") || !strings.Contains(out.String(), "-render") {
		t.Errorf("usage output:\n%s", out.String())
	}
}
