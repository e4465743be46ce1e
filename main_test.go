package main

import (
	"errors"
	"strings"
	"testing"

	"worldofbits/pkg/game/config"
)

func TestRun_ReturnsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown renderer with journal", []string{"-journal", t.TempDir(), "-renderer", "vr"}, `unknown renderer "vr"`},
		{"bad listen address", []string{"-journal", t.TempDir(), "-renderer", "remote", "-addr", "not-an-addr"}, "serve:"},
		{"unknown language", []string{"-lang", "xx"}, "locale:"},
		{"unknown flag", []string{"-nope"}, "-nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run(%v) = %v, want error containing %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestRun_FlagOverridesAreValidated(t *testing.T) {
	err := run([]string{"-lat", "95", "-renderer", "vr"})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("run with lat 95 = %v, want ErrInvalid", err)
	}
}
