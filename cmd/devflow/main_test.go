package main

import (
	"testing"
	"time"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/amonks/devflow/internal/testsupport"
)

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "devflow" {
		t.Fatalf("expected root command name devflow, got %q", rootCmd.Use)
	}
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			if err := testsupport.SetupScriptEnv(t, env); err != nil {
				return err
			}
			testsupport.StartSuggestServer(env)
			return nil
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"envset": testsupport.CmdEnvSet,
			"taskid": testsupport.CmdTaskID,
		},
	})
}

func TestParseNow(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2025-01-17", want: time.Date(2025, 1, 17, 12, 0, 0, 0, time.UTC)},
		{in: " 2025-01-17T08:30:00Z ", want: time.Date(2025, 1, 17, 8, 30, 0, 0, time.UTC)},
		{in: "tomorrow", wantErr: true},
		{in: "2025-13-01", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseNow(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseNow(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseNow(%q): unexpected error %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseNow(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidChoice(t *testing.T) {
	valid := []string{"Frontend", "Backend"}
	tests := map[string]bool{
		"":         true,
		"all":      true,
		"ALL":      true,
		"Frontend": true,
		"frontend": false,
		"Design":   false,
	}
	for in, want := range tests {
		if got := validChoice(in, valid); got != want {
			t.Errorf("validChoice(%q) = %v, want %v", in, got, want)
		}
	}
}
