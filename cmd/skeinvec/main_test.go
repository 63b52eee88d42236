package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunConvertIgnoresEnvironment(t *testing.T) {
	// Conversion has no configuration surface: it must produce output
	// even when the environment would make loadConfig fail.
	t.Setenv("SKEINVEC_ALGORITHM", "md5")
	in := strings.NewReader("Len = 8\nMsg = 4142\nMD = 61626364\n")
	var out bytes.Buffer
	if err := run(nil, "", in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "\tTN(8, \"\\x41\\x42\",\n\t   \"\\x61\\x62\\x63\\x64\"),\n\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunConvertIgnoresMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("algorithm: md5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	in := strings.NewReader("Len = 8\nMsg = ff\nMD = 00\n")
	var out bytes.Buffer
	if err := run(nil, path, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Len() == 0 {
		t.Error("conversion produced no output")
	}
}

func TestRunVerifyStillValidatesConfig(t *testing.T) {
	t.Setenv("SKEINVEC_ALGORITHM", "md5")
	err := run([]string{"verify", "whatever.rsp"}, "", strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "md5") {
		t.Errorf("verify with bad algorithm: err = %v, want config error", err)
	}
}

func TestRunVerifyWithoutFiles(t *testing.T) {
	err := run([]string{"verify"}, "", strings.NewReader(""), &bytes.Buffer{})
	if err == nil {
		t.Error("verify with no files accepted")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	err := run([]string{"frobnicate"}, "", strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("unknown command: err = %v", err)
	}
}
