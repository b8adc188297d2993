package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tabular/internal/errs"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestPingCommand(t *testing.T) {
	out, err := runCommand(t, "ping")
	if err != nil {
		t.Fatalf("ping returned error: %v", err)
	}
	if out != "pong\n" {
		t.Fatalf("output = %q, want %q", out, "pong\n")
	}
}

func TestConvertRoundTripCommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	in := writeFile(t, dir, "in.json", `{"u1": {"name": "Alice", "age": 30}}`)
	csvPath := filepath.Join(dir, "out.csv")
	jsonPath := filepath.Join(dir, "out.json")

	if _, err := runCommand(t, "to-csv", in, csvPath); err != nil {
		t.Fatalf("to-csv returned error: %v", err)
	}
	csvData, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read CSV: %v", err)
	}
	if string(csvData) != "id,age,name\nu1,30,Alice\n" {
		t.Fatalf("CSV = %q", csvData)
	}

	if _, err := runCommand(t, "to-json", csvPath, jsonPath, "--infer-types"); err != nil {
		t.Fatalf("to-json returned error: %v", err)
	}
	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read JSON: %v", err)
	}
	want := `{
    "u1": {
        "age": 30,
        "name": "Alice"
    }
}
`
	if string(jsonData) != want {
		t.Fatalf("JSON = %q, want %q", jsonData, want)
	}
}

func TestToCSVRefusesExistingOutputWithoutForce(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	in := writeFile(t, dir, "in.json", `{"u1": {"a": "x"}}`)
	out := writeFile(t, dir, "out.csv", "stale")

	if _, err := runCommand(t, "to-csv", in, out); !errors.Is(err, errs.ErrOutputConflict) {
		t.Fatalf("expected output conflict, got %v", err)
	}
	if _, err := runCommand(t, "to-csv", in, out, "--force"); err != nil {
		t.Fatalf("to-csv --force returned error: %v", err)
	}
}

func TestVerifyCommandPass(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", `{"u1": {"name": "Alice"}}`)

	out, err := runCommand(t, "verify", in)
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if out != "VERIFY: PASS (JSON -> CSV -> JSON is lossless for current schema)\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestVerifyCommandFail(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", `{"u1": {"age": 30}}`)

	out, err := runCommand(t, "verify", in)
	if !errors.Is(err, errs.ErrVerifyFailed) {
		t.Fatalf("expected verify failure, got %v", err)
	}
	if errs.ExitCode(err) != errs.ExitVerify {
		t.Fatalf("ExitCode = %d, want %d", errs.ExitCode(err), errs.ExitVerify)
	}
	if out != "VERIFY: FAIL (round-trip mismatch)\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestVerifyCommandPassWithInference(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", `{"u1": {"age": 30, "active": true}}`)

	out, err := runCommand(t, "verify", in, "--infer-types")
	if err != nil {
		t.Fatalf("verify --infer-types returned error: %v", err)
	}
	if !strings.HasPrefix(out, "VERIFY: PASS") {
		t.Fatalf("output = %q", out)
	}
}

func TestVerifyCommandVerboseReportsDivergence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", `{"u1": {"age": 30}}`)

	out, err := runCommand(t, "verify", in, "-v")
	if !errors.Is(err, errs.ErrVerifyFailed) {
		t.Fatalf("expected verify failure, got %v", err)
	}
	if !strings.Contains(out, "First differing key: u1") {
		t.Fatalf("missing divergence report:\n%s", out)
	}
}

func TestMissingInputExitsAsUsageError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	_, err := runCommand(t, "to-csv", filepath.Join(dir, "absent.json"), filepath.Join(dir, "out.csv"))
	if !errors.Is(err, errs.ErrInputNotFound) {
		t.Fatalf("expected input-not-found, got %v", err)
	}
	if errs.ExitCode(err) != errs.ExitUsage {
		t.Fatalf("ExitCode = %d, want %d", errs.ExitCode(err), errs.ExitUsage)
	}
}

func TestConfigFlagSuppliesInferenceDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	cfgPath := writeFile(t, dir, "config.toml", "[convert]\ninfer_types = true\n")
	in := writeFile(t, dir, "in.csv", "id,age\nu1,30\n")
	out := filepath.Join(dir, "out.json")

	if _, err := runCommand(t, "--config", cfgPath, "to-json", in, out); err != nil {
		t.Fatalf("to-json returned error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"age": 30`) {
		t.Fatalf("config infer_types not applied:\n%s", data)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")

	if _, err := runCommand(t, "config", "init", "--path", path); err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", path); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, err := runCommand(t, "config", "init", "--path", path, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite returned error: %v", err)
	}

	out, err := runCommand(t, "--config", path, "config", "validate")
	if err != nil {
		t.Fatalf("config validate returned error: %v", err)
	}
	if !strings.Contains(out, "valid") {
		t.Fatalf("unexpected validate output: %q", out)
	}
}
