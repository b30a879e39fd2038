package config

import "testing"

type envTarget struct {
	Addr string `env:"WHISPERLY_TEST_ADDR" envDefault:"localhost:8080"`
	Name string `env:"WHISPERLY_TEST_NAME"`
}

func TestParseEnvAppliesDefaults(t *testing.T) {
	var target envTarget
	if err := ParseEnv(&target); err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if target.Addr != "localhost:8080" {
		t.Fatalf("Addr = %q, want %q", target.Addr, "localhost:8080")
	}
}

func TestParseEnvReadsVariables(t *testing.T) {
	t.Setenv("WHISPERLY_TEST_NAME", "whisperly")
	var target envTarget
	if err := ParseEnv(&target); err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if target.Name != "whisperly" {
		t.Fatalf("Name = %q, want %q", target.Name, "whisperly")
	}
}
