package main

import (
	"os"
	"testing"

	"mvnauth/cmd"
)

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

func TestVersion(t *testing.T) {
	if version != "dev" {
		t.Errorf("Expected default version to be 'dev', got %s", version)
	}

	testVersion := "1.2.3"
	version = testVersion
	if version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, version)
	}

	version = "dev"

	cmd.SetVersion(version)
	if got := cmd.GetVersion(); got != "dev" {
		t.Errorf("Expected cmd version to be 'dev', got %s", got)
	}
}
