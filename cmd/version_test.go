package cmd

import (
	"bytes"
	"testing"
)

func TestNewVersionCmd(t *testing.T) {
	versionCmd := newVersionCmd()

	if versionCmd.Use != "version" {
		t.Errorf("Expected Use to be 'version', got %s", versionCmd.Use)
	}

	if versionCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if versionCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if versionCmd.Run == nil {
		t.Error("Expected Run function to be set")
	}
}

func TestVersionCommandExecution(t *testing.T) {
	testVersion := "1.2.3-test"
	originalVersion := GetVersion()
	defer SetVersion(originalVersion)
	SetVersion(testVersion)

	versionCmd := newVersionCmd()

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, []string{})

	expected := "prtl version " + testVersion + "\n"
	if buf.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, buf.String())
	}
}

func TestVersionCommandWithEmptyVersion(t *testing.T) {
	originalVersion := GetVersion()
	defer SetVersion(originalVersion)
	SetVersion("")

	versionCmd := newVersionCmd()

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, []string{})

	expected := "prtl version \n"
	if buf.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, buf.String())
	}
}

func TestSetVersionUpdatesRootCommand(t *testing.T) {
	originalVersion := GetVersion()
	defer SetVersion(originalVersion)

	SetVersion("9.9.9")

	if rootCmd.Version != "9.9.9" {
		t.Errorf("Expected rootCmd.Version to be 9.9.9, got %s", rootCmd.Version)
	}
	if GetVersion() != "9.9.9" {
		t.Errorf("Expected GetVersion to return 9.9.9, got %s", GetVersion())
	}
}
