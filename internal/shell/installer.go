package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"prtl/pkg/logging"
)

// Installer writes the shorthand script and hooks it into a shell profile.
type Installer struct {
	// Binary is the prtl command the shorthand wraps.
	Binary string
	// FuncName is the name of the shell function.
	FuncName string
}

// NewInstaller returns an Installer with the default binary and function name.
func NewInstaller() *Installer {
	return &Installer{
		Binary:   DefaultBinary,
		FuncName: DefaultFuncName,
	}
}

// SourceLine returns the line appended to a profile to load scriptPath.
func SourceLine(scriptPath string) string {
	return fmt.Sprintf("source %s", scriptPath)
}

// Install writes the shorthand script next to profilePath and appends a
// source line for it to the profile, creating the profile if needed.
// It returns the script path.
//
// Install is not idempotent: every call appends another source line.
func (i *Installer) Install(profilePath string, kind Kind) (string, error) {
	absProfile, err := filepath.Abs(profilePath)
	if err != nil {
		return "", &IOError{Op: "resolve", Path: profilePath, Reason: err}
	}

	script, err := RenderScript(ScriptData{
		Shell:    kind.String(),
		Binary:   i.Binary,
		FuncName: i.FuncName,
	})
	if err != nil {
		return "", err
	}

	scriptPath := filepath.Join(filepath.Dir(absProfile), ScriptFileName)
	if err := os.WriteFile(scriptPath, []byte(script), 0644); err != nil {
		return "", &IOError{Op: "write script", Path: scriptPath, Reason: err}
	}
	logging.Info("Shell", "Wrote shorthand script to %s", scriptPath)

	if _, err := os.Stat(absProfile); errors.Is(err, os.ErrNotExist) {
		logging.Warn("Shell", "Profile %s does not exist, creating it", absProfile)
	}

	f, err := os.OpenFile(absProfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", &IOError{Op: "open profile", Path: absProfile, Reason: err}
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s\n", SourceLine(scriptPath)); err != nil {
		return "", &IOError{Op: "append to profile", Path: absProfile, Reason: err}
	}
	if err := f.Close(); err != nil {
		return "", &IOError{Op: "close profile", Path: absProfile, Reason: err}
	}

	logging.Info("Shell", "Added source line to %s", absProfile)
	return scriptPath, nil
}
