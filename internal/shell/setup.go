package shell

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"prtl/pkg/logging"
)

// ProfileSearcher finds candidate profile files for a shell.
// *Locator is the production implementation.
type ProfileSearcher interface {
	Locate(kind Kind) iter.Seq[string]
}

// SetupResult reports what Setup installed.
type SetupResult struct {
	// Profile is the profile that now sources the shorthand.
	Profile string
	// Script is the path of the written shorthand script.
	Script string
}

// Setup runs the ez-init flow as three collaborator calls in order: search
// for candidate profiles, let the user choose one, and fall back to a typed
// path when nothing was found or chosen. The chosen profile then gets the
// shorthand installed.
func Setup(kind Kind, searcher ProfileSearcher, prompter Prompter, installer *Installer) (*SetupResult, error) {
	candidates := slices.Collect(searcher.Locate(kind))
	logging.Debug("Shell", "Found %d candidate %s profiles", len(candidates), kind)

	profile := ""
	if len(candidates) > 0 {
		idx, err := prompter.Choose(fmt.Sprintf("Found these %s profiles:", kind), candidates)
		if err != nil {
			return nil, err
		}
		if idx != NoChoice {
			if idx < 0 || idx >= len(candidates) {
				return nil, fmt.Errorf("selection %d out of range", idx)
			}
			profile = candidates[idx]
		}
	}

	if profile == "" {
		typed, err := prompter.ReadLine(fmt.Sprintf("Path to your %s profile: ", kind))
		if err != nil {
			return nil, err
		}
		if typed == "" {
			return nil, ErrNoProfile
		}
		profile, err = expandHome(typed)
		if err != nil {
			return nil, err
		}
	}

	script, err := installer.Install(profile, kind)
	if err != nil {
		return nil, err
	}

	return &SetupResult{Profile: profile, Script: script}, nil
}

// expandHome replaces a leading ~ in a typed path with the home directory,
// as the shell would have done for a path given on the command line.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &IOError{Op: "determine", Path: "home directory", Reason: err}
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
