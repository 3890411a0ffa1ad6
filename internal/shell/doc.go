// Package shell installs the `p` shorthand function into a user's shell profile.
//
// A child process cannot change its parent shell's working directory, so
// `prtl get` only prints a path. The shorthand is a small shell function that
// runs `cd "$(prtl get ...)"` on the user's behalf.
//
// Installation is split into collaborators so the interactive flow can be
// driven without a terminal:
//
//   - Locator searches the home directory for candidate profiles
//   - Prompter presents the candidates and reads a typed path as a fallback
//   - Installer writes the script and appends a source line to the profile
//
// Setup runs them in that order. Installing twice appends a second source
// line; nothing checks for an existing one.
package shell
