// Package config locates the prtl configuration directory.
//
// The directory defaults to <user config home>/.prtl, resolved with
// github.com/adrg/xdg so it follows XDG_CONFIG_HOME on Linux and the
// platform conventions elsewhere. PRTL_CONFIG_DIR overrides it, and every
// command accepts --config-path for a one-off location.
//
// The directory holds a single file, config.yaml, owned by the portal
// package.
package config
