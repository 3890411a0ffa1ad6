package app

import "prtl/internal/cli"

// Command is one parsed prtl invocation. The set of variants is closed:
// only types in this package implement it, and Application.Run handles
// each of them.
type Command interface {
	command()
}

// SetCommand stores the canonical form of Path under Tag.
type SetCommand struct {
	Path string
	// Tag defaults to the configured default tag when empty.
	Tag string
}

// GetCommand prints the path stored under Tag.
type GetCommand struct {
	// Tag defaults to the configured default tag when empty.
	Tag string
}

// ListCommand prints every portal.
type ListCommand struct {
	Format cli.OutputFormat
}

// RemoveCommand deletes the portal stored under Tag.
type RemoveCommand struct {
	Tag string
}

// InitCommand installs the shorthand function for Shell.
type InitCommand struct {
	Shell string
}

func (SetCommand) command()    {}
func (GetCommand) command()    {}
func (ListCommand) command()   {}
func (RemoveCommand) command() {}
func (InitCommand) command()   {}
