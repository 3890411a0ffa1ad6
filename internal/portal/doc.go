// Package portal provides the tagged-path store behind prtl.
//
// A portal is a named bookmark: a short tag mapped to an absolute, canonical
// directory path. The whole set of portals plus the default tag lives in one
// PortalConfig value that is loaded at the start of a command, mutated in
// memory and stored back at the end.
//
// # Configuration File
//
// Portals are stored in ~/.config/.prtl/config.yaml with the following schema:
//
//	default_tag: default_prtl
//	portal_map:
//	  work: /home/me/src/work
//	  notes: /home/me/notes
//
// A missing file is not an error: Load returns a config holding only the
// defaults. A file that exists but cannot be parsed is a hard failure and is
// never repaired automatically.
//
// # Canonical Paths
//
// PortalConfig.Put does not validate its input. Callers resolve paths with
// the resolver package first so the map only ever holds canonical paths.
//
// # Concurrency
//
// Nothing is locked. Two prtl processes that load, modify and store at the
// same time race on the file and the later store wins. Store overwrites the
// file in place, so a crash mid-write can leave a truncated file behind.
package portal
