package portal

import (
	"maps"
	"slices"
)

// DefaultTag is the tag used when no tag is supplied on the command line.
const DefaultTag = "default_prtl"

// PortalConfig is the persisted portal configuration.
// This is the root structure stored in ~/.config/.prtl/config.yaml.
type PortalConfig struct {
	// DefaultTag is the tag used by set and get when none is given
	DefaultTag string `yaml:"default_tag" json:"default_tag"`
	// PortalMap maps tags to absolute canonical paths
	PortalMap map[string]string `yaml:"portal_map" json:"portal_map"`
}

// NewPortalConfig returns a config holding only defaults.
func NewPortalConfig() *PortalConfig {
	return &PortalConfig{
		DefaultTag: DefaultTag,
		PortalMap:  map[string]string{},
	}
}

// normalize fills in values a hand-edited or older file may lack.
func (c *PortalConfig) normalize() {
	if c.DefaultTag == "" {
		c.DefaultTag = DefaultTag
	}
	if c.PortalMap == nil {
		c.PortalMap = map[string]string{}
	}
}

// Get returns the path stored under tag.
func (c *PortalConfig) Get(tag string) (string, bool) {
	path, ok := c.PortalMap[tag]
	return path, ok
}

// Put stores path under tag, replacing any existing entry.
// Callers must pass an already canonical path.
func (c *PortalConfig) Put(tag, path string) {
	if c.PortalMap == nil {
		c.PortalMap = map[string]string{}
	}
	c.PortalMap[tag] = path
}

// Delete removes tag. It reports whether the tag was present.
func (c *PortalConfig) Delete(tag string) bool {
	if _, ok := c.PortalMap[tag]; !ok {
		return false
	}
	delete(c.PortalMap, tag)
	return true
}

// Tags returns all tags in lexical order.
func (c *PortalConfig) Tags() []string {
	return slices.Sorted(maps.Keys(c.PortalMap))
}

// ResolveTag returns tag, or the configured default tag when tag is empty.
func (c *PortalConfig) ResolveTag(tag string) string {
	if tag != "" {
		return tag
	}
	if c.DefaultTag != "" {
		return c.DefaultTag
	}
	return DefaultTag
}

// Len returns the number of stored portals.
func (c *PortalConfig) Len() int {
	return len(c.PortalMap)
}
