package shell

import "strings"

// Kind identifies a supported shell.
type Kind string

const (
	KindBash Kind = "bash"
	KindZsh  Kind = "zsh"
)

// DefaultKind is used by ez-init when no shell is given.
const DefaultKind = KindBash

// SupportedKinds lists every shell the shorthand can be installed for.
func SupportedKinds() []Kind {
	return []Kind{KindBash, KindZsh}
}

// ParseKind maps a shell name (case-insensitive) to a Kind.
// It reports false for shells prtl has no shorthand for.
func ParseKind(name string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, supported := range SupportedKinds() {
		if k == supported {
			return k, true
		}
	}
	return "", false
}

// ProfileFragment is the substring a profile file name must contain
// (case-insensitive) to be offered as a candidate, e.g. ".bashrc".
func (k Kind) ProfileFragment() string {
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}
