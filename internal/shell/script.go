package shell

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	// DefaultBinary is the command the shorthand function wraps.
	DefaultBinary = "prtl"
	// DefaultFuncName is the name of the installed shell function.
	DefaultFuncName = "p"
	// ScriptFileName is written next to the chosen profile.
	ScriptFileName = ".prtl_shorthand.sh"
)

// ScriptData parameterizes the shorthand script.
type ScriptData struct {
	Shell    string
	Binary   string
	FuncName string
}

// shorthandTemplate defines a function that changes directory on `get`,
// because a child process cannot change its parent's working directory.
const shorthandTemplate = `# prtl shorthand for {{ .Shell | lower }}. Generated by '{{ .Binary }} ez-init'.
function {{ .FuncName }}() {
   if [ "$1" = "get" ]; then
     cd "$({{ .Binary | quote }} "$@")"
   elif [ "$1" = "set" ]; then
     {{ .Binary | quote }} "$@"
   else
     echo Global options will not work. Type {{ printf "%s -h" .Binary | squote }} for more info.
     echo {{ .FuncName | squote }} short-hand only supports {{ "get" | squote }} and {{ "set" | squote }} commands.
   fi
}
`

var scriptTemplate = template.Must(template.New("shorthand").Funcs(sprig.TxtFuncMap()).Parse(shorthandTemplate))

// RenderScript renders the shorthand function for the given shell.
func RenderScript(data ScriptData) (string, error) {
	if data.Binary == "" {
		data.Binary = DefaultBinary
	}
	if data.FuncName == "" {
		data.FuncName = DefaultFuncName
	}

	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render shorthand script: %w", err)
	}
	return buf.String(), nil
}
