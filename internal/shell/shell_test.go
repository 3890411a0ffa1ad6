package shell

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"prtl/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
		ok    bool
	}{
		{"bash", KindBash, true},
		{"ZSH", KindZsh, true},
		{" bash ", KindBash, true},
		{"fish", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseKind(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("# profile\n"), 0644))
}

func TestLocator_FindsHiddenCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".bashrc"))
	writeFile(t, filepath.Join(root, ".BASH_PROFILE"))
	writeFile(t, filepath.Join(root, ".zshrc"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(root, "bash-dir"), 0755))

	loc := &Locator{Root: root, MaxDepth: DefaultMaxDepth, MaxResults: DefaultMaxResults}
	got := slices.Collect(loc.Locate(KindBash))

	assert.ElementsMatch(t, []string{
		filepath.Join(root, ".bashrc"),
		filepath.Join(root, ".BASH_PROFILE"),
	}, got)
}

func TestLocator_DepthBound(t *testing.T) {
	root := t.TempDir()
	shallow := filepath.Join(root, "a", ".zshrc")
	deep := filepath.Join(root, "a", "b", "c", ".zshrc")
	writeFile(t, shallow)
	writeFile(t, deep)

	loc := &Locator{Root: root, MaxDepth: 1, MaxResults: DefaultMaxResults}
	got := slices.Collect(loc.Locate(KindZsh))

	assert.Equal(t, []string{shallow}, got)
}

func TestLocator_CountBound(t *testing.T) {
	root := t.TempDir()
	for i := range 5 {
		writeFile(t, filepath.Join(root, "bash"+string(rune('a'+i))))
	}

	loc := &Locator{Root: root, MaxDepth: DefaultMaxDepth, MaxResults: 3}
	got := slices.Collect(loc.Locate(KindBash))

	assert.Len(t, got, 3)
}

func TestLocator_StopsWhenConsumerStops(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "bash1"))
	writeFile(t, filepath.Join(root, "bash2"))

	loc := &Locator{Root: root, MaxDepth: DefaultMaxDepth, MaxResults: DefaultMaxResults}
	calls := 0
	for range loc.Locate(KindBash) {
		calls++
		break
	}
	assert.Equal(t, 1, calls)
}

func TestLocator_MissingRoot(t *testing.T) {
	loc := &Locator{Root: filepath.Join(t.TempDir(), "missing"), MaxDepth: 2, MaxResults: 2}
	assert.Empty(t, slices.Collect(loc.Locate(KindBash)))
}

func TestRenderScript(t *testing.T) {
	script, err := RenderScript(ScriptData{Shell: "BASH"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "# prtl shorthand for bash."))
	assert.Contains(t, script, "function p() {")
	assert.Contains(t, script, `cd "$("prtl" "$@")"`)
	assert.Contains(t, script, `"prtl" "$@"`)
	assert.Contains(t, script, "Type 'prtl -h' for more info.")
	assert.Contains(t, script, "echo 'p' short-hand only supports 'get' and 'set' commands.")
}

func TestRenderScript_CustomNames(t *testing.T) {
	script, err := RenderScript(ScriptData{Shell: "zsh", Binary: "/opt/bin/prtl", FuncName: "jump"})
	require.NoError(t, err)

	assert.Contains(t, script, "function jump() {")
	assert.Contains(t, script, `cd "$("/opt/bin/prtl" "$@")"`)
}

func TestInstaller_Install(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, ".bashrc")
	require.NoError(t, os.WriteFile(profile, []byte("export A=1"), 0644))

	scriptPath, err := NewInstaller().Install(profile, KindBash)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ScriptFileName), scriptPath)

	script, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.Contains(t, string(script), "function p()")

	content, err := os.ReadFile(profile)
	require.NoError(t, err)
	assert.Equal(t, "export A=1\n"+SourceLine(scriptPath)+"\n", string(content))
}

// Installing twice is not idempotent: the source line is appended again.
func TestInstaller_RepeatedInstallDuplicatesSourceLine(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, ".zshrc")

	installer := NewInstaller()
	scriptPath, err := installer.Install(profile, KindZsh)
	require.NoError(t, err)
	_, err = installer.Install(profile, KindZsh)
	require.NoError(t, err)

	content, err := os.ReadFile(profile)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), SourceLine(scriptPath)))
}

func TestInstaller_UnwritableDirectory(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewInstaller().Install(filepath.Join(blocker, ".bashrc"), KindBash)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr), "expected IOError, got %T", err)
	assert.Equal(t, "write script", ioErr.Op)
}

type fakeSearcher struct {
	paths []string
	kinds []Kind
}

func (f *fakeSearcher) Locate(kind Kind) iter.Seq[string] {
	f.kinds = append(f.kinds, kind)
	return slices.Values(f.paths)
}

type fakePrompter struct {
	choice    int
	chooseErr error
	line      string
	calls     []string
	options   []string
}

func (f *fakePrompter) Choose(title string, options []string) (int, error) {
	f.calls = append(f.calls, "choose")
	f.options = options
	return f.choice, f.chooseErr
}

func (f *fakePrompter) ReadLine(prompt string) (string, error) {
	f.calls = append(f.calls, "readline")
	return f.line, nil
}

func TestSetup_ChoosesCandidate(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, ".bashrc")
	second := filepath.Join(dir, ".bash_profile")
	searcher := &fakeSearcher{paths: []string{first, second}}
	prompter := &fakePrompter{choice: 1}

	result, err := Setup(KindBash, searcher, prompter, NewInstaller())
	require.NoError(t, err)

	assert.Equal(t, []Kind{KindBash}, searcher.kinds)
	assert.Equal(t, []string{"choose"}, prompter.calls)
	assert.Equal(t, []string{first, second}, prompter.options)
	assert.Equal(t, second, result.Profile)
	assert.FileExists(t, result.Script)
}

func TestSetup_FallsBackToTypedPath(t *testing.T) {
	dir := t.TempDir()
	typed := filepath.Join(dir, "custom_profile")
	searcher := &fakeSearcher{paths: []string{filepath.Join(dir, ".bashrc")}}
	prompter := &fakePrompter{choice: NoChoice, line: typed}

	result, err := Setup(KindBash, searcher, prompter, NewInstaller())
	require.NoError(t, err)

	assert.Equal(t, []string{"choose", "readline"}, prompter.calls)
	assert.Equal(t, typed, result.Profile)
	assert.FileExists(t, typed)
}

func TestSetup_NoCandidatesSkipsChoice(t *testing.T) {
	dir := t.TempDir()
	typed := filepath.Join(dir, ".zshrc")
	prompter := &fakePrompter{line: typed}

	_, err := Setup(KindZsh, &fakeSearcher{}, prompter, NewInstaller())
	require.NoError(t, err)

	assert.Equal(t, []string{"readline"}, prompter.calls)
}

func TestSetup_TypedTildePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	profile := filepath.Join(home, ".bashrc")
	require.NoError(t, os.WriteFile(profile, []byte("# existing\n"), 0644))
	t.Chdir(t.TempDir())

	result, err := Setup(KindBash, &fakeSearcher{}, &fakePrompter{line: "~/.bashrc"}, NewInstaller())
	require.NoError(t, err)

	assert.Equal(t, profile, result.Profile)
	assert.Equal(t, filepath.Join(home, ScriptFileName), result.Script)

	content, err := os.ReadFile(profile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# existing\n"))
	assert.Contains(t, string(content), SourceLine(result.Script))
	assert.NoDirExists(t, "~")
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/.zshrc", filepath.Join(home, ".zshrc")},
		{"~other/.zshrc", "~other/.zshrc"},
		{"/etc/profile", "/etc/profile"},
		{"relative/~/x", "relative/~/x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := expandHome(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetup_EmptyAnswer(t *testing.T) {
	prompter := &fakePrompter{}

	_, err := Setup(KindBash, &fakeSearcher{}, prompter, NewInstaller())
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestSetup_ChooseError(t *testing.T) {
	prompter := &fakePrompter{chooseErr: ErrAborted}

	_, err := Setup(KindBash, &fakeSearcher{paths: []string{"/x/.bashrc"}}, prompter, NewInstaller())
	assert.ErrorIs(t, err, ErrAborted)
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"", NoChoice, false},
		{"  ", NoChoice, false},
		{"1", 0, false},
		{" 3 ", 2, false},
		{"0", NoChoice, true},
		{"4", NoChoice, true},
		{"abc", NoChoice, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseChoice(tt.input, 3)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestInstall_WarnsWhenProfileIsCreated(t *testing.T) {
	var logs bytes.Buffer
	logging.InitForCLI(logging.LevelWarn, &logs)
	t.Cleanup(func() { logging.InitForCLI(logging.LevelWarn, io.Discard) })

	profile := filepath.Join(t.TempDir(), ".zshrc")
	_, err := NewInstaller().Install(profile, KindZsh)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "does not exist, creating it")

	logs.Reset()
	_, err = NewInstaller().Install(profile, KindZsh)
	require.NoError(t, err)
	assert.Empty(t, logs.String())
}
