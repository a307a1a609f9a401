package test

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcuscaisey/dartcomplete/config"
	"github.com/marcuscaisey/dartcomplete/test/completiontest"
)

const cliSource = "class A { int count; }\nf(A a) { a.cou!1; }\n"

// writeProject writes a Dart file and a config file which disables colour to a temporary directory and returns the
// file's path and cursor offset.
func writeProject(t *testing.T, annotated string) (string, int) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte("color: never\n"), 0644))
	src := completiontest.MustParseMarkers(t, annotated)
	path := filepath.Join(dir, "main.dart")
	require.NoError(t, os.WriteFile(path, []byte(src.Text), 0644))
	return path, src.Markers['1']
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	bin := completiontest.MustBuildBinary(t, "dartcomplete")
	t.Logf("dartcomplete %s", strings.Join(args, " "))
	cmd := exec.Command(bin, args...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func TestCLICompleteJSON(t *testing.T) {
	path, offset := writeProject(t, cliSource)

	stdout, stderr, err := runCLI(t, "complete", "--json", "--offset", strconv.Itoa(offset), path)
	require.NoError(t, err, stderr)

	var got []struct {
		Kind          string `json:"kind"`
		Completion    string `json:"completion"`
		Offset        int    `json:"offset"`
		DeclaringType string `json:"declaringType"`
		ReturnType    string `json:"returnType"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "field", got[0].Kind)
	assert.Equal(t, "count", got[0].Completion)
	assert.Equal(t, offset-len("cou"), got[0].Offset)
	assert.Equal(t, "A", got[0].DeclaringType)
	assert.Equal(t, "int", got[0].ReturnType)
}

func TestCLICompleteLineAndColumn(t *testing.T) {
	path, offset := writeProject(t, cliSource)
	column := offset - len("class A { int count; }\n") + 1

	stdout, stderr, err := runCLI(t, "complete", "--line", "2", "--column", strconv.Itoa(column), path)
	require.NoError(t, err, stderr)
	assert.Equal(t, "field count "+strconv.Itoa(offset-len("cou"))+"\n", stdout)
}

func TestCLICompleteWithoutPosition(t *testing.T) {
	path, _ := writeProject(t, cliSource)

	_, stderr, err := runCLI(t, "complete", path)
	exitErr := &exec.ExitError{}
	require.True(t, errors.As(err, &exitErr), "expected non-zero exit, got %v", err)
	assert.Contains(t, stderr, "--offset")
}

func TestCLIAST(t *testing.T) {
	path, _ := writeProject(t, "int x = 1;\n")

	stdout, stderr, err := runCLI(t, "ast", path)
	require.NoError(t, err, stderr)
	assert.True(t, strings.HasPrefix(stdout, "(CompilationUnit"), "stdout:\n%s", stdout)
	assert.Contains(t, stdout, "(Name x)")
}

func TestCLIASTReportsSyntaxErrors(t *testing.T) {
	path, _ := writeProject(t, "int x = ;\n")

	stdout, stderr, err := runCLI(t, "ast", path)
	exitErr := &exec.ExitError{}
	require.True(t, errors.As(err, &exitErr), "expected non-zero exit, got %v", err)
	assert.True(t, strings.HasPrefix(stdout, "(CompilationUnit"), "stdout:\n%s", stdout)
	assert.Contains(t, stderr, "error")
}
