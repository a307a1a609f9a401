package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/marcuscaisey/dartcomplete/completion"
	"github.com/marcuscaisey/dartcomplete/config"
	"github.com/marcuscaisey/dartcomplete/test/completiontest"
	"github.com/marcuscaisey/dartcomplete/workspace"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func newWorkspace(t *testing.T, dir, configContents string) *workspace.Workspace {
	t.Helper()
	writeFile(t, filepath.Join(dir, config.Filename), configContents)
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	w, err := workspace.New(cfg, workspace.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return w
}

func complete(t *testing.T, w *workspace.Workspace, annotated string) []string {
	t.Helper()
	src := completiontest.MustParseMarkers(t, annotated)
	doc := w.Analyze("test.dart", []byte(src.Text))
	collector := &completion.ProposalCollector{}
	w.Complete(doc, src.Markers['1'], collector)
	require.True(t, collector.Done())
	return collector.Completions()
}

func TestCompleteMembersOfImportedLibrary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lib", "shapes.dart"), "class Circle { num radius; }\n")
	w := newWorkspace(t, dir, "libraries: [lib/shapes.dart]\n")

	got := complete(t, w, "import 'lib/shapes.dart';\nf(Circle c) { c.rad!1; }\n")
	assert.Equal(t, []string{"radius"}, got)
}

func TestLibraryDeclarationsAreInSearchUniverse(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shapes.dart"), "class Circle {}\nclass Square {}\n")
	w := newWorkspace(t, dir, "libraries: [shapes.dart]\n")

	got := complete(t, w, "f() { Cir!1 }\n")
	assert.Contains(t, got, "Circle")
	assert.NotContains(t, got, "Square")
}

func TestCoreLibraryReplacement(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "core.dart"), "class Object {}\nclass Listing {}\n")
	w := newWorkspace(t, dir, "core_library: core.dart\n")

	got := complete(t, w, "f() { Lis!1 }\n")
	assert.Contains(t, got, "Listing")
	assert.NotContains(t, got, "List")
}

func TestNewReportsEveryMissingLibrary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.Filename), "libraries: [a.dart, b.dart]\n")
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	_, err = workspace.New(cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, "a.dart")
	assert.ErrorContains(t, err, "b.dart")
}

func TestDocumentSyntaxErrorsDontPreventCompletion(t *testing.T) {
	w := newWorkspace(t, t.TempDir(), "")
	src := completiontest.MustParseMarkers(t, "f(int count) { cou!1 ")
	doc := w.Analyze("test.dart", []byte(src.Text))
	assert.Error(t, doc.SyntaxErr)

	var got []string
	w.Complete(doc, src.Markers['1'], completion.RequestorFunc(func(p *completion.Proposal) {
		got = append(got, p.Completion)
	}))
	assert.Equal(t, []string{"count"}, got)
}

func TestDocumentOffset(t *testing.T) {
	w := newWorkspace(t, t.TempDir(), "")
	doc := w.Analyze("test.dart", []byte("f() {\n  x;\n}\n"))

	offset, err := doc.Offset(2, 3)
	require.NoError(t, err)
	assert.Equal(t, len("f() {\n  "), offset)

	_, err = doc.Offset(10, 1)
	assert.Error(t, err)
}
