// Package completiontest implements utilities for testing code completion on the corpus of annotated Dart files
// defined under test/testdata.
//
// A test file is ordinary Dart source containing cursor markers. A marker is a "!" followed by a digit or an upper case
// letter, such as !1 or !A. Markers are removed before the source is parsed and each one records the offset at which it
// appeared. Expectations are written in comments of the form
//
//	// expect: 1+toString 1-hashCode
//
// where 1+toString means that toString must be proposed at marker !1 and 1-hashCode means that hashCode must not be.
package completiontest

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/marcuscaisey/dartcomplete/analysis"
	"github.com/marcuscaisey/dartcomplete/completion"
	"github.com/marcuscaisey/dartcomplete/parser"
	"github.com/marcuscaisey/dartcomplete/search"
)

var (
	markerRe      = regexp.MustCompile(`!([0-9A-Z])`)
	expectationRe = regexp.MustCompile(`^([0-9A-Z])([+-])(.+)$`)

	// ExpectComment matches the expectation comments of a test file.
	ExpectComment = regexp.MustCompile(`// expect: (.+)`)
)

func init() {
	color.NoColor = false
}

// Run runs test in a subtest for each .dart file under test/testdata. All subtests are run in parallel.
func Run(t *testing.T, test func(t *testing.T, path string)) {
	rootDir := mustGoModuleRoot(t)
	testdataDir := filepath.Join(rootDir, "test", "testdata")
	run(t, test, testdataDir)
}

func run(t *testing.T, test func(t *testing.T, path string), path string) {
	matches, err := filepath.Glob(filepath.Join(path, "*"))
	if err != nil {
		t.Fatal(err)
	}

	for _, path := range matches {
		testName := snakeToPascalCase(filepath.Base(path))
		if filepath.Ext(path) == ".dart" {
			testName = strings.TrimSuffix(testName, ".dart")
			t.Run(testName, func(t *testing.T) {
				t.Parallel()
				test(t, path)
			})
		} else {
			t.Run(testName, func(t *testing.T) {
				t.Parallel()
				run(t, test, path)
			})
		}
	}
}

func snakeToPascalCase(s string) string {
	var b strings.Builder
	for part := range strings.SplitSeq(s, "_") {
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

// Source is annotated source code with its markers removed.
type Source struct {
	Text    string
	Markers map[rune]int // offset in Text of each marker
}

// ParseMarkers removes the markers from annotated source code and records where they were.
func ParseMarkers(annotated string) (Source, error) {
	src := Source{Markers: map[rune]int{}}
	var b strings.Builder
	last := 0
	for _, match := range markerRe.FindAllStringSubmatchIndex(annotated, -1) {
		b.WriteString(annotated[last:match[0]])
		marker, _ := utf8.DecodeRuneInString(annotated[match[2]:match[3]])
		if _, ok := src.Markers[marker]; ok {
			return Source{}, fmt.Errorf("marker !%c appears more than once", marker)
		}
		src.Markers[marker] = b.Len()
		last = match[1]
	}
	b.WriteString(annotated[last:])
	src.Text = b.String()
	return src, nil
}

// MustParseMarkers is like [ParseMarkers] but fails the test if there's an error.
func MustParseMarkers(t *testing.T, annotated string) Source {
	t.Helper()
	src, err := ParseMarkers(annotated)
	require.NoError(t, err)
	return src
}

// Expectation is an expectation about the proposals made at a marker.
type Expectation struct {
	Marker   rune
	Proposed bool
	Name     string
}

func (e Expectation) String() string {
	sign := "-"
	if e.Proposed {
		sign = "+"
	}
	return fmt.Sprintf("%c%s%s", e.Marker, sign, e.Name)
}

// ParseExpectation parses an expectation written as N+name or N-name.
func ParseExpectation(s string) (Expectation, error) {
	match := expectationRe.FindStringSubmatch(s)
	if match == nil {
		return Expectation{}, fmt.Errorf("invalid expectation %q: should be of the form N+name or N-name", s)
	}
	marker, _ := utf8.DecodeRuneInString(match[1])
	return Expectation{Marker: marker, Proposed: match[2] == "+", Name: match[3]}, nil
}

// MustParseExpectations parses expectations with [ParseExpectation], failing the test if any are invalid.
func MustParseExpectations(t *testing.T, ss ...string) []Expectation {
	t.Helper()
	expectations := make([]Expectation, len(ss))
	for i, s := range ss {
		e, err := ParseExpectation(s)
		require.NoError(t, err)
		expectations[i] = e
	}
	return expectations
}

// Complete parses, analyses and indexes src and returns the proposals made at offset, sorted with
// [completion.ProposalCollector.Sorted]. Syntax errors in src are expected and ignored. The engine logs to t.
func Complete(t *testing.T, src string, offset int, opts ...completion.Option) []*completion.Proposal {
	t.Helper()
	unit, _ := parser.ParseSource([]byte(src), "test.dart")
	result := analysis.Analyze(unit)
	index := search.NewIndex(analysis.Core().Unit(), result.Unit())
	collector := &completion.ProposalCollector{}
	opts = append([]completion.Option{completion.WithLogger(zaptest.NewLogger(t))}, opts...)
	completion.NewEngine(collector, result, index, opts...).Complete(unit, offset)
	require.True(t, collector.Done(), "reporting didn't end")
	return collector.Sorted()
}

// Check completes at each marker of annotated which has expectations and reports every expectation which isn't met.
func Check(t *testing.T, annotated string, expectations ...string) {
	t.Helper()
	src := MustParseMarkers(t, annotated)
	byMarker := map[rune][]Expectation{}
	for _, e := range MustParseExpectations(t, expectations...) {
		byMarker[e.Marker] = append(byMarker[e.Marker], e)
	}
	markers := make([]rune, 0, len(byMarker))
	for marker := range byMarker {
		markers = append(markers, marker)
	}
	slices.Sort(markers)

	for _, marker := range markers {
		offset, ok := src.Markers[marker]
		require.True(t, ok, "no marker !%c in source", marker)
		proposals := Complete(t, src.Text, offset)
		completions := make([]string, len(proposals))
		for i, p := range proposals {
			completions[i] = p.Completion
			checkPrefix(t, src.Text, offset, p)
		}
		for _, e := range byMarker[marker] {
			if slices.Contains(completions, e.Name) != e.Proposed {
				t.Errorf("%s not met at offset %d, got completions: %s", e, offset, strings.Join(completions, " "))
			}
		}
	}
}

// checkPrefix reports p if it doesn't complete the text between its offset and the cursor, or if it's private when
// that text isn't.
func checkPrefix(t *testing.T, text string, offset int, p *completion.Proposal) {
	t.Helper()
	if p.Offset < 0 || p.Offset > offset {
		t.Errorf("%s: offset should be at or before the cursor at %d", p, offset)
		return
	}
	typed := text[p.Offset:offset]
	if !strings.HasPrefix(p.Completion, typed) {
		t.Errorf("%s: completion doesn't start with the typed text %q", p, typed)
	}
	if strings.HasPrefix(p.Completion, "_") && !strings.HasPrefix(typed, "_") {
		t.Errorf("%s: private name proposed for non-private prefix %q", p, typed)
	}
}

// CheckFile runs the expectations written in the comments of the test file at path.
func CheckFile(t *testing.T, path string) {
	t.Helper()
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var expectations []string
	for _, comment := range ParseComments(contents, ExpectComment) {
		expectations = append(expectations, strings.Fields(string(comment))...)
	}
	if len(expectations) == 0 {
		t.Fatalf("%s has no %q comments", path, "// expect:")
	}
	Check(t, string(contents), expectations...)
}

// ComputeDiff returns a human-readable report of the differences between a wanted and got value.
func ComputeDiff(want, got any, opts ...cmp.Option) string {
	diff := cmp.Diff(want, got, opts...)
	return fmt.Sprintf("%s\n%s\n%s", color.GreenString("want -"), color.RedString("got +"), colouriseDiff(diff))
}

// ComputeTextDiff returns a human-readable report of the differences between a wanted and got string.
// If there are no differences, an empty string is returned.
// The output of this function is more readable than [ComputeDiff] for string inputs.
func ComputeTextDiff(want, got string) string {
	edits := myers.ComputeEdits(span.URIFromPath("want"), want, got)
	diff := fmt.Sprint(gotextdiff.ToUnified("want", "got", want, edits))
	return colouriseDiff(diff)
}

func colouriseDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "-") {
			lines[i] = color.GreenString("%s", line)
		} else if strings.HasPrefix(line, "+") {
			lines[i] = color.RedString("%s", line)
		}
	}
	return strings.Join(lines, "\n")
}

// ParseComments returns the first submatch of each match of commentPattern in fileContents.
func ParseComments(fileContents []byte, commentPattern *regexp.Regexp) [][]byte {
	var lines [][]byte
	for _, match := range commentPattern.FindAllSubmatch(fileContents, -1) {
		lines = append(lines, match[1])
	}
	return lines
}

// MustBuildBinary builds a binary defined in the github.com/marcuscaisey/dartcomplete Go module and returns the path to
// it. name should be a directory in the root of the module. A binary of the same name is output to the build directory.
func MustBuildBinary(t *testing.T, name string) string {
	t.Helper()

	rootDir := mustGoModuleRoot(t)
	buildDir := filepath.Join(rootDir, "build")
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		t.Fatalf("building %s: %s", name, err)
	}

	binPath := filepath.Join(buildDir, name)
	cmd := exec.Command("go", "build", "-o", binPath, "github.com/marcuscaisey/dartcomplete/"+name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("building %s: %s: %v\nOutput:\n%s\n", name, cmd.String(), err, string(output))
	}

	return binPath
}

func mustGoModuleRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("determining go module root: %s", err)
	}

	for d := wd; d != "/"; d = filepath.Dir(d) {
		gomodPath := filepath.Join(d, "go.mod")
		if info, err := os.Stat(gomodPath); err == nil && !info.IsDir() {
			return d
		}
	}

	t.Fatal("determining go module root: no parent directory containing go.mod found")
	return ""
}
