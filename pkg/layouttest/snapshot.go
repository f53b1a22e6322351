package layouttest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/omnigui/omnigui/pkg/layout"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// UpdateEnv is the environment variable that rewrites golden files.
const UpdateEnv = "OMNIGUI_UPDATE_SNAPSHOTS"

// Snapshot captures the node tree layout and display operations.
type Snapshot struct {
	Tree       *NodeSnapshot `json:"tree"`
	DisplayOps []DisplayOp   `json:"displayOps,omitempty"`
}

// NodeSnapshot is one node in the serialized tree.
type NodeSnapshot struct {
	ID       string          `json:"id"`
	Kind     string          `json:"kind"`
	Style    string          `json:"style,omitempty"`
	Desired  [2]float64      `json:"desired"`
	Bounds   [4]float64      `json:"bounds"`
	Children []*NodeSnapshot `json:"children,omitempty"`
}

// Capture serializes the tree rooted at root. Style is omitted when it
// equals the kind name.
func Capture(root layout.Node) *Snapshot {
	return &Snapshot{Tree: captureNode(root, &kindCounter{})}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When UpdateEnv=1 is set,
// the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other, or "" if they
// serialize identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

// kindCounter assigns stable IDs like "Panel#0", "Panel#1".
type kindCounter struct {
	counts map[string]int
}

func (c *kindCounter) next(kind string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[kind]
	c.counts[kind] = n + 1
	return fmt.Sprintf("%s#%d", kind, n)
}

func captureNode(n layout.Node, counter *kindCounter) *NodeSnapshot {
	base := n.Base()
	desired := base.DesiredSize()
	bounds := base.Bounds()
	snap := &NodeSnapshot{
		ID:      counter.next(base.Kind()),
		Kind:    base.Kind(),
		Desired: [2]float64{round2(desired.Width), round2(desired.Height)},
		Bounds:  [4]float64{round2(bounds.X), round2(bounds.Y), round2(bounds.Width), round2(bounds.Height)},
	}
	if style := base.Style(); style != base.Kind() {
		snap.Style = style
	}
	for child := range base.Children().All() {
		snap.Children = append(snap.Children, captureNode(child, counter))
	}
	return snap
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
