package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/omnigui/omnigui/pkg/layout"
)

// TreeNode is one node in the serialized layout tree.
type TreeNode struct {
	Kind     string     `json:"kind"`
	Style    string     `json:"style,omitempty"`
	Desired  SafeSize   `json:"desired"`
	Bounds   SafeRect   `json:"bounds"`
	Visual   SafeRect   `json:"visual"`
	Depth    int        `json:"depth"`
	Focused  bool       `json:"focused,omitempty"`
	Children []TreeNode `json:"children,omitempty"`
}

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SafeSize is a JSON-safe size.
type SafeSize struct {
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

// SafeRect is a JSON-safe rectangle.
type SafeRect struct {
	X      SafeFloat `json:"x"`
	Y      SafeFloat `json:"y"`
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

// maxTreeDepth limits recursion depth to prevent stack overflow from malformed trees.
const maxTreeDepth = 500

func serializeTree(n layout.Node, depth int) TreeNode {
	base := n.Base()
	d, b, v := base.DesiredSize(), base.Bounds(), base.VisualBounds()
	node := TreeNode{
		Kind:    base.Kind(),
		Desired: SafeSize{SafeFloat(d.Width), SafeFloat(d.Height)},
		Bounds:  SafeRect{SafeFloat(b.X), SafeFloat(b.Y), SafeFloat(b.Width), SafeFloat(b.Height)},
		Visual:  SafeRect{SafeFloat(v.X), SafeFloat(v.Y), SafeFloat(v.Width), SafeFloat(v.Height)},
		Depth:   depth,
		Focused: base.IsFocused(),
	}
	if style := base.Style(); style != base.Kind() {
		node.Style = style
	}
	if depth >= maxTreeDepth {
		return node
	}
	for child := range base.Children().All() {
		node.Children = append(node.Children, serializeTree(child, depth+1))
	}
	return node
}

// DebugServer exposes a host's tree, frame trace and stats over HTTP.
type DebugServer struct {
	server   *http.Server
	listener net.Listener
}

// Handler returns the debug endpoints: /tree, /frames, /stats and /health.
func (h *Host) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tree", h.handleTree)
	mux.HandleFunc("/frames", h.handleFrames)
	mux.HandleFunc("/stats", h.handleStats)
	mux.HandleFunc("/health", handleHealth)
	return mux
}

// StartDebugServer listens on addr (":0" picks a free port) and serves
// Handler in the background.
func (h *Host) StartDebugServer(addr string) (*DebugServer, error) {
	// Bind listener first to fail fast on port conflicts
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("debug server listen: %w", err)
	}
	s := &DebugServer{
		server:   &http.Server{Handler: h.Handler(), ReadHeaderTimeout: 5 * time.Second},
		listener: listener,
	}
	go s.server.Serve(listener)
	return s, nil
}

// Addr returns the bound address.
func (s *DebugServer) Addr() string { return s.listener.Addr().String() }

// Close gracefully shuts the server down.
func (s *DebugServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, v any) {
	// Encode to buffer first so we can catch errors
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleTree serializes the tree under the host lock, so it never
// observes a half-finished frame.
func (h *Host) handleTree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	root := h.root
	if root == nil {
		h.mu.Unlock()
		http.Error(w, "no tree", http.StatusServiceUnavailable)
		return
	}
	tree := serializeTree(root, 0)
	h.mu.Unlock()

	writeJSON(w, tree)
}

func (h *Host) handleFrames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.trace == nil {
		http.Error(w, "frame tracing disabled", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, h.trace.Timeline())
}

func (h *Host) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.Stats())
}

// handleHealth returns a simple health check response.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
