package graph

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrRenderingUnavailable reports that no rendering backend is usable.
// Builders treat it like any render failure: the graph keeps its adjacency.
var ErrRenderingUnavailable = errors.New("graph rendering unavailable")

// Renderer turns graphviz source into an image.
type Renderer interface {
	Render(ctx context.Context, name string, dot string) ([]byte, error)
}

// GraphvizRenderer shells out to the graphviz dot binary.
type GraphvizRenderer struct {
	Command string
}

func NewGraphvizRenderer() *GraphvizRenderer {
	return &GraphvizRenderer{Command: "dot"}
}

func (r *GraphvizRenderer) Render(ctx context.Context, name string, dot string) ([]byte, error) {
	if _, err := exec.LookPath(r.Command); err != nil {
		return nil, ErrRenderingUnavailable
	}

	cmd := exec.CommandContext(ctx, r.Command, "-Tpng")
	cmd.Stdin = strings.NewReader(dot)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rendering %s: %w (%s)", name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// NoopRenderer disables rendering. Graphs degrade to adjacency-only.
type NoopRenderer struct{}

func (NoopRenderer) Render(context.Context, string, string) ([]byte, error) {
	return nil, ErrRenderingUnavailable
}
