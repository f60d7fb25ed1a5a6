package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree("demo", map[string]string{
		"Cargo.toml":  StatusRendered,
		"src/main.rs": StatusRendered,
		"logo.png":    StatusCopied,
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "demo/")
	// directories come first
	assert.Contains(t, lines[1], "src/")
	assert.Contains(t, lines[2], "main.rs")
	assert.Contains(t, out, "Cargo.toml")
	assert.Contains(t, out, "logo.png")
	assert.Contains(t, out, StatusCopied)
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("demo", nil))
}
