package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnaka91/cargo-hatch/internal/vars"
)

// pngHeader is enough for content sniffing to detect an image.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func names(files []RepoFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func classes(files []RepoFile) map[string]Classification {
	out := make(map[string]Classification, len(files))
	for _, f := range files {
		out[f.Name] = f.Class
	}
	return out
}

func newContext(t *testing.T, values map[string]any) *vars.Context {
	t.Helper()
	vc := vars.New()
	for k, v := range values {
		require.NoError(t, vc.Insert(k, v))
	}
	return vc
}

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
