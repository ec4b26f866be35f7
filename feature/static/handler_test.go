package static

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"hotserve/core/server"
	"hotserve/feature/reload"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// png header followed by bytes that are not valid UTF-8.
var pngBytes = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0xff, 0xfe, 0x00, 0x80}

type response struct {
	status      int
	contentType string
	body        []byte
}

func setupTestApp(t *testing.T, files map[string][]byte) *fiber.App {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, content, 0o644))
	}

	app := server.NewApp(zap.NewNop())
	require.NoError(t, NewFeature(root, reload.Snippet, zap.NewNop()).Load(app))
	return app
}

func get(t *testing.T, app *fiber.App, path string) response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{
		status:      resp.StatusCode,
		contentType: resp.Header.Get(fiber.HeaderContentType),
		body:        body,
	}
}

func withSnippet(s string) []byte {
	return append([]byte(s), reload.Snippet...)
}

func TestServeIndex(t *testing.T) {
	app := setupTestApp(t, map[string][]byte{"index.html": []byte("<h1>Hi</h1>")})

	res := get(t, app, "/")
	assert.Equal(t, 200, res.status)
	assert.Contains(t, res.contentType, "text/html")
	assert.Equal(t, withSnippet("<h1>Hi</h1>"), res.body)
}

func TestServeStylesheet(t *testing.T) {
	app := setupTestApp(t, map[string][]byte{"style.css": []byte("body{}")})

	res := get(t, app, "/style.css")
	assert.Equal(t, 200, res.status)
	assert.Contains(t, res.contentType, "text/css")
	assert.Equal(t, []byte("body{}"), res.body)
}

func TestServeMissing(t *testing.T) {
	app := setupTestApp(t, nil)

	for _, path := range []string{"/missing.js", "/"} {
		res := get(t, app, path)
		assert.Equal(t, 404, res.status, path)
		assert.Empty(t, res.body, path)
	}
}

func TestServeDirectoryIndex(t *testing.T) {
	app := setupTestApp(t, map[string][]byte{"sub/index.html": []byte("X")})

	for _, path := range []string{"/sub", "/sub/", "/sub/index.html"} {
		res := get(t, app, path)
		assert.Equal(t, 200, res.status, path)
		assert.Equal(t, withSnippet("X"), res.body, path)
	}
}

func TestServeBinary(t *testing.T) {
	app := setupTestApp(t, map[string][]byte{"image.png": pngBytes})

	res := get(t, app, "/image.png")
	assert.Equal(t, 200, res.status)
	assert.Equal(t, "image/png", res.contentType)
	assert.Equal(t, pngBytes, res.body)
}

func TestServe_SnippetOnlyForHTML(t *testing.T) {
	app := setupTestApp(t, map[string][]byte{
		"data.json":  []byte(`{"a":1}`),
		"page.htm":   []byte("<p>htm</p>"),
		"UPPER.HTML": []byte("<p>upper</p>"),
		"app.js":     []byte("console.log(1)"),
	})

	tests := []struct {
		path string
		body string
	}{
		{"/data.json", `{"a":1}`},
		{"/page.htm", "<p>htm</p>"},
		{"/UPPER.HTML", "<p>upper</p>"},
		{"/app.js", "console.log(1)"},
	}

	for _, tt := range tests {
		res := get(t, app, tt.path)
		assert.Equal(t, 200, res.status, tt.path)
		assert.Equal(t, []byte(tt.body), res.body, tt.path)
	}
}

func TestServe_InvalidUTF8HTMLIsSentVerbatim(t *testing.T) {
	raw := []byte{'<', 'p', '>', 0xff, 0xfe, '<', '/', 'p', '>'}
	app := setupTestApp(t, map[string][]byte{"latin1.html": raw})

	res := get(t, app, "/latin1.html")
	assert.Equal(t, 200, res.status)
	assert.Contains(t, res.contentType, "text/html")
	assert.Equal(t, raw, res.body)
}

func TestServe_Idempotent(t *testing.T) {
	app := setupTestApp(t, map[string][]byte{
		"index.html": []byte("<h1>Hi</h1>"),
		"image.png":  pngBytes,
	})

	for _, path := range []string{"/", "/image.png"} {
		first := get(t, app, path)
		second := get(t, app, path)
		assert.Equal(t, first.body, second.body, path)
	}
}

func TestServe_NoExtensionHasNoContentType(t *testing.T) {
	app := setupTestApp(t, map[string][]byte{"LICENSE": []byte("MIT")})

	res := get(t, app, "/LICENSE")
	assert.Equal(t, 200, res.status)
	assert.Empty(t, res.contentType)
	assert.Equal(t, []byte("MIT"), res.body)
}

func TestServe_UnknownExtensionHasNoContentType(t *testing.T) {
	app := setupTestApp(t, map[string][]byte{"notes.zzzunknown": []byte("hello")})

	res := get(t, app, "/notes.zzzunknown")
	assert.Equal(t, 200, res.status)
	assert.Empty(t, res.contentType)
	assert.Equal(t, []byte("hello"), res.body)
}

func TestContentType(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"", ""},
		{"zzzunknown", ""},
		{"png", "image/png"},
		{"css", "text/css"},
	}

	for _, tt := range tests {
		got := ContentType(tt.ext)
		if tt.want == "" {
			assert.Empty(t, got, tt.ext)
			continue
		}
		assert.Contains(t, got, tt.want, tt.ext)
	}
	assert.Contains(t, ContentType("html"), "text/html")
}

func TestServe_EscapedPath(t *testing.T) {
	app := setupTestApp(t, map[string][]byte{
		"my file.txt": []byte("spaced"),
		"a+b.txt":     []byte("plus"),
	})

	res := get(t, app, "/my%20file.txt")
	assert.Equal(t, 200, res.status)
	assert.Equal(t, []byte("spaced"), res.body)

	res = get(t, app, "/a+b.txt")
	assert.Equal(t, 200, res.status)
	assert.Equal(t, []byte("plus"), res.body)
}

func TestFeature(t *testing.T) {
	feature := NewFeature(t.TempDir(), nil, zap.NewNop())

	assert.Equal(t, "static", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
