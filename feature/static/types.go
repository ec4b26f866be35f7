package static

import "net/http"

// IndexFile is served for the root request and as the directory fallback.
const IndexFile = "index.html"

// ResolvedFile is the outcome of resolving a request path.
type ResolvedFile struct {
	// Path is the rooted, slash-separated path that was read ("/sub/index.html").
	// Empty when nothing was found.
	Path string
	// Body holds the whole file.
	Body []byte
	// Ext is the text after the last '.' of the final path segment, without the dot.
	Ext string
	// Status is 200 when the file was read and 404 otherwise.
	Status int
}

// Found reports whether the file was read.
func (f ResolvedFile) Found() bool {
	return f.Status == http.StatusOK
}
