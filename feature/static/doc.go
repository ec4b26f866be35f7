// Package static serves files from the source directory.
//
// The Service resolves a request path to a file; the Handler turns the result
// into a response.
//
// # Resolution
//
//  1. An empty path resolves to index.html.
//  2. Otherwise the path is read as a regular file.
//  3. Failing that, <path>/index.html is read.
//  4. Failing that, the result is 404 with an empty body.
//
// Files are read whole on every request. Paths are confined to the source
// directory.
//
// # Responses
//
// The Content-Type is looked up from the extension of the resolved file;
// files without an extension get none. HTML files that are valid UTF-8 get the
// reload snippet appended verbatim. Everything else is sent byte for byte.
//
// # HTTP Endpoints
//
//   - GET / : index.html
//   - GET /* : any file below the source directory
package static
