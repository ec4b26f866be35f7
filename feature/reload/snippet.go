package reload

import _ "embed"

// Snippet is appended to every HTML response. It records the /hot value seen
// on first load, polls /hot once per second and reloads the page when the
// value changes. Failed polls are ignored.
//
//go:embed snippet.html
var Snippet []byte
