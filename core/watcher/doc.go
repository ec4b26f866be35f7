// Package watcher adapts fsnotify to a recursive directory watch.
//
// fsnotify only watches single directories. The Watcher walks the root at
// construction time and subscribes to every directory below it, then keeps
// subscribing to directories created later so that edits anywhere in the tree
// are reported.
//
// # Lifecycle
//
//	w, err := watcher.New(root, logger, func(ev fsnotify.Event) { counter.Increment() })
//	if err != nil {
//	    return err // fatal: the root cannot be watched
//	}
//	defer w.Close()
//	go w.Run(ctx)
//
// Errors reported by fsnotify after startup are logged at debug level and
// otherwise ignored.
package watcher
