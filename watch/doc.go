// Package watch keeps pinned files in sync with their on-disk contents.
//
// A Watcher re-pins a file into its session whenever the file changes on
// disk, and unpins it when the file disappears. Re-pinning refreshes the
// file's recency in the store, so actively edited files are the last to be
// evicted.
//
//	w := watch.New(sess)
//	w.OnError = func(path string, err error) { log.Printf("watch %s: %v", path, err) }
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	go w.Watch(ctx, "main.go", "go.mod")
//
// Watching uses fsnotify on the files' parent directories, falling back to
// modtime polling when fsnotify is unavailable. The session's internal
// locking makes the watcher's background mutations safe against concurrent
// payload builds.
package watch
