package permissions

import "sync"

var (
	mu     sync.RWMutex
	root   RootPolicy   = AllowAll{}
	detail DetailPolicy = AllowAll{}
)

// Set installs the process-wide policy pair. Call once at startup,
// before the server starts handling requests.
func Set(r RootPolicy, d DetailPolicy) {
	mu.Lock()
	defer mu.Unlock()
	root = r
	detail = d
}

// Policies returns the registered pair.
func Policies() (RootPolicy, DetailPolicy) {
	mu.RLock()
	defer mu.RUnlock()
	return root, detail
}
