package domain

import (
	"strconv"
	"sync"
)

// AliasRegistry hands out short stable stand-ins ("d0", "d1", ...) for
// overlength path segments. One registry lives for one capture session.
type AliasRegistry struct {
	mu      sync.Mutex
	aliases map[string]string
	next    int
}

// NewAliasRegistry creates an empty registry
func NewAliasRegistry() *AliasRegistry {
	return &AliasRegistry{aliases: make(map[string]string)}
}

// Alias returns the alias for segment, registering it on first sight
func (r *AliasRegistry) Alias(segment string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if alias, ok := r.aliases[segment]; ok {
		return alias
	}
	alias := "d" + strconv.Itoa(r.next)
	r.next++
	r.aliases[segment] = alias
	return alias
}

// Reset forgets every alias and restarts the counter at zero
func (r *AliasRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.aliases = make(map[string]string)
	r.next = 0
}

// Len returns the number of registered segments
func (r *AliasRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.aliases)
}
