package source

import (
	"sync"

	"github.com/amaumene/appredirect/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Cached memoizes the first successful load of the wrapped source for
// the process lifetime. Concurrent first requests converge on a single
// load; a failed load is returned to the caller and retried on the next
// request instead of being cached.
type Cached struct {
	src domain.MappingSource

	mu  sync.Mutex
	cfg *domain.Configuration
}

func NewCached(src domain.MappingSource) *Cached {
	return &Cached{src: src}
}

func (c *Cached) Load() (*domain.Configuration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg != nil {
		return c.cfg, nil
	}

	cfg, err := c.src.Load()
	if err != nil {
		return nil, err
	}
	c.cfg = cfg

	log.WithFields(log.Fields{
		"apps":         len(cfg.Apps),
		"environments": len(cfg.EnvironmentGUIDs),
	}).Info("mapping configuration loaded")

	return cfg, nil
}
