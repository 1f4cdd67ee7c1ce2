package finance

import (
	"fmt"
	"sync"
	"time"
)

// ChartCache keeps rendered chart images for a short time, keyed by the
// normalised calculator input.
type ChartCache struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]chartCacheEntry
	now     func() time.Time
}

func NewChartCache(ttl time.Duration) *ChartCache {
	if ttl <= 0 {
		ttl = defaultChartCacheTTL
	}
	return &ChartCache{ttl: ttl, entries: map[string]chartCacheEntry{}, now: time.Now}
}

func (c *ChartCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		if c.now().Before(entry.createdAt.Add(c.ttl)) {
			img := make([]byte, len(entry.image))
			copy(img, entry.image)
			return img, true
		}
		delete(c.entries, key)
	}
	return nil, false
}

func (c *ChartCache) set(key string, img []byte) {
	c.mu.Lock()
	c.entries[key] = chartCacheEntry{createdAt: c.now(), image: img}
	c.mu.Unlock()
}

// Render returns the rendered chart of calc, drawing it only on a cache miss.
func (c *ChartCache) Render(calc Calculation, format string) ([]byte, error) {
	key := cacheKey(calc.Input, format)
	if img, ok := c.get(key); ok {
		return img, nil
	}
	img, err := RenderChart(calc.Chart, format)
	if err != nil {
		return nil, err
	}
	c.set(key, img)
	out := make([]byte, len(img))
	copy(out, img)
	return out, nil
}

func cacheKey(in CalculatorInput, format string) string {
	return fmt.Sprintf("%s|%g|%g|%g|%s", format, in.Price, in.Investment, in.FeePercent, in.Currency)
}
