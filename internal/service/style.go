package service

import (
	"math/rand/v2"
	"sync"

	"github.com/basel-ax/dalleimg/internal/domain"
)

// StylePicker chooses a style label uniformly at random
type StylePicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStylePicker uses rng, or a randomly seeded source when rng is nil
func NewStylePicker(rng *rand.Rand) *StylePicker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &StylePicker{rng: rng}
}

// Pick returns one of domain.Styles
func (p *StylePicker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.Styles[p.rng.IntN(len(domain.Styles))]
}
