package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generation buffers between steps
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting its dimensions
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
