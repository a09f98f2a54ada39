// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package gamma implements gamma correction with fixed-point lookup tables.
//
// A table maps 8-bit input to 16-bit output, out = min(65536 * (in/255)^gamma, 65535):
// the power is computed in 16.16 and its raw value is clamped to 16 bits.
// Gamma values are 4.12 unsigned fixed-point numbers. A Corrector memoizes
// the tables of recently used gamma values and is safe for concurrent use.
package gamma

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	fixed "github.com/avdva/fixedpoint"
)

// SRGB is the gamma of the sRGB transfer function approximation.
var SRGB = fixed.MustParse[fixed.U4x12]("2.2")

// Linear is the identity gamma.
const Linear = fixed.U4x12One

const defaultSize = 16

// LUT is the correction table of one gamma value.
type LUT [256]uint16

// Build computes the table for gamma g.
func Build(g fixed.U4x12) *LUT {
	var lut LUT
	e := g.ToU16x16()
	last := fixed.U16x16I(len(lut) - 1)
	for i := range lut {
		x := fixed.U16x16I(i).Div(last)
		lut[i] = uint16(min(x.Pow(e).Raw(), 1<<16-1))
	}
	return &lut
}

// options configure a Corrector.
type options struct {
	size   int
	logger *zap.Logger
}

// Option is a functional option for New.
type Option func(*options)

// WithSize sets the number of tables kept in memory.
func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Corrector applies gamma correction using memoized tables.
type Corrector struct {
	cache  *lru.Cache[fixed.U4x12, *LUT]
	group  singleflight.Group
	logger *zap.Logger
}

// New returns a Corrector.
func New(opts ...Option) (*Corrector, error) {
	o := options{size: defaultSize, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Corrector{logger: o.logger}
	cache, err := lru.NewWithEvict(o.size, c.onEvict)
	if err != nil {
		return nil, fmt.Errorf("gamma: invalid cache size %d: %w", o.size, err)
	}
	c.cache = cache
	return c, nil
}

func (c *Corrector) onEvict(g fixed.U4x12, _ *LUT) {
	c.logger.Debug("evicted gamma table", zap.Stringer("gamma", g))
}

// LUT returns the table for gamma g, building it if needed.
// Concurrent calls for the same gamma build it once.
// The returned table must not be modified.
func (c *Corrector) LUT(g fixed.U4x12) *LUT {
	if lut, ok := c.cache.Get(g); ok {
		return lut
	}
	v, _, _ := c.group.Do(strconv.Itoa(int(g)), func() (any, error) {
		// it might have been built while we were waiting.
		if lut, ok := c.cache.Get(g); ok {
			return lut, nil
		}
		lut := Build(g)
		c.cache.Add(g, lut)
		c.logger.Debug("built gamma table", zap.Stringer("gamma", g), zap.Int("cached", c.cache.Len()))
		return lut, nil
	})
	return v.(*LUT)
}

// Len returns the number of cached tables.
func (c *Corrector) Len() int {
	return c.cache.Len()
}

// Correct8 returns the corrected value of v for gamma g.
func (c *Corrector) Correct8(g fixed.U4x12, v uint8) uint16 {
	return c.LUT(g)[v]
}

// Correct16 returns the corrected value of v for gamma g,
// interpolating linearly between table entries.
func (c *Corrector) Correct16(g fixed.U4x12, v uint16) uint16 {
	return c.LUT(g).Interpolate(v)
}

// Interpolate returns the corrected value of a 16-bit input.
func (lut *LUT) Interpolate(v uint16) uint16 {
	// position in the table, 65535 maps to 255.
	pos := fixed.U24x8I(int(v)).Div(fixed.U24x8I(257))
	i := pos.Int()
	t := fixed.U8x8(pos.Raw() & 0xFF)
	lo := fixed.U24x8I(int(lut[i]))
	hi := fixed.U24x8I(int(lut[min(i+1, len(lut)-1)]))
	return uint16(fixed.Lerp(lo, hi, t.ToU24x8()).Int())
}
