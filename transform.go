package imagecore

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mrjoshuak/go-imagecore/internal/lut"
)

// Progress tags reported to a ProgressFunc.
const (
	RGBTransformTag = "RGBTransform/Image"
	TransformTag    = "Transform/Image"
)

// rowBatch is the number of consecutive rows handed to a worker at once.
const rowBatch = 4

// ProgressFunc is called after each converted row. Returning false stops
// the transform once in-flight rows finish.
type ProgressFunc func(tag string, done, total int) bool

// Options configures a Transformer.
type Options struct {
	// Policy is the numeric policy for tables and stored results.
	Policy Policy

	// Workers bounds the number of goroutines. Zero uses GOMAXPROCS.
	Workers int

	// MemoryLimit bounds the bytes allocated for lookup tables. Zero means
	// no limit.
	MemoryLimit int64

	// Progress, when set, receives row progress.
	Progress ProgressFunc

	// Logger receives debug traces. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the default transformer options.
func DefaultOptions() *Options {
	return &Options{
		Policy: Quantized(DefaultMaxMap),
	}
}

// Option modifies Options.
type Option func(*Options)

// WithPolicy sets the numeric policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMemoryLimit bounds table allocations.
func WithMemoryLimit(bytes int64) Option {
	return func(o *Options) { o.MemoryLimit = bytes }
}

// WithProgress installs a progress callback.
func WithProgress(f ProgressFunc) Option {
	return func(o *Options) { o.Progress = f }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Transformer converts surfaces between colorspaces. It is safe for
// concurrent use on distinct surfaces.
type Transformer struct {
	opts Options
}

// NewTransformer returns a Transformer configured by opts.
func NewTransformer(opts ...Option) *Transformer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.Policy.MaxMap == 0 {
		o.Policy.MaxMap = DefaultMaxMap
	}
	return &Transformer{opts: *o}
}

// Policy returns the numeric policy in use.
func (t *Transformer) Policy() Policy {
	return t.opts.Policy
}

func (t *Transformer) logger() *slog.Logger {
	if t.opts.Logger != nil {
		return t.opts.Logger
	}
	return slog.Default()
}

func (t *Transformer) workers() int {
	if t.opts.Workers > 0 {
		return t.opts.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// ============================================================================
// Orchestration
// ============================================================================

// SetColorspace retags s without converting any pixel.
func (t *Transformer) SetColorspace(s Surface, c Colorspace) error {
	return s.SetColorspace(c)
}

// TransformColorspace converts s to target. Undefined retags only, a
// surface already in target is left alone, and conversions between two
// alternate colorspaces pass through sRGB.
func (t *Transformer) TransformColorspace(s Surface, target Colorspace) error {
	if target == Undefined {
		return s.SetColorspace(target)
	}
	if s.Colorspace() == target {
		return nil
	}
	if target.IsSRGB() {
		return t.TransformToSRGB(s)
	}
	if !s.Colorspace().IsSRGB() {
		if err := t.TransformToSRGB(s); err != nil {
			return err
		}
	}
	return t.TransformToAlternate(s, target)
}

// TransformToAlternate converts an sRGB surface to target.
//
// On ErrResourceLimit the tag is unchanged. Row failures and cancellation
// still retag s to target even though some rows were not converted.
func (t *Transformer) TransformToAlternate(s Surface, target Colorspace) error {
	switch target {
	case Undefined, SRGB, Transparent:
		return fmt.Errorf("%w: %s is not an alternate colorspace", ErrUnsupported, target)
	}
	if src := s.Colorspace(); !src.IsSRGB() && src != Undefined {
		return fmt.Errorf("%w: converting from %s requires an sRGB surface", ErrUnsupported, src)
	}
	fn, path, err := t.compile(s, target, forwardDirect, forwardTables)
	if err != nil {
		return err
	}
	t.logger().Debug("transform colorspace",
		"from", s.Colorspace(), "to", target, "path", path,
		"class", s.StorageClass(), "rows", s.Height())
	err = t.drive(s, fn, RGBTransformTag)
	if serr := s.SetColorspace(target); serr != nil {
		return errors.Join(err, serr)
	}
	if ts, ok := s.(typed); ok {
		switch {
		case target == CMY || target == CMYK:
			ts.SetType(pick(ts.Matte(), ColorSeparationMatteType, ColorSeparationType))
		case target.IsGray():
			ts.SetType(pick(ts.Matte(), GrayscaleMatteType, GrayscaleType))
		}
	}
	return err
}

// TransformToSRGB converts s from its current colorspace to sRGB.
func (t *Transformer) TransformToSRGB(s Surface) error {
	src := s.Colorspace()
	if src.IsSRGB() || src == Undefined {
		return s.SetColorspace(SRGB)
	}
	fn, path, err := t.compile(s, src, inverseDirect, inverseTables)
	if err != nil {
		return err
	}
	t.logger().Debug("transform colorspace",
		"from", src, "to", SRGB, "path", path,
		"class", s.StorageClass(), "rows", s.Height())
	err = t.drive(s, fn, TransformTag)
	if serr := s.SetColorspace(SRGB); serr != nil {
		return errors.Join(err, serr)
	}
	return err
}

func pick(matte bool, yes, no ImageType) ImageType {
	if matte {
		return yes
	}
	return no
}

// compile selects the transform for c and prepares it for one call.
func (t *Transformer) compile(s Surface, c Colorspace, direct map[Colorspace]directConv, tables map[Colorspace]tableConv) (PixelFunc, string, error) {
	pol := t.opts.Policy
	if err := pol.Validate(); err != nil {
		return nil, "", err
	}
	if dc, ok := direct[c]; ok {
		fn, err := dc.build(pol, s, t.opts.MemoryLimit)
		return fn, "direct", err
	}
	path := "table"
	tc, ok := tables[c]
	if !ok {
		tc, path = identityTables, "identity"
	}
	tab, err := lut.New(pol.MaxMap, t.opts.MemoryLimit)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrResourceLimit, err)
	}
	tab.Fill(tc.entry(pol), t.workers())
	if tc.primary != nil {
		tab.Primary = tc.primary(pol)
	}
	var correct func(float64) float64
	if tc.correct != nil {
		correct = tc.correct(pol)
	}
	fn := func(p *Pixel) {
		v := tab.Lookup(pol.ToMap(p.Red), pol.ToMap(p.Green), pol.ToMap(p.Blue))
		if correct != nil {
			v = lut.Packet{X: correct(v.X), Y: correct(v.Y), Z: correct(v.Z)}
		}
		p.Red = pol.FromMap(v.X)
		p.Green = pol.FromMap(v.Y)
		p.Blue = pol.FromMap(v.Z)
	}
	return fn, path, nil
}

// ============================================================================
// Pixel driver
// ============================================================================

// drive applies fn to every pixel of a Direct surface or every colormap
// entry of an Indexed one.
//
// Rows are converted in batches on up to Workers goroutines. The first row
// failure or a cancel request sets a sticky flag; batches not yet started
// are skipped while running batches finish their current row.
func (t *Transformer) drive(s Surface, fn PixelFunc, tag string) error {
	if s.StorageClass() == Indexed {
		cm := s.Colormap()
		for i := range cm {
			fn(&cm[i])
		}
		if err := s.SyncColormap(); err != nil {
			return fmt.Errorf("%w: %v", ErrPixelAccess, err)
		}
		return nil
	}

	rows := s.Height()
	var (
		failed   atomic.Bool
		canceled atomic.Bool
		nfailed  atomic.Int64
		once     sync.Once
		firstErr error
		mu       sync.Mutex
		done     int
	)
	fail := func(y int, err error) {
		nfailed.Add(1)
		once.Do(func() { firstErr = fmt.Errorf("row %d: %w", y, err) })
		failed.Store(true)
	}

	var g errgroup.Group
	g.SetLimit(max(1, min(t.workers(), (rows+rowBatch-1)/rowBatch)))
	for y0 := 0; y0 < rows; y0 += rowBatch {
		if failed.Load() {
			break
		}
		g.Go(func() error {
			for y := y0; y < min(y0+rowBatch, rows); y++ {
				if failed.Load() {
					return nil
				}
				row, err := s.Row(y)
				if err != nil {
					fail(y, err)
					continue
				}
				for x := range row {
					fn(&row[x])
				}
				if err := s.SyncRow(y, row); err != nil {
					fail(y, err)
					continue
				}
				if t.opts.Progress != nil {
					mu.Lock()
					done++
					proceed := t.opts.Progress(tag, done, rows)
					mu.Unlock()
					if !proceed {
						canceled.Store(true)
						failed.Store(true)
					}
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if n := nfailed.Load(); n > 0 {
		t.logger().Warn("rows failed during transform", "tag", tag, "failed", n, "rows", rows)
		return fmt.Errorf("%w: %d of %d rows: %v", ErrPixelAccess, n, rows, firstErr)
	}
	if canceled.Load() {
		return fmt.Errorf("%w: %s", ErrCanceled, tag)
	}
	return nil
}
