package render

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedBackend keeps recently rendered page rasters in memory so that
// revisiting a page at the same size skips the inner backend.
type CachedBackend struct {
	inner Backend
	store *cache.Cache
}

// NewCachedBackend wraps inner with a TTL cache. Expired entries are purged
// every ttl.
func NewCachedBackend(inner Backend, ttl time.Duration) *CachedBackend {
	return &CachedBackend{
		inner: inner,
		store: cache.New(ttl, ttl),
	}
}

// Name returns the inner backend name
func (b *CachedBackend) Name() string {
	return b.inner.Name()
}

// Open opens the document through the inner backend
func (b *CachedBackend) Open(ctx context.Context, locator string, progress ProgressFunc) (Document, error) {
	doc, err := b.inner.Open(ctx, locator, progress)
	if err != nil {
		return nil, err
	}
	return &cachedDocument{Document: doc, locator: locator, store: b.store}, nil
}

// Len returns the number of cached rasters
func (b *CachedBackend) Len() int {
	return b.store.ItemCount()
}

// Flush drops every cached raster
func (b *CachedBackend) Flush() {
	b.store.Flush()
}

type cachedDocument struct {
	Document
	locator string
	store   *cache.Cache
}

func (d *cachedDocument) Page(ctx context.Context, n int) (Page, error) {
	page, err := d.Document.Page(ctx, n)
	if err != nil {
		return nil, err
	}
	return &cachedPage{Page: page, locator: d.locator, store: d.store}, nil
}

type cachedPage struct {
	Page
	locator string
	store   *cache.Cache
}

func (p *cachedPage) RenderInto(ctx context.Context, dst draw.Image, vp Viewport) error {
	bounds := dst.Bounds()
	key := cacheKey(p.locator, p.Number(), bounds.Dx(), bounds.Dy())

	if cached, found := p.store.Get(key); found {
		img := cached.(*image.RGBA)
		draw.Draw(dst, bounds, img, img.Bounds().Min, draw.Src)
		return nil
	}

	raster := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if err := p.Page.RenderInto(ctx, raster, vp); err != nil {
		return err
	}
	p.store.SetDefault(key, raster)
	draw.Draw(dst, bounds, raster, image.Point{}, draw.Src)
	return nil
}

func cacheKey(locator string, page, width, height int) string {
	return fmt.Sprintf("%s#%d@%dx%d", locator, page, width, height)
}
