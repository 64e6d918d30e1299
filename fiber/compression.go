package fiber

import (
	"bytes"
	"compress/gzip"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	gofiber "github.com/gofiber/fiber/v2"
)

// CompressionConfig configures response compression.
type CompressionConfig struct {
	// EnableBrotli enables Brotli compression (better compression ratio)
	EnableBrotli bool
	// EnableGzip enables Gzip compression (wider browser support)
	EnableGzip bool
	// BrotliLevel compression level (0-11)
	BrotliLevel int
	// GzipLevel compression level (1-9)
	GzipLevel int
	// MinSize minimum response size to compress
	MinSize int
	// CompressibleTypes content types that should be compressed
	CompressibleTypes []string
	// SkipPaths are path prefixes never compressed
	SkipPaths []string
}

// DefaultCompressionConfig returns default compression configuration.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		EnableBrotli: true,
		EnableGzip:   true,
		BrotliLevel:  4,
		GzipLevel:    6,
		MinSize:      1024,
		CompressibleTypes: []string{
			"text/html",
			"text/css",
			"text/javascript",
			"application/javascript",
			"application/json",
			"image/svg+xml",
		},
	}
}

func (c CompressionConfig) clamp() CompressionConfig {
	c.BrotliLevel = min(max(c.BrotliLevel, 0), 11)
	c.GzipLevel = min(max(c.GzipLevel, 1), 9)
	return c
}

// encoder compresses bodies with pooled writers.
type encoder struct {
	brotliPool sync.Pool
	gzipPool   sync.Pool
}

func newEncoder(config CompressionConfig) *encoder {
	return &encoder{
		brotliPool: sync.Pool{New: func() interface{} {
			return brotli.NewWriterLevel(nil, config.BrotliLevel)
		}},
		gzipPool: sync.Pool{New: func() interface{} {
			w, _ := gzip.NewWriterLevel(nil, config.GzipLevel)
			return w
		}},
	}
}

func (e *encoder) brotli(data []byte) []byte {
	w := e.brotliPool.Get().(*brotli.Writer)
	defer e.brotliPool.Put(w)

	var buf bytes.Buffer
	w.Reset(&buf)
	if _, err := w.Write(data); err != nil {
		return nil
	}
	if err := w.Close(); err != nil {
		return nil
	}
	return buf.Bytes()
}

func (e *encoder) gzip(data []byte) []byte {
	w := e.gzipPool.Get().(*gzip.Writer)
	defer e.gzipPool.Put(w)

	var buf bytes.Buffer
	w.Reset(&buf)
	if _, err := w.Write(data); err != nil {
		return nil
	}
	if err := w.Close(); err != nil {
		return nil
	}
	return buf.Bytes()
}

// negotiate picks "br", "gzip" or "" from an Accept-Encoding header.
func negotiate(config CompressionConfig, acceptEncoding string) string {
	accept := strings.ToLower(acceptEncoding)
	switch {
	case config.EnableBrotli && strings.Contains(accept, "br"):
		return "br"
	case config.EnableGzip && strings.Contains(accept, "gzip"):
		return "gzip"
	}
	return ""
}

// BrotliGzipMiddleware creates a compression middleware with Brotli and Gzip support.
// Brotli is preferred when supported by the client, falling back to Gzip.
func BrotliGzipMiddleware(config CompressionConfig) gofiber.Handler {
	config = config.clamp()
	enc := newEncoder(config)

	return func(c *gofiber.Ctx) error {
		path := c.Path()
		for _, skip := range config.SkipPaths {
			if strings.HasPrefix(path, skip) {
				return c.Next()
			}
		}

		encoding := negotiate(config, c.Get(gofiber.HeaderAcceptEncoding))
		if encoding == "" {
			return c.Next()
		}

		if err := c.Next(); err != nil {
			return err
		}

		if len(c.Response().Header.Peek(gofiber.HeaderContentEncoding)) > 0 {
			return nil
		}
		body := c.Response().Body()
		if len(body) < config.MinSize {
			return nil
		}
		contentType := string(c.Response().Header.ContentType())
		compressible := false
		for _, ct := range config.CompressibleTypes {
			if strings.Contains(contentType, ct) {
				compressible = true
				break
			}
		}
		if !compressible {
			return nil
		}

		var compressed []byte
		if encoding == "br" {
			compressed = enc.brotli(body)
		} else {
			compressed = enc.gzip(body)
		}
		// Only use compression if it actually reduces size
		if len(compressed) == 0 || len(compressed) >= len(body) {
			return nil
		}

		c.Set(gofiber.HeaderContentEncoding, encoding)
		c.Set(gofiber.HeaderVary, gofiber.HeaderAcceptEncoding)
		c.Response().SetBody(compressed)
		return nil
	}
}

// CompressedContent holds original and pre-compressed versions of a static asset.
type CompressedContent struct {
	ContentType string
	ETag        string
	Original    []byte
	Brotli      []byte
	Gzip        []byte
}

// CompressStatic pre-compresses content once for repeated serving.
func CompressStatic(config CompressionConfig, content []byte, contentType, etag string) *CompressedContent {
	config = config.clamp()
	enc := newEncoder(config)
	result := &CompressedContent{
		ContentType: contentType,
		ETag:        etag,
		Original:    content,
	}
	if config.EnableBrotli {
		if b := enc.brotli(content); len(b) > 0 && len(b) < len(content) {
			result.Brotli = b
		}
	}
	if config.EnableGzip {
		if g := enc.gzip(content); len(g) > 0 && len(g) < len(content) {
			result.Gzip = g
		}
	}
	return result
}

// Serve sends the best encoding the client accepts.
func (cc *CompressedContent) Serve(c *gofiber.Ctx) error {
	c.Set(gofiber.HeaderContentType, cc.ContentType)
	if cc.ETag != "" {
		etag := `"` + cc.ETag + `"`
		c.Set(gofiber.HeaderETag, etag)
		c.Set(gofiber.HeaderCacheControl, "public, max-age=3600")
		if c.Get(gofiber.HeaderIfNoneMatch) == etag {
			return c.SendStatus(gofiber.StatusNotModified)
		}
	}

	accept := strings.ToLower(c.Get(gofiber.HeaderAcceptEncoding))
	c.Set(gofiber.HeaderVary, gofiber.HeaderAcceptEncoding)
	switch {
	case cc.Brotli != nil && strings.Contains(accept, "br"):
		c.Set(gofiber.HeaderContentEncoding, "br")
		return c.Send(cc.Brotli)
	case cc.Gzip != nil && strings.Contains(accept, "gzip"):
		c.Set(gofiber.HeaderContentEncoding, "gzip")
		return c.Send(cc.Gzip)
	}
	return c.Send(cc.Original)
}
