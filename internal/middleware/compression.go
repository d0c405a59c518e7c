package middleware

import (
	"compress/gzip"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// minCompressSize is the smallest response body worth compressing.
// Chart payloads with full calculation logs routinely exceed this;
// health checks and error envelopes do not.
const minCompressSize = 1024

// Compression gzips JSON responses for clients that accept it.
// Writers are pooled since every chart request allocates one otherwise.
type Compression struct {
	pool sync.Pool
}

func NewCompression() *Compression {
	return &Compression{
		pool: sync.Pool{
			New: func() any {
				w, _ := gzip.NewWriterLevel(io.Discard, gzip.DefaultCompression)
				return w
			},
		},
	}
}

func (c *Compression) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !strings.Contains(ctx.GetHeader("Accept-Encoding"), "gzip") {
			ctx.Next()
			return
		}
		gw := &gzipWriter{ResponseWriter: ctx.Writer, comp: c}
		ctx.Writer = gw
		defer gw.close()
		ctx.Next()
	}
}

type gzipWriter struct {
	gin.ResponseWriter
	comp *Compression
	zw   *gzip.Writer
	buf  []byte
	done bool
}

func (g *gzipWriter) Write(p []byte) (int, error) {
	if g.zw != nil {
		return g.zw.Write(p)
	}
	g.buf = append(g.buf, p...)
	if len(g.buf) < minCompressSize {
		return len(p), nil
	}
	g.startCompressing()
	return len(p), nil
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

func (g *gzipWriter) startCompressing() {
	g.Header().Set("Content-Encoding", "gzip")
	g.Header().Set("Vary", "Accept-Encoding")
	g.Header().Del("Content-Length")
	zw := g.comp.pool.Get().(*gzip.Writer)
	zw.Reset(g.ResponseWriter)
	g.zw = zw
	if len(g.buf) > 0 {
		g.zw.Write(g.buf)
		g.buf = nil
	}
}

func (g *gzipWriter) close() {
	if g.done {
		return
	}
	g.done = true
	if g.zw != nil {
		g.zw.Close()
		g.comp.pool.Put(g.zw)
		g.zw = nil
		return
	}
	if len(g.buf) > 0 {
		g.Header().Set("Content-Length", strconv.Itoa(len(g.buf)))
		g.ResponseWriter.Write(g.buf)
		g.buf = nil
	}
}
