// Package resources defines how objects report the assets they reference.
//
// An object hands each asset path it holds to a Worker and stores back the
// returned path, which lets the same walk serve both inventory (collecting
// what is used) and rewriting (renaming or relocating assets).
package resources

// Kind identifies what an asset path points to.
type Kind string

const (
	Image      Kind = "image"
	Audio      Kind = "audio"
	Font       Kind = "font"
	BitmapFont Kind = "bitmapFont"
	Video      Kind = "video"
	JSON       Kind = "json"
	File       Kind = "file"
)

// Worker visits asset references. Expose returns the path the caller must
// store in place of the one it passed.
type Worker interface {
	Expose(kind Kind, path string) string
}

// WorkerFunc adapts a function to Worker.
type WorkerFunc func(kind Kind, path string) string

// Expose implements Worker.
func (f WorkerFunc) Expose(kind Kind, path string) string {
	if f == nil {
		return path
	}
	return f(kind, path)
}

// Chain applies several workers in order, each one seeing the path returned
// by the previous.
type Chain []Worker

// Expose implements Worker.
func (c Chain) Expose(kind Kind, path string) string {
	for _, w := range c {
		path = w.Expose(kind, path)
	}
	return path
}
