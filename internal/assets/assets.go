// Package assets loads image files off the render thread. Decoding happens in a
// goroutine with the pure-Go image stack so a bad file is caught before any GPU
// call; the GPU upload is a separate, explicit step on the render thread, after
// the GL context exists.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	rl "github.com/gen2brain/raylib-go/raylib"
	_ "golang.org/x/image/webp"
)

// maxUploadWidth caps the texture width; larger decodes are downscaled CPU-side
// before upload to keep GPU memory bounded on large source images.
const maxUploadWidth = 4096

// LoadState is the lifecycle of one asynchronous image load.
type LoadState int

const (
	Pending LoadState = iota
	Ready
	Failed
)

// ImageLoad is the handle for one image asset. The decode goroutine writes the
// result exactly once; readers poll State from the render thread. There is no
// retry: a Failed load stays failed for the session.
type ImageLoad struct {
	path string

	mu     sync.Mutex
	state  LoadState
	img    image.Image
	aspect float32
	err    error
}

// Load starts decoding the file at path in the background and returns
// immediately. The caller polls State and calls Upload once Ready.
func Load(path string) *ImageLoad {
	l := &ImageLoad{path: path}
	go l.decode()
	return l
}

func (l *ImageLoad) decode() {
	f, err := os.Open(l.path)
	if err != nil {
		l.fail(err)
		return
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		l.fail(fmt.Errorf("decode %s: %w", l.path, err))
		return
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		l.fail(fmt.Errorf("decode %s: empty image", l.path))
		return
	}
	if w > maxUploadWidth {
		scaled := maxUploadWidth * h / w
		if scaled < 1 {
			scaled = 1 // extreme aspect: never resize to an empty image
		}
		img = transform.Resize(img, maxUploadWidth, scaled, transform.Linear)
	}

	l.mu.Lock()
	l.img = img
	l.aspect = float32(w) / float32(h)
	l.state = Ready
	l.mu.Unlock()
}

func (l *ImageLoad) fail(err error) {
	l.mu.Lock()
	l.err = err
	l.state = Failed
	l.mu.Unlock()
}

// Path returns the file path this load was started with.
func (l *ImageLoad) Path() string {
	return l.path
}

// State returns the current lifecycle state.
func (l *ImageLoad) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the failure cause, or nil unless State is Failed.
func (l *ImageLoad) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Aspect returns the decoded image's width/height ratio. Valid once Ready.
func (l *ImageLoad) Aspect() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.aspect
}

// Upload creates the GPU texture from the decoded pixels and releases the CPU
// copy. Must run on the render thread with the window open, and only once State
// is Ready; otherwise it reports false.
func (l *ImageLoad) Upload() (rl.Texture2D, float32, bool) {
	l.mu.Lock()
	img := l.img
	aspect := l.aspect
	ready := l.state == Ready && img != nil
	l.img = nil
	l.mu.Unlock()
	if !ready {
		return rl.Texture2D{}, 0, false
	}

	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	return tex, aspect, true
}
