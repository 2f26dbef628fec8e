package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/anthonynsimon/bild/transform"
	"go.uber.org/zap"
)

var ErrDone = errors.New("all assets loaded")

// Loader decodes the manifest one image per call so loading can be
// spread over frames and report progress.
type Loader struct {
	fsys   fs.FS
	specs  []Spec
	images map[string]image.Image
	next   int
	// Missing lists images that were generated instead of read.
	Missing []string
	log     *zap.Logger
}

// NewLoader reads from img/<name>.png in fsys. A nil fsys generates
// every image.
func NewLoader(fsys fs.FS, specs []Spec, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		fsys:   fsys,
		specs:  specs,
		images: make(map[string]image.Image, len(specs)),
		log:    log.Named("assets"),
	}
}

func (l *Loader) Total() int  { return len(l.specs) }
func (l *Loader) Loaded() int { return l.next }
func (l *Loader) Done() bool  { return l.next >= len(l.specs) }

func (l *Loader) Progress() float64 {
	if len(l.specs) == 0 {
		return 1
	}
	return float64(l.next) / float64(len(l.specs))
}

// Next loads the next image and returns its name. Missing files fall back
// to placeholders; files that exist but do not decode are errors.
func (l *Loader) Next() (string, error) {
	if l.Done() {
		return "", ErrDone
	}
	s := l.specs[l.next]
	img, err := l.read(s)
	if errors.Is(err, fs.ErrNotExist) {
		l.Missing = append(l.Missing, s.Name)
		img, err = Placeholder(s), nil
	}
	if err != nil {
		return s.Name, fmt.Errorf("load %s: %w", s.Name, err)
	}
	if b := img.Bounds(); b.Dx() != s.W || b.Dy() != s.H {
		l.log.Debug("resizing",
			zap.String("name", s.Name),
			zap.Int("from_w", b.Dx()), zap.Int("from_h", b.Dy()),
			zap.Int("to_w", s.W), zap.Int("to_h", s.H),
		)
		img = transform.Resize(img, s.W, s.H, transform.Linear)
	}
	l.images[s.Name] = img
	l.next++
	if l.Done() {
		l.log.Info("assets loaded", zap.Int("total", len(l.specs)), zap.Int("generated", len(l.Missing)))
	}
	return s.Name, nil
}

// LoadAll runs Next until every image is in.
func (l *Loader) LoadAll() error {
	for !l.Done() {
		if _, err := l.Next(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) read(s Spec) (image.Image, error) {
	if l.fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := l.fsys.Open(path.Join("img", s.Name+".png"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func (l *Loader) Image(name string) (image.Image, bool) {
	img, ok := l.images[name]
	return img, ok
}

// Images returns everything loaded so far keyed by name.
func (l *Loader) Images() map[string]image.Image {
	return l.images
}
