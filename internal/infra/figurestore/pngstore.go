package figurestore

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/ports"
)

const defaultName = "figure"

// PNGStore writes figures as PNG files under a root directory.
type PNGStore struct {
	rootDir string
	encoder png.Encoder
}

type Option func(*PNGStore)

// WithCompression selects the PNG compression level.
func WithCompression(level png.CompressionLevel) Option {
	return func(s *PNGStore) { s.encoder.CompressionLevel = level }
}

func NewPNGStore(root string, opts ...Option) *PNGStore {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	s := &PNGStore{rootDir: root}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.FigureStore = (*PNGStore)(nil)

// SaveFigure encodes img and writes it atomically. A bare name is placed under
// the root directory and sanitized; a name with a directory component is used
// as given. The .png extension is added when missing.
func (s *PNGStore) SaveFigure(name string, img image.Image) (string, error) {
	path := s.resolve(name)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "figurestore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, img); err != nil {
		return "", &domain.OpError{
			Op:   "figurestore.encode",
			Kind: domain.KindRender,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "figurestore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "figurestore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return path, nil
}

func (s *PNGStore) resolve(name string) string {
	name = strings.TrimSpace(name)
	if !strings.EqualFold(filepath.Ext(name), ".png") {
		name += ".png"
	}

	if filepath.Dir(name) != "." {
		return filepath.Clean(name)
	}

	base := slugify(strings.TrimSuffix(name, filepath.Ext(name)))
	if base == "" {
		base = defaultName
	}
	return filepath.Join(s.rootDir, base+".png")
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		case r == '-' && !lastDash:
			b.WriteByte('-')
			lastDash = true
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
