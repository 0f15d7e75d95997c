package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spakin/netpbm"

	"termface/internal/app/errors"
	"termface/internal/config/logger"
)

// framePattern matches frame_00.png … frame_38.ppm
const framePattern = "frame_[0-9][0-9]*.{png,ppm,pgm,pbm,pnm}"

// FrameStore serves decoded background frames by index
type FrameStore interface {
	Len() int
	Frame(index int) (image.Image, error)
}

// frameStore decodes each frame once and caches it by index
type frameStore struct {
	fsys  fs.FS
	paths []string
	cache map[int]image.Image
	log   logger.Logger
}

// discoverFrames lists frame files in dir ordered by their numeric suffix
func discoverFrames(fsys fs.FS, dir string, log logger.Logger) (*frameStore, error) {
	matcher, err := glob.Compile(framePattern)
	if err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: frames directory '%s': %v", errors.ErrAssetMissing, dir, err)
	}

	type indexed struct {
		index int
		path  string
	}

	var found []indexed

	seen := make(map[int]string)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !matcher.Match(name) {
			continue
		}

		index, ok := frameIndex(name)
		if !ok {
			log.Warn().Msgf("Skipping frame with non-numeric index '%s'", name)
			continue
		}

		if prev, ok := seen[index]; ok {
			log.Warn().Msgf("Skipping duplicate frame %d '%s' (using '%s')", index, name, prev)
			continue
		}

		seen[index] = name
		found = append(found, indexed{index: index, path: path.Join(dir, name)})
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no frames matching '%s' in '%s'", errors.ErrAssetMissing, framePattern, dir)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].index < found[j].index })

	for i, f := range found {
		if f.index != i {
			log.Warn().Msgf("Frame sequence has a gap: expected frame %d, found %d", i, f.index)
			break
		}
	}

	paths := make([]string, len(found))
	for i, f := range found {
		paths[i] = f.path
	}

	return &frameStore{
		fsys:  fsys,
		paths: paths,
		cache: make(map[int]image.Image),
		log:   log,
	}, nil
}

// frameIndex extracts N from frame_N.ext
func frameIndex(name string) (int, bool) {
	stem := strings.TrimPrefix(name, "frame_")
	if dot := strings.IndexByte(stem, '.'); dot >= 0 {
		stem = stem[:dot]
	}

	n, err := strconv.Atoi(stem)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// Len returns the number of frames
func (s *frameStore) Len() int {
	return len(s.paths)
}

// Frame returns the decoded frame at index
func (s *frameStore) Frame(index int) (image.Image, error) {
	if index < 0 || index >= len(s.paths) {
		return nil, fmt.Errorf("%w: frame %d out of range [0,%d)", errors.ErrDecodeFailure, index, len(s.paths))
	}

	if img, ok := s.cache[index]; ok {
		return img, nil
	}

	img, err := s.decode(s.paths[index])
	if err != nil {
		return nil, err
	}

	s.cache[index] = img

	return img, nil
}

// decode tries netpbm first, then the registered standard decoders
func (s *frameStore) decode(p string) (image.Image, error) {
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrDecodeFailure, p, err)
	}

	if pnm, err := netpbm.Decode(bytes.NewReader(data), nil); err == nil {
		return pnm, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrDecodeFailure, p, err)
	}

	return img, nil
}
