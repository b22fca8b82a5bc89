package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader decodes sound files from a file system. Effects are decoded
// once and kept as PCM; music streams are looped and never cached.
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte
	context  *audio.Context
}

// NewAudioLoader creates a loader reading sound files from fsys.
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes path into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}
	decoded, err := l.decode(path)
	if err != nil {
		return err
	}
	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player for a cached sound effect, decoding it on
// first use.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// LoadMusic returns a looping player for an ogg track.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", path, err)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) decode(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
