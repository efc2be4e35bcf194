// Package fonts provides the glyph resources the engraver draws with.
//
// Engrave Music is embedded in the binary using go:embed, so a configuration
// can always be built without touching the filesystem. It covers exactly the
// codepoints the engraver requests: the G clef, the three note heads, the
// augmentation dot and the three accidentals. A fuller music font installed
// on the system (Noto Music, Bravura, FreeSerif) is located with [Find].
package fonts

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"

	"github.com/matzehuels/engrave/pkg/errors"
)

// EngraveMusic is drawn for this project and released under the SIL Open
// Font License 1.1.

//go:embed EngraveMusic.ttf
var engraveMusicTTF []byte

// DefaultName names the bundled font in logs.
const DefaultName = "Engrave Music (bundled)"

// FontDirEnv names a directory searched before the system font directories.
const FontDirEnv = "ENGRAVE_FONT_DIR"

// MusicFontFiles are the file names [Find] looks for, most preferred first.
var MusicFontFiles = []string{
	"NotoMusic-Regular.ttf",
	"NotoMusic.ttf",
	"Bravura.otf",
	"FreeSerif.ttf",
}

// Default returns the bundled font data.
func Default() []byte {
	return engraveMusicTTF
}

// Read loads font data from path.
func Read(path string) ([]byte, error) {
	if err := errors.ValidateExtension(path, ".ttf", ".otf"); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "font %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFont, err, "read font %s", path)
	}
	return data, nil
}

// Find returns the paths of the installed [MusicFontFiles], in preference
// order. The directory named by ENGRAVE_FONT_DIR is checked first; the user
// and system font directories are searched with go-findfont.
func Find() []string {
	var (
		paths []string
		seen  = map[string]bool{}
	)
	add := func(p string) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	if dir := os.Getenv(FontDirEnv); dir != "" {
		for _, name := range MusicFontFiles {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				add(p)
			}
		}
	}
	for _, name := range MusicFontFiles {
		if p, err := findfont.Find(name); err == nil && strings.EqualFold(filepath.Base(p), name) {
			add(p)
		}
	}
	return paths
}
