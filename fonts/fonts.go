package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
	Banner  FontName = "banner"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the UI uses.
func LoadDefaults() {
	LoadFontWithSize(Regular, goregular.TTF, 16)
	LoadFontWithSize(Small, goregular.TTF, 12)
	LoadFontWithSize(Title, goregular.TTF, 36)
	LoadFontWithSize(Banner, goregular.TTF, 28)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
