package export

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorBorder    = color.RGBA{0, 0, 0, 255}
	colorHeader    = color.RGBA{230, 230, 230, 255}
	colorText      = color.RGBA{20, 20, 20, 255}
	colorBar       = color.RGBA{99, 110, 250, 255}
	colorBarBorder = color.RGBA{47, 79, 79, 255} // DarkSlateGrey
	colorGrid      = color.RGBA{225, 228, 235, 255}
)

// face cobre ASCII e Latin-1, o que basta para acentos em português.
var face font.Face = basicfont.Face7x13

func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

func textHeight() int {
	return face.Metrics().Height.Ceil()
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// strokeRect desenha a borda de 1px de r.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// drawText escreve s com a linha de base em (x, y).
func drawText(img *image.RGBA, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawCentered centraliza s horizontalmente e verticalmente em r.
func drawCentered(img *image.RGBA, r image.Rectangle, s string, c color.Color) {
	x := r.Min.X + (r.Dx()-textWidth(s))/2
	ascent := face.Metrics().Ascent.Ceil()
	y := r.Min.Y + (r.Dy()-textHeight())/2 + ascent
	drawText(img, x, y, s, c)
}

func truncateText(s string, limit int) string {
	runes := []rune(s)
	if limit <= 3 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
