// Package avatar turns a seed string into a deterministic identicon.
// The image carries no meaning beyond being stable per seed.
package avatar

import (
	"bytes"
	"crypto/sha256"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
)

const (
	gridSize  = 5
	imageSize = 128
)

var background = color.RGBA{R: 0xF1, G: 0xF5, B: 0xF9, A: 0xFF}

// Generate renders the identicon for a seed: a horizontally mirrored
// 5x5 cell pattern, colored from the seed hash, scaled up without
// smoothing so the cells stay crisp.
func Generate(seed string) image.Image {
	sum := sha256.Sum256([]byte(seed))

	foreground := color.RGBA{R: sum[0], G: sum[1], B: sum[2], A: 0xFF}

	cells := image.NewRGBA(image.Rect(0, 0, gridSize, gridSize))
	for y := 0; y < gridSize; y++ {
		// mirror the left half onto the right
		for x := 0; x <= gridSize/2; x++ {
			bit := sum[3+y*(gridSize/2+1)+x]
			c := background
			if bit%2 == 0 {
				c = foreground
			}
			cells.SetRGBA(x, y, c)
			cells.SetRGBA(gridSize-1-x, y, c)
		}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), cells, cells.Bounds(), draw.Src, nil)
	return scaled
}

// PNG returns the encoded identicon for a seed.
func PNG(seed string) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Generate(seed)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
