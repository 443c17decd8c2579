package dmdt

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// WritePNG encodes a row-major [rows*cols]byte grayscale map as an 8-bit
// PNG, transposing rows and columns so the lgdt axis runs along the image's
// horizontal axis and the dm axis runs vertically.
func WritePNG(w io.Writer, a []byte, rows, cols int) error {
	img := image.NewGray(image.Rect(0, 0, rows, cols))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			img.SetGray(row, col, grayOf(a[row*cols+col]))
		}
	}
	return png.Encode(w, img)
}

func grayOf(v byte) color.Gray {
	return color.Gray{Y: v}
}
