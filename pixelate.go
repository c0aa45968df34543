package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"math"

	"golang.org/x/image/draw"
)

const (
	// maxBlockSize is the mosaic block edge, in pixels, at clarity 0.
	maxBlockSize = 50

	// minBlockSize prevents degenerate zero-size downsampling.
	minBlockSize = 2

	// fullRevealClarity is the threshold at or above which the source
	// image is served unmodified.
	fullRevealClarity = 0.95

	renderQuality = 90
)

var (
	ErrAssetNotFound   = errors.New("source media unreadable")
	ErrInvalidLevel    = errors.New("invalid disclosure level")
	ErrMalformedAnswer = errors.New("malformed answer")
)

// validClarity rejects rather than clamps, so calibration bugs surface
// instead of silently corrupting the hint experience.
func validClarity(clarity float64) bool {
	if math.IsNaN(clarity) || math.IsInf(clarity, 0) {
		return false
	}
	return clarity >= 0 && clarity <= 1
}

// blockSize maps a clarity level to a mosaic block edge length. The
// progression is deliberately linear: a square-root or exponential curve
// compresses the visible difference between high-numbered hints.
func blockSize(clarity float64) int {
	size := int(math.Floor(maxBlockSize * (1.0 - clarity)))
	if size < minBlockSize {
		size = minBlockSize
	}
	return size
}

// Pixelate renders src at the given clarity level using a block mosaic:
// the image is downscaled by the block size, then scaled back up with
// nearest-neighbor interpolation so the blocks stay square instead of
// smearing into a smooth blur.
//
// Pixelate is a pure function of (src, clarity) and is safe to call
// concurrently. At clarity >= 0.95 it returns src unmodified, so solve-time
// renders skip the resampling entirely.
func Pixelate(src []byte, clarity float64) ([]byte, error) {
	if !validClarity(clarity) {
		return nil, fmt.Errorf("%w: clarity %v outside [0,1]", ErrInvalidLevel, clarity)
	}

	if clarity >= fullRevealClarity {
		return src, nil
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode source image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	block := blockSize(clarity)

	reducedWidth := int(math.Round(float64(width) / float64(block)))
	if reducedWidth < 1 {
		reducedWidth = 1
	}
	reducedHeight := int(math.Round(float64(height) / float64(block)))
	if reducedHeight < 1 {
		reducedHeight = 1
	}

	reduced := image.NewRGBA(image.Rect(0, 0, reducedWidth, reducedHeight))
	draw.ApproxBiLinear.Scale(reduced, reduced.Bounds(), img, bounds, draw.Src, nil)

	mosaic := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(mosaic, mosaic.Bounds(), reduced, reduced.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, mosaic, &jpeg.Options{Quality: renderQuality}); err != nil {
		return nil, fmt.Errorf("encode render: %w", err)
	}

	return buf.Bytes(), nil
}
