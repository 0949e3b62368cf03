// SPDX-License-Identifier: MIT

// Package render draws a bead conformation as shaded spheres, for eyeballing
// sampled conformers. Images are rasterized at Supersample× resolution and
// downscaled with a Lanczos filter.
package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"

	"github.com/katalvlaran/glmmda/chain"
)

// ErrInvalidInput is returned for an empty conformation, mismatched radii or
// a non-positive image size.
var ErrInvalidInput = errors.New("render: invalid input")

const (
	fovy        = 30
	near        = 1
	far         = 10
	cameraDist  = 4.5
	sphereLevel = 2
)

var (
	eye    = fauxgl.V(0, -cameraDist, 1.5)
	center = fauxgl.V(0, 0, 0)
	up     = fauxgl.V(0, 0, 1)
	light  = fauxgl.V(-0.75, -1, 0.5).Normalize()

	background  = fauxgl.HexColor("#FFFFFF")
	linkerColor = fauxgl.HexColor("#468966")
	domainColor = fauxgl.HexColor("#B64926")
)

// Options controls the output image.
type Options struct {
	Width, Height int
	// Supersample is the rasterization scale factor, >= 1.
	Supersample int
}

// DefaultOptions is a 800×600 image rendered at 2×.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, Supersample: 2}
}

// Snapshot renders conf with one sphere per bead. Beads larger than the
// smallest radius are drawn in the domain colour.
func Snapshot(conf chain.Conformation, radii []float64, opt Options) (image.Image, error) {
	if len(conf) == 0 || len(conf) != len(radii) {
		return nil, fmt.Errorf("%w: %d beads, %d radii", ErrInvalidInput, len(conf), len(radii))
	}
	if opt.Width < 1 || opt.Height < 1 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidInput, opt.Width, opt.Height)
	}
	if opt.Supersample < 1 {
		opt.Supersample = 1
	}

	extent := conf.Extent(radii)
	if !(extent > 0) {
		return nil, fmt.Errorf("%w: zero extent", ErrInvalidInput)
	}
	origin := conf.Centroid()
	fit := 1 / extent
	smallest := math.Inf(1)
	for _, r := range radii {
		smallest = math.Min(smallest, r)
	}

	dc := fauxgl.NewContext(opt.Width*opt.Supersample, opt.Height*opt.Supersample)
	dc.ClearColorBufferWith(background)
	dc.ClearDepthBuffer()
	aspect := float64(opt.Width) / float64(opt.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	dc.Shader = shader

	for i, p := range conf {
		r := radii[i] * fit
		pos := fauxgl.V((p.X-origin.X)*fit, (p.Y-origin.Y)*fit, (p.Z-origin.Z)*fit)
		sphere := fauxgl.NewSphere(sphereLevel)
		sphere.Transform(fauxgl.Scale(fauxgl.V(r, r, r)).Translate(pos))
		shader.ObjectColor = linkerColor
		if radii[i] > smallest {
			shader.ObjectColor = domainColor
		}
		dc.DrawMesh(sphere)
	}

	img := dc.Image()
	if opt.Supersample > 1 {
		img = resize.Resize(uint(opt.Width), uint(opt.Height), img, resize.Lanczos3)
	}

	return img, nil
}

// SavePNG renders conf and writes it to path.
func SavePNG(path string, conf chain.Conformation, radii []float64, opt Options) error {
	img, err := Snapshot(conf, radii, opt)
	if err != nil {
		return err
	}

	return SavePNGImage(path, img)
}

// SavePNGImage writes img to path as PNG.
func SavePNGImage(path string, img image.Image) error {
	if err := fauxgl.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: %v", err)
	}

	return nil
}
