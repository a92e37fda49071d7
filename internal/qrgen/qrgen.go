// Package qrgen produces styled QR code bitmaps in memory.
//
// Codes are generated with Quart error correction so they stay scannable
// after module reshaping or when composited over busy backgrounds.
package qrgen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
	"github.com/yeqown/go-qrcode/writer/standard/shapes"
)

// ErrUnencodable marks content that cannot be turned into a scannable
// code, either because it exceeds QR capacity or because the code would
// not fit its slot. Handlers map it to a client error.
var ErrUnencodable = errors.New("content cannot be encoded as a QR code")

// Shape selects how individual QR modules are drawn.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeLiquid    Shape = "liquid"
	ShapeChain     Shape = "chain"
	ShapeHStripe   Shape = "hstripe"
	ShapeVStripe   Shape = "vstripe"
)

// ParseShape maps a request parameter to a Shape, defaulting to rectangle.
func ParseShape(s string) Shape {
	switch Shape(s) {
	case ShapeCircle, ShapeLiquid, ShapeChain, ShapeHStripe, ShapeVStripe:
		return Shape(s)
	default:
		return ShapeRectangle
	}
}

// Options controls the appearance of a generated code.
type Options struct {
	// ModuleSize is the edge length of one QR module in pixels.
	ModuleSize uint8
	Foreground color.RGBA
	Background color.RGBA // zero alpha means transparent
	Shape      Shape

	// Gradient, when true, fills modules with a 45-degree linear gradient
	// from GradientStart through GradientMiddle to GradientEnd instead of
	// the flat foreground color.
	Gradient       bool
	GradientStart  color.RGBA
	GradientMiddle color.RGBA
	GradientEnd    color.RGBA
}

// DefaultOptions renders black-on-white rectangular modules at 16px.
func DefaultOptions() Options {
	return Options{
		ModuleSize: 16,
		Foreground: color.RGBA{0, 0, 0, 255},
		Background: color.RGBA{255, 255, 255, 255},
		Shape:      ShapeRectangle,
	}
}

// nopWriteCloser adapts a bytes.Buffer to the io.WriteCloser the standard
// writer expects.
type nopWriteCloser struct {
	bytes.Buffer
}

func (w *nopWriteCloser) Close() error { return nil }

// customShape wraps a drawing function from the shapes package so it
// satisfies the writer's IShape interface.
type customShape struct {
	drawFunc func(ctx *standard.DrawContext)
}

func (cs *customShape) Draw(ctx *standard.DrawContext) { cs.drawFunc(ctx) }

// DrawFinder reuses the same drawing function for finder patterns.
func (cs *customShape) DrawFinder(ctx *standard.DrawContext) { cs.drawFunc(ctx) }

// Generate encodes content as a QR code and renders it with the given
// options, returning the decoded bitmap.
func Generate(content string, opts Options) (image.Image, error) {
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if opts.ModuleSize == 0 {
		opts.ModuleSize = DefaultOptions().ModuleSize
	}

	qrc, err := qrcode.NewWith(content, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}

	writerOptions := []standard.ImageOption{
		standard.WithQRWidth(opts.ModuleSize),
		standard.WithBorderWidth(0),
		// The writer's builtin encoder defaults to JPEG; the decode
		// below and transparent backgrounds both need PNG.
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	}

	if opts.Background.A == 0 {
		writerOptions = append(writerOptions, standard.WithBgTransparent())
	} else {
		writerOptions = append(writerOptions, standard.WithBgColor(opts.Background))
	}

	switch opts.Shape {
	case ShapeCircle:
		writerOptions = append(writerOptions, standard.WithCircleShape())
	case ShapeLiquid:
		writerOptions = append(writerOptions, standard.WithCustomShape(&customShape{drawFunc: shapes.LiquidBlock()}))
	case ShapeChain:
		writerOptions = append(writerOptions, standard.WithCustomShape(&customShape{drawFunc: shapes.ChainBlock()}))
	case ShapeHStripe:
		writerOptions = append(writerOptions, standard.WithCustomShape(&customShape{drawFunc: shapes.HStripeBlock(0.85)}))
	case ShapeVStripe:
		writerOptions = append(writerOptions, standard.WithCustomShape(&customShape{drawFunc: shapes.VStripeBlock(0.85)}))
	default:
		// rectangle needs no extra option
	}

	if opts.Gradient {
		gradient := standard.NewGradient(45, []standard.ColorStop{
			{T: 0, Color: opts.GradientStart},
			{T: 0.5, Color: opts.GradientMiddle},
			{T: 1, Color: opts.GradientEnd},
		}...)
		writerOptions = append(writerOptions, standard.WithFgGradient(gradient))
	} else {
		writerOptions = append(writerOptions, standard.WithFgColor(opts.Foreground))
	}

	buf := &nopWriteCloser{}
	writer := standard.NewWithWriter(buf, writerOptions...)
	if err := qrc.Save(writer); err != nil {
		return nil, fmt.Errorf("render QR image: %v", err)
	}
	writer.Close()

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("decode QR image: %v", err)
	}
	return img, nil
}

// ScaleTo resizes a QR bitmap to an exact square edge length using nearest
// neighbor so module edges stay sharp.
func ScaleTo(img image.Image, edge int) image.Image {
	if edge <= 0 || img.Bounds().Dx() == edge {
		return img
	}
	return imaging.Resize(img, edge, edge, imaging.NearestNeighbor)
}
