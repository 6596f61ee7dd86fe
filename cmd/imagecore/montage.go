package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/mrjoshuak/go-imagecore"
)

type montageFlags struct {
	tile       string
	geometry   string
	background string
	colorspace string
}

// geometry is a cell size with spacing around each tile.
type geometry struct {
	w, h, border int
}

func newMontageCmd(a *app) *cobra.Command {
	var f montageFlags
	cmd := &cobra.Command{
		Use:   "montage [flags] OUTPUT INPUT...",
		Short: "Tile images on a grid",
		Long: `Tile images on a grid.

Each input is scaled to fit its cell with its aspect ratio kept and centered.
Inputs in other colorspaces are converted to sRGB first.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.montage(f, args[0], args[1:])
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.tile, "tile", "", "grid COLUMNSxROWS; rows or both may be left out")
	fl.StringVar(&f.geometry, "geometry", "120x120+2", "cell WIDTHxHEIGHT+BORDER")
	fl.StringVar(&f.background, "background", "#ffffff", "background color #rgb or #rrggbb")
	fl.StringVar(&f.colorspace, "colorspace", "", "colorspace of the result")
	return cmd
}

func (a *app) montage(f montageFlags, out string, inputs []string) error {
	g, err := parseGeometry(f.geometry)
	if err != nil {
		return err
	}
	cols, rows, err := parseTile(f.tile, len(inputs))
	if err != nil {
		return err
	}
	bg, err := parseHexColor(f.background)
	if err != nil {
		return err
	}
	t, err := a.transformer()
	if err != nil {
		return err
	}

	cellW, cellH := g.w+2*g.border, g.h+2*g.border
	canvas := image.NewNRGBA64(image.Rect(0, 0, cols*cellW, rows*cellH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for i, name := range inputs {
		if i >= cols*rows {
			a.logger.Warn("montage grid full", "skipped", len(inputs)-i)
			break
		}
		img, _, err := imagecore.Open(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := t.TransformToSRGB(img); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		x0 := (i%cols)*cellW + g.border
		y0 := (i/cols)*cellH + g.border
		dst := fit(img.Bounds(), image.Rect(x0, y0, x0+g.w, y0+g.h))
		draw.CatmullRom.Scale(canvas, dst, img, img.Bounds(), draw.Over, nil)
	}

	result := imagecore.FromImage(canvas)
	if f.colorspace != "" {
		c, err := imagecore.ParseColorspace(f.colorspace)
		if err != nil {
			return err
		}
		if err := t.TransformColorspace(result, c); err != nil {
			return err
		}
	}
	a.logger.Info("montage", "output", out, "tiles", min(len(inputs), cols*rows),
		"columns", cols, "rows", rows)
	return imagecore.Save(result, out)
}

// fit returns the largest rectangle with the aspect ratio of src centered
// in cell.
func fit(src, cell image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	cw, ch := cell.Dx(), cell.Dy()
	if sw == 0 || sh == 0 {
		return image.Rectangle{Min: cell.Min, Max: cell.Min}
	}
	w, h := cw, sh*cw/sw
	if h > ch {
		w, h = sw*ch/sh, ch
	}
	w, h = max(w, 1), max(h, 1)
	x := cell.Min.X + (cw-w)/2
	y := cell.Min.Y + (ch-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func parseGeometry(s string) (geometry, error) {
	size, border, _ := strings.Cut(s, "+")
	w, h, err := parseSize(size)
	if err != nil {
		return geometry{}, err
	}
	if w == 0 || h == 0 {
		return geometry{}, fmt.Errorf("geometry %q: empty cell", s)
	}
	g := geometry{w: w, h: h}
	if border != "" {
		if g.border, err = strconv.Atoi(border); err != nil || g.border < 0 {
			return geometry{}, fmt.Errorf("geometry %q: bad border", s)
		}
	}
	return g, nil
}

// parseTile parses COLUMNSxROWS for n tiles. Missing values are derived from
// n, making the grid as square as possible.
func parseTile(s string, n int) (int, int, error) {
	n = max(n, 1)
	var cols, rows int
	if s != "" {
		cs, rs, _ := strings.Cut(strings.ToLower(s), "x")
		var err error
		if cs != "" {
			if cols, err = strconv.Atoi(cs); err != nil || cols <= 0 {
				return 0, 0, fmt.Errorf("tile %q: bad columns", s)
			}
		}
		if rs != "" {
			if rows, err = strconv.Atoi(rs); err != nil || rows <= 0 {
				return 0, 0, fmt.Errorf("tile %q: bad rows", s)
			}
		}
	}
	switch {
	case cols == 0 && rows == 0:
		for cols*cols < n {
			cols++
		}
		rows = (n + cols - 1) / cols
	case cols == 0:
		cols = (n + rows - 1) / rows
	case rows == 0:
		rows = (n + cols - 1) / cols
	}
	return cols, rows, nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("background %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
