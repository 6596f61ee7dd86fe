package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrjoshuak/go-imagecore"
)

const nullName = "null:"

type convertFlags struct {
	colorspace string
	size       string
	storage    string
	format     string
	props      []string
}

func newConvertCmd(a *app) *cobra.Command {
	var f convertFlags
	cmd := &cobra.Command{
		Use:   "convert [flags] INPUT OUTPUT",
		Short: "Read an image, optionally change its colorspace, and write it",
		Long: `Read an image, optionally change its colorspace, and write it.

INPUT or OUTPUT may be "null:". A null input is a transparent black image of
--size; a null output discards the result. The output format follows the
OUTPUT extension unless --format is given. Channels are written as stored.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, f, args[0], args[1])
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.colorspace, "colorspace", "", "target colorspace")
	fl.StringVar(&f.size, "size", "", "size of a null input, WIDTHxHEIGHT")
	fl.StringVar(&f.storage, "storage", "", "storage class of the result (direct, indexed)")
	fl.StringVar(&f.format, "format", "", "output format, overriding the extension")
	fl.StringArrayVar(&f.props, "set", nil, "image property KEY=VALUE, repeatable")
	return cmd
}

func (a *app) convert(cmd *cobra.Command, f convertFlags, in, out string) error {
	target := imagecore.Undefined
	if f.colorspace != "" {
		c, err := imagecore.ParseColorspace(f.colorspace)
		if err != nil {
			return err
		}
		target = c
	}

	var img *imagecore.Image
	if in == nullName {
		w, h, err := parseSize(f.size)
		if err != nil {
			return err
		}
		cs := imagecore.SRGB
		if target != imagecore.Undefined {
			cs = target
		}
		img = imagecore.NewNullImage(w, h, cs)
	} else {
		m, format, err := imagecore.Open(in)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		a.logger.Debug("decoded", "file", in, "format", format,
			"width", m.Width(), "height", m.Height(), "class", m.StorageClass())
		img = m
	}

	for k, v := range a.cfg.Properties {
		img.SetProperty(k, v)
	}
	for _, kv := range f.props {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return fmt.Errorf("property %q is not KEY=VALUE", kv)
		}
		img.SetProperty(k, v)
	}

	if f.colorspace != "" {
		t, err := a.transformer()
		if err != nil {
			return err
		}
		if err := t.TransformColorspace(img, target); err != nil {
			return err
		}
	}

	switch f.storage {
	case "":
	case "direct":
		if err := img.SetStorageClass(imagecore.Direct); err != nil {
			return err
		}
	case "indexed":
		if err := img.SetStorageClass(imagecore.Indexed); err != nil {
			return err
		}
	default:
		return fmt.Errorf("storage class %q", f.storage)
	}

	if out == nullName {
		return imagecore.EncodeNull(cmd.OutOrStdout(), img)
	}
	if f.format != "" {
		format, err := imagecore.ParseFormat(f.format)
		if err != nil {
			return err
		}
		if out == "-" {
			w := cmd.OutOrStdout()
			if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
				return fmt.Errorf("refusing to write %s data to a terminal", format)
			}
			return imagecore.Encode(w, img, format)
		}
		return imagecore.SaveAs(img, out, format)
	}
	return imagecore.Save(img, out)
}

// parseSize parses WIDTHxHEIGHT. An empty string is 0x0.
func parseSize(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q is not WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 0 {
		return 0, 0, fmt.Errorf("size %q: bad width", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 {
		return 0, 0, fmt.Errorf("size %q: bad height", s)
	}
	return w, h, nil
}
