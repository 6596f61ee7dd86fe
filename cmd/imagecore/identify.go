package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrjoshuak/go-imagecore"
)

func newIdentifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "identify FILE...",
		Short: "Describe image files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, name := range args {
				img, format, err := imagecore.Open(name)
				if err != nil {
					a.logger.Error("identify", "file", name, "err", err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %dx%d %s %s %d-bit %s\n",
					name, format, img.Width(), img.Height(), img.StorageClass(),
					img.Colorspace(), img.Depth(), img.Type())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be read", failed, len(args))
			}
			return nil
		},
	}
}
