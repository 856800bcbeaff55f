// Command qrsymbol encodes an ASCII payload into a QR Code symbol (version
// 1-5, error level L) and writes it out as a PPM image.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/kodeshop/qrsymbol"
	"github.com/kodeshop/qrsymbol/mask"
	"github.com/kodeshop/qrsymbol/render"
)

func main() {
	app := cli.NewApp()
	app.Name = "qrsymbol"
	app.Usage = "encode text as a QR Code symbol and write it out as a PPM image"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "out",
			Value: "out.ppm",
			Usage: "path to write the PPM image to",
		},
		cli.IntFlag{
			Name:  "scale",
			Value: 8,
			Usage: "pixels per module",
		},
		cli.IntFlag{
			Name:  "mask",
			Value: 0,
			Usage: "mask pattern, 0-3",
		},
		cli.IntFlag{
			Name:  "version",
			Value: 1,
			Usage: "minimum symbol version to attempt, 1-5",
		},
	}
	app.Action = encodeAction

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "qrsymbol:", err)
		os.Exit(1)
	}
}

func encodeAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one argument: the text to encode")
	}
	text := c.Args().Get(0)

	sym, err := qrsymbol.EncodeWithMask(text, c.Int("version"), mask.Pattern(c.Int("mask")))
	if err != nil {
		return errors.Wrap(err, "encoding symbol")
	}

	out, err := os.Create(c.String("out"))
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer out.Close()

	if err := render.WritePPM(out, sym, c.Int("scale"), 4); err != nil {
		return errors.Wrap(err, "writing PPM image")
	}

	fmt.Printf("wrote version %d symbol (mask %d) to %s\n", sym.Version(), sym.Mask(), c.String("out"))
	return nil
}
