// Command rpeg compresses images into the rpeg packed-word format and back.
//
//	rpeg -c [flags] <image>   compress (PPM, PNG, JPEG, GIF, BMP, TIFF input)
//	rpeg -d [flags] <file>    decompress to binary PPM
//
// Output goes to stdout unless -o names a file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danielediazp/Lossy-Image-Compression/codec"
	"github.com/danielediazp/Lossy-Image-Compression/imageio"
	"github.com/danielediazp/Lossy-Image-Compression/rpeg"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	mode := os.Args[1]

	fs := flag.NewFlagSet("rpeg", flag.ExitOnError)
	out := fs.String("o", "", "write output to this file instead of stdout")
	useZstd := fs.Bool("z", false, "wrap compressed output in a zstd container")
	scale := fs.Int("scale", 0, "downscale input to this width before compressing")
	blur := fs.Float64("blur", 0, "gaussian blur sigma applied before compressing")
	if err := fs.Parse(os.Args[2:]); err != nil {
		usage()
	}
	if fs.NArg() != 1 {
		usage()
	}
	input := fs.Arg(0)

	var run func(in io.Reader, out io.Writer) error
	switch mode {
	case "-c":
		run = func(in io.Reader, w io.Writer) error {
			return compress(in, w, &rpeg.Options{
				Zstd:       *useZstd,
				ScaleWidth: *scale,
				BlurSigma:  float32(*blur),
			})
		}
	case "-d":
		run = decompress
	default:
		usage()
	}

	in, err := os.Open(input)
	if err != nil {
		fatal(err)
	}
	defer in.Close()

	dst := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		dst = f
	}

	if err := run(in, dst); err != nil {
		fatal(err)
	}
}

func compress(in io.Reader, out io.Writer, opts *rpeg.Options) error {
	img, err := imageio.Read(in)
	if err != nil {
		return err
	}
	// The codec surface speaks interleaved 8-bit RGB; PPM input with a
	// different maxval is rescaled first.
	if img.Denominator != 255 {
		img = imageio.FromRGBA(img.ToRGBA())
	}

	c, err := codec.Get("rpeg")
	if err != nil {
		return err
	}
	encoded, err := c.Encode(codec.EncodeParams{
		PixelData:   img.Bytes(),
		Width:       img.Width,
		Height:      img.Height,
		Denominator: img.Denominator,
		Options:     opts,
	})
	if err != nil {
		return err
	}
	_, err = out.Write(encoded)
	return err
}

func decompress(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	c, err := codec.Get("rpeg")
	if err != nil {
		return err
	}
	result, err := c.Decode(data)
	if err != nil {
		return err
	}

	img := imageio.FromBytes(result.PixelData, result.Width, result.Height, result.Denominator)
	return imageio.WritePPM(out, img)
}

func usage() {
	fmt.Fprint(os.Stderr, "Usage: rpeg -c [flags] [filename]\nrpeg -d [flags] [filename]\n")
	os.Exit(1)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "rpeg:", err)
	os.Exit(1)
}
