// Command dmtxgen renders Data Matrix ECC-200 symbols to PNG files.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	zxinggo "github.com/go-dmtx/dmtx"
	"github.com/go-dmtx/dmtx/charset"
	"github.com/go-dmtx/dmtx/datamatrix"
)

// config holds defaults loadable from ~/.config/dmtxgen/config.yaml,
// overridable by flags of the same name on each invocation.
type config struct {
	Shape  string `yaml:"shape"`  // "", "square", or "rect"
	Margin int    `yaml:"margin"` // quiet zone in modules
	Scale  int    `yaml:"scale"`  // pixels per module
}

func defaultConfig() config {
	return config{Shape: "", Margin: 1, Scale: 4}
}

func loadConfig(logger *log.Logger) config {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		logger.Debug("no config path available", "err", err)
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read config file", "path", path, "err", err)
		}
		return cfg
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Warn("could not parse config file", "path", path, "err", err)
		return defaultConfig()
	}

	return cfg
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dmtxgen", "config.yaml"), nil
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	cfg := loadConfig(logger)

	var (
		out          string
		shape        string
		margin       int
		scale        int
		file         string
		characterSet string
		verbose      bool
	)

	flags := pflag.NewFlagSet("dmtxgen", pflag.ExitOnError)
	flags.StringVarP(&out, "out", "o", "", "output PNG path (default: <contents>.png)")
	flags.StringVar(&shape, "shape", cfg.Shape, `symbol shape constraint: "", "square", or "rect"`)
	flags.IntVar(&margin, "margin", cfg.Margin, "quiet zone width in modules")
	flags.IntVar(&scale, "scale", cfg.Scale, "pixels per module")
	flags.StringVarP(&file, "file", "f", "", "read contents from this file instead of the positional argument")
	flags.StringVar(&characterSet, "charset", "", "force the input file's character set instead of guessing it")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dmtxgen [flags] [contents]\n\nEncode contents into a Data Matrix ECC-200 symbol PNG.\nWith --file, contents is read from disk and its character set guessed.\n\nFlags:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var contents string
	switch {
	case file != "":
		if flags.NArg() != 0 {
			flags.Usage()
			os.Exit(1)
		}
		decoded, err := readContentsFile(logger, file, characterSet)
		if err != nil {
			logger.Error("read input file failed", "err", err)
			os.Exit(1)
		}
		contents = decoded
	case flags.NArg() == 1:
		contents = flags.Arg(0)
	default:
		flags.Usage()
		os.Exit(1)
	}

	if out == "" {
		out = contents + ".png"
	}

	if err := run(logger, contents, out, shape, margin, scale); err != nil {
		logger.Error("encode failed", "err", err)
		os.Exit(1)
	}
}

// readContentsFile reads raw bytes from path and decodes them to UTF-8,
// guessing the source character set unless characterSet pins one explicitly.
func readContentsFile(logger *log.Logger, path, characterSet string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	encoding := charset.GuessEncoding(raw, characterSet)
	logger.Debug("guessed input encoding", "path", path, "encoding", encoding)

	return charset.DecodeBytes(raw, encoding), nil
}

func run(logger *log.Logger, contents, out, shape string, margin, scale int) error {
	opts := &zxinggo.EncodeOptions{
		Margin:          &margin,
		DataMatrixShape: shape,
	}

	logger.Debug("encoding", "contents", contents, "shape", shape, "margin", margin, "scale", scale)

	writer := datamatrix.NewWriter()
	matrix, err := writer.Encode(contents, zxinggo.FormatDataMatrix, 0, 0, opts)
	if err != nil {
		return fmt.Errorf("encode %q: %w", contents, err)
	}

	img := renderPNG(matrix, scale)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("write png %s: %w", out, err)
	}

	logger.Info("wrote symbol", "path", out, "width", matrix.Width(), "height", matrix.Height())
	return nil
}

func renderPNG(matrix interface {
	Width() int
	Height() int
	Get(x, y int) bool
}, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	w, h := matrix.Width()*scale, matrix.Height()*scale
	img := image.NewGray(image.Rect(0, 0, w, h))
	white := color.Gray{Y: 255}
	black := color.Gray{Y: 0}

	for y := 0; y < matrix.Height(); y++ {
		for x := 0; x < matrix.Width(); x++ {
			c := white
			if matrix.Get(x, y) {
				c = black
			}
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					img.SetGray(x*scale+sx, y*scale+sy, c)
				}
			}
		}
	}
	return img
}
