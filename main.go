package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"adamant/codec"
	"adamant/config"
	"adamant/local"
	"adamant/modules"
	"adamant/stegano/img"
	"adamant/util"
)

const (
	AdamantFolder  = ".adamant"
	ConfigFilename = "config.yaml"
	LogFilename    = "log.log"
	DbFilename     = "db.db"
	ImagesFolder   = "images"
)

func main() {

	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	adamantFolder := filepath.Join(home, AdamantFolder)
	configFile := filepath.Join(adamantFolder, ConfigFilename)

	// the only command which must be handled before reading configuration
	if os.Args[1] == "genconfig" {
		folder := filepath.Join(adamantFolder, ImagesFolder)
		if len(os.Args) > 2 {
			folder = os.Args[2]
		}
		if err = config.SaveConfig(configFile, defaultConfig(adamantFolder, folder)); err != nil {
			fatal("Failed to save configuration:", err)
		}
		fmt.Println("Configuration saved to", configFile)
		return
	}

	// if the application is used for the first time, create all the
	// things we need.
	if _, err := os.Stat(configFile); err != nil {
		conf := defaultConfig(adamantFolder, filepath.Join(adamantFolder, ImagesFolder))
		if err = config.SaveConfig(configFile, conf); err != nil {
			fatal("Failed to save default configuration:", err)
		}
	}
	conf, err := config.LoadConfig(configFile)
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	opts, err := conf.Codec.Options()
	if err != nil {
		fatal("Invalid codec configuration:", err)
	}
	logger := util.NewLogger(&conf.Logger)
	c := codec.New(opts, logger)

	switch os.Args[1] {
	case "encode":
		if len(os.Args) < 4 {
			fatal("Usage: adamant encode <text file|-> <image file>")
		}
		err = encode(opts, logger, os.Args[2], os.Args[3])
	case "decode":
		if len(os.Args) < 3 {
			fatal("Usage: adamant decode <image file> [text file]")
		}
		output := "-"
		if len(os.Args) > 3 {
			output = os.Args[3]
		}
		err = decode(c, os.Args[2], output)
	case "inspect":
		if len(os.Args) < 3 {
			fatal("Usage: adamant inspect <image file>")
		}
		err = inspect(c, os.Args[2])
	case "histogram":
		if len(os.Args) < 3 {
			fatal("Usage: adamant histogram <text file|->")
		}
		err = histogram(c, os.Args[2])
	case "watch":
		if len(os.Args) > 2 {
			conf.Watch.Folder = os.Args[2]
		}
		err = watch(conf)
	default:
		help()
		return
	}
	if err != nil {
		logger.LogError(err)
		fatal("Failed to "+os.Args[1]+":", err)
	}
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func encode(opts codec.Options, logger *util.Logger, input, output string) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}
	// the output extension wins over the configured format
	switch strings.ToLower(filepath.Ext(output)) {
	case ".png":
		opts.Format = img.FormatPNG
	case ".bmp":
		opts.Format = img.FormatBMP
	}
	image, err := codec.New(opts, logger).Encode(string(data))
	if err != nil {
		return err
	}
	return os.WriteFile(output, image, 0644)
}

func decode(c *codec.Codec, input, output string) error {
	text, err := c.Decode(img.ImageFile(input))
	if err != nil {
		return err
	}
	if output == "-" {
		_, err = fmt.Print(text)
		return err
	}
	return os.WriteFile(output, []byte(text), 0644)
}

func inspect(c *codec.Codec, input string) error {
	info, err := c.Inspect(img.ImageFile(input))
	if err != nil {
		return err
	}
	fmt.Printf("size:     %dx%d pixels (%d bits)\n", info.Width, info.Height, info.Capacity())
	fmt.Printf("layout:   %s\n", info.Layout)
	fmt.Printf("version:  %d\n", info.Header.Version)
	fmt.Printf("table:    %d bits, %d symbols\n", info.Header.TableBits, info.Symbols)
	fmt.Printf("content:  %d bits\n", info.Header.ContentBits)
	fmt.Printf("padding:  %d bits\n", info.Capacity()-info.Header.TotalBits())
	return nil
}

func histogram(c *codec.Codec, input string) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}
	h, err := c.Histogram(string(data))
	if err != nil {
		return err
	}
	for _, f := range h {
		fmt.Printf("%q\t%d\n", rune(f.Symbol), f.Count)
	}
	return nil
}

func watch(conf *config.FullConfig) error {
	if err := os.MkdirAll(conf.Watch.Folder, 0700); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Watching", conf.Watch.Folder, "(Ctrl+C to stop)")
	err := local.RunWatcher(ctx, conf, func(m *modules.Module) {
		fmt.Printf("--- %s ---\n%s\n", m.Name, m.Text)
	}, nil)
	if ctx.Err() != nil {
		// interrupted
		return nil
	}
	return err
}

func defaultConfig(adamantFolder, imagesFolder string) *config.FullConfig {
	conf := config.DefaultConfig(imagesFolder)
	conf.Watch.DbFile = filepath.Join(adamantFolder, DbFilename)
	conf.Logger.Filename = filepath.Join(adamantFolder, LogFilename)
	conf.Logger.Mode = util.Error | util.Warning
	return conf
}

func fatal(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func help() {
	line := `Usage: ./adamant <command> [arguments]

Hides text in the pixels of an image and gets it back.

The following commands are supported:
	encode <text|-> <image>		compress text into a bmp or png image
	decode <image> [text]		print or save the text carried by an image
	inspect <image>			show the container header of an image
	histogram <text|->		show symbol frequencies of a text
	watch [folder]			decode new images appearing in a folder
	genconfig [folder]		write the default configuration
	help				show this message

Configuration lives in ~/.adamant/config.yaml.
`
	fmt.Printf("%s", line)
}
