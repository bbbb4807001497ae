package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"adamant/codec"
	"adamant/stegano/img"
	"adamant/util"
)

const (
	DefaultInterval    = 400 // milliseconds
	DefaultDbRowsLimit = 100000
)

/*
 * Configuration of the codec. Everything the encoder and the decoder
 * need besides the text itself.
 */
type CodecConfig struct {
	Layout        string `yaml:"layout"`
	Format        string `yaml:"format"`
	StripComments bool   `yaml:"strip_comments"`
	Normalize     bool   `yaml:"normalize"`
}

/*
 * Configuration of the folder watcher. DbFile may be empty, then the
 * registry of seen images lives in memory only.
 */
type WatchConfig struct {
	Folder      string   `yaml:"folder"`
	Extensions  []string `yaml:"extensions"`
	Interval    uint     `yaml:"interval"`
	AutoExecute bool     `yaml:"auto_execute"`
	DbFile      string   `yaml:"db_file"`
	DbRowsLimit uint     `yaml:"db_rows_limit"`
}

type FullConfig struct {
	Codec  CodecConfig     `yaml:"codec"`
	Watch  WatchConfig     `yaml:"watch"`
	Logger util.LoggerInfo `yaml:"logger_config"`
}

// DefaultConfig watches folder and keeps its registry next to it.
func DefaultConfig(folder string) *FullConfig {
	return &FullConfig{
		Codec: CodecConfig{
			Layout:    img.Spiral.String(),
			Format:    string(img.FormatBMP),
			Normalize: true,
		},
		Watch: WatchConfig{
			Folder:      folder,
			Extensions:  []string{"bmp", "png"},
			Interval:    DefaultInterval,
			DbFile:      filepath.Join(folder, ".adamant.db"),
			DbRowsLimit: DefaultDbRowsLimit,
		},
		Logger: util.LoggerInfo{
			IsColored: true,
			SaveTime:  true,
			Mode:      util.AllModes,
		},
	}
}

func (c *CodecConfig) Options() (codec.Options, error) {
	layout, err := img.ParseLayout(c.Layout)
	if err != nil {
		return codec.Options{}, err
	}
	format := img.Format(c.Format)
	switch format {
	case img.FormatUnknown:
		format = img.FormatBMP
	case img.FormatBMP, img.FormatPNG:
	default:
		return codec.Options{}, fmt.Errorf("%w: %s", img.ErrUnsupportedFormat, c.Format)
	}
	return codec.Options{
		Layout:        layout,
		Format:        format,
		StripComments: c.StripComments,
		Normalize:     c.Normalize,
	}, nil
}

func (c *FullConfig) Validate() error {
	if _, err := c.Codec.Options(); err != nil {
		return fmt.Errorf("codec: %w", err)
	}
	if c.Watch.Interval == 0 {
		return fmt.Errorf("watch: interval must be positive")
	}
	if len(c.Watch.Extensions) == 0 {
		return fmt.Errorf("watch: no extensions to look for")
	}
	if c.Logger.Mode > util.AllModes {
		return fmt.Errorf("logger_config: unknown mode %d", c.Logger.Mode)
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig(filename string) (*FullConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &conf, nil
}

func SaveConfig(filename string, c *FullConfig) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}
