package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the diary configuration handed to every component.
type Config interface {
	// BasePath is the diary root holding year directories and the aggregator.
	BasePath() string
	// Extension of month documents and the aggregator, without a dot.
	Extension() string
	// MainName is the aggregator file name without extension.
	MainName() string
	EmojiDir() string
	Typesetter() string
	TypesetRuns() int
	Title() string
	Author() string
}

// LoadConfig reads .diary.yaml from $DIARY_CONFIG_PATH or the working
// directory, then DIARY_* environment variables, over the defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", ".")
	v.SetDefault("extension", "tex")
	v.SetDefault("main", "MainFile")
	v.SetDefault("emoji_dir", "Emoji")
	v.SetDefault("typesetter", "pdflatex")
	v.SetDefault("typeset_runs", 2)
	v.SetDefault("title", "My Diary")
	v.SetDefault("author", "Anonymous")

	v.SetConfigName(".diary") // .yaml is implicit
	v.SetEnvPrefix("DIARY")
	v.AutomaticEnv()

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:       path,
		Ext:        v.GetString("extension"),
		Main:       v.GetString("main"),
		Emoji:      v.GetString("emoji_dir"),
		Typeset:    v.GetString("typesetter"),
		Runs:       v.GetInt("typeset_runs"),
		DiaryTitle: v.GetString("title"),
		Name:       v.GetString("author"),
		configFile: v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	Ext        string `json:"extension"`
	Main       string `json:"main"`
	Emoji      string `json:"emoji_dir"`
	Typeset    string `json:"typesetter"`
	Runs       int    `json:"typeset_runs"`
	DiaryTitle string `json:"title"`
	Name       string `json:"author"`

	configFile string
}

func (f *fileConfig) BasePath() string   { return f.Path }
func (f *fileConfig) Extension() string  { return f.Ext }
func (f *fileConfig) MainName() string   { return f.Main }
func (f *fileConfig) EmojiDir() string   { return f.Emoji }
func (f *fileConfig) Typesetter() string { return f.Typeset }
func (f *fileConfig) Title() string      { return f.DiaryTitle }
func (f *fileConfig) Author() string     { return f.Name }

func (f *fileConfig) TypesetRuns() int {
	if f.Runs < 1 {
		return 1
	}
	return f.Runs
}

// ConfigFile reports the config file that was read, if any.
func ConfigFile(c Config) string {
	if f, ok := c.(*fileConfig); ok {
		return f.configFile
	}
	return ""
}

// StaticConfig is a Config with fixed values. Zero fields take the defaults
// LoadConfig would use.
type StaticConfig struct {
	Path    string
	Ext     string
	Main    string
	Emoji   string
	Typeset string
	Runs    int
	Name    string
	Owner   string
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Extension() string {
	return orDefault(s.Ext, "tex")
}

func (s StaticConfig) MainName() string {
	return orDefault(s.Main, "MainFile")
}

func (s StaticConfig) EmojiDir() string {
	return orDefault(s.Emoji, "Emoji")
}

func (s StaticConfig) Typesetter() string {
	return orDefault(s.Typeset, "pdflatex")
}

func (s StaticConfig) TypesetRuns() int {
	if s.Runs < 1 {
		return 1
	}
	return s.Runs
}

func (s StaticConfig) Title() string {
	return orDefault(s.Name, "My Diary")
}

func (s StaticConfig) Author() string {
	return orDefault(s.Owner, "Anonymous")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
