package wire

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/mdiu/internal/config"
	"github.com/mithrel/mdiu/pkg/markup"
)

// App carries the resolved settings shared by every command.
type App struct {
	Cfg          *viper.Viper
	Log          *log.Logger
	Format       markup.Format
	OutputDir    string
	Pager        bool
	PreviewStyle string
	PreviewWrap  int
}

// BuildApp validates the loaded config and resolves it into an App.
// Log output goes to logOut when verbose is set and is discarded otherwise.
func BuildApp(ctx context.Context, v *viper.Viper, logOut io.Writer) (*App, error) {
	name := v.GetString("format")
	f, ok := markup.ParseFormat(name)
	if !ok {
		return nil, UnknownFormatError(name)
	}
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if !v.GetBool("verbose") {
		logOut = io.Discard
	}
	return &App{
		Cfg:          v,
		Log:          log.New(logOut, "mdiu ", log.LstdFlags),
		Format:       f,
		OutputDir:    v.GetString("output_dir"),
		Pager:        v.GetBool("pager"),
		PreviewStyle: v.GetString("preview.style"),
		PreviewWrap:  v.GetInt("preview.word_wrap"),
	}, nil
}

// UnknownFormatError names the bad format and, when possible, the closest
// known ones.
func UnknownFormatError(name string) error {
	if s := markup.Suggest(name); len(s) > 0 {
		return fmt.Errorf("unknown format %q; did you mean %s?", name, strings.Join(s, " or "))
	}
	return fmt.Errorf("unknown format %q", name)
}
