package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mithrel/mdiu/pkg/markup"
)

// CheckConfigValidity reports every invalid setting at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	if f := v.GetString("format"); f == "" {
		errs = append(errs, errors.New("format is required"))
	} else if _, ok := markup.ParseFormat(f); !ok {
		errs = append(errs, fmt.Errorf("format %q is not one of gemtext, html, markdown", f))
	}
	if v.GetString("preview.style") == "" {
		errs = append(errs, errors.New("preview.style is required"))
	}
	if v.GetInt("preview.word_wrap") < 0 {
		errs = append(errs, errors.New("preview.word_wrap must not be negative"))
	}

	return errors.Join(errs...)
}
