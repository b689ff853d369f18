package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/chromaramp/internal/accessibility"
	"github.com/alexisbeaulieu97/chromaramp/internal/emit"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
	"github.com/alexisbeaulieu97/chromaramp/internal/tui"
)

const formatSwatch = "swatch"

type singleScaleOptions struct {
	ID     string
	Prefix string
	Format string
}

// writeSingleScale renders one ad-hoc scale to out in the requested format.
func writeSingleScale(out io.Writer, opts singleScaleOptions, s scale.Scale) error {
	if err := validateFormats([]string{opts.Format}, formatSwatch); err != nil {
		return err
	}

	if opts.Format == formatSwatch {
		fmt.Fprintln(out, tui.RenderScale(opts.ID, s))
		if issues := tui.RenderIssues(accessibility.Validate(s)); issues != "" {
			fmt.Fprintln(out, issues)
		}
		return nil
	}

	doc := emit.Document{
		Prefix:   opts.Prefix,
		Palettes: []emit.Palette{{ID: opts.ID, Scale: s}},
	}
	data, err := emit.Render(opts.Format, doc)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
