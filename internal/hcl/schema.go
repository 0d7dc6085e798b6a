package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a configuration file:
//
//	content = ["./**/*.{html,svg,sql}"]
//
//	theme {
//	  extend {
//	    colors         = { primary = "var(--color-primary)" }
//	    letter_spacing = { tighterer = "-0.1em" }
//	  }
//	}
//
//	plugins = ["@tailwindcss/typography"]
//
// Collections are kept as raw expressions so translation can see every
// element's source range.
type fileRoot struct {
	Content hcl.Expression `hcl:"content,optional"`
	Theme   *themeBlock    `hcl:"theme,block"`
	Plugins hcl.Expression `hcl:"plugins,optional"`
}

type themeBlock struct {
	Extend *extendBlock `hcl:"extend,block"`
}

type extendBlock struct {
	Colors        hcl.Expression `hcl:"colors,optional"`
	LetterSpacing hcl.Expression `hcl:"letter_spacing,optional"`
}
