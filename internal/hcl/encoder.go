package hcl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Encode renders m in canonical form. Map keys are written in sorted order
// and empty collections are omitted, so encoding is deterministic.
func (l *Loader) Encode(m *config.Model) ([]byte, error) {
	if l.json {
		return encodeJSON(m)
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if len(m.Content) > 0 {
		body.SetAttributeValue("content", stringList(m.Content))
	}

	ext := m.Theme.Extend
	if len(ext.Colors) > 0 || len(ext.LetterSpacing) > 0 {
		body.AppendNewline()
		theme := body.AppendNewBlock("theme", nil).Body()
		extend := theme.AppendNewBlock("extend", nil).Body()
		if len(ext.Colors) > 0 {
			extend.SetAttributeValue("colors", stringObject(ext.Colors))
		}
		if len(ext.LetterSpacing) > 0 {
			extend.SetAttributeValue("letter_spacing", stringObject(ext.LetterSpacing))
		}
	}

	if len(m.Plugins) > 0 {
		body.AppendNewline()
		body.SetAttributeValue("plugins", stringList(m.Plugins))
	}

	return hclwrite.Format(f.Bytes()), nil
}

// encodeJSON renders m using HCL's JSON syntax, where the theme block is a
// nested object. Strings need no template escaping because the loader
// evaluates without an EvalContext, which makes JSON strings verbatim.
func encodeJSON(m *config.Model) ([]byte, error) {
	attrs := make(map[string]cty.Value)
	if len(m.Content) > 0 {
		attrs["content"] = stringList(m.Content)
	}
	ext := m.Theme.Extend
	if len(ext.Colors) > 0 || len(ext.LetterSpacing) > 0 {
		extend := make(map[string]cty.Value)
		if len(ext.Colors) > 0 {
			extend["colors"] = stringObject(ext.Colors)
		}
		if len(ext.LetterSpacing) > 0 {
			extend["letter_spacing"] = stringObject(ext.LetterSpacing)
		}
		attrs["theme"] = cty.ObjectVal(map[string]cty.Value{"extend": cty.ObjectVal(extend)})
	}
	if len(m.Plugins) > 0 {
		attrs["plugins"] = stringList(m.Plugins)
	}

	raw, err := ctyjson.SimpleJSONValue{Value: cty.ObjectVal(attrs)}.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func stringList(items []string) cty.Value {
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}

func stringObject(items map[string]string) cty.Value {
	vals := make(map[string]cty.Value, len(items))
	for k, v := range items {
		vals[k] = cty.StringVal(v)
	}
	return cty.ObjectVal(vals)
}
