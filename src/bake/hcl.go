package bake

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// EncodeHCL serializes the document as docker-bake.hcl. Blocks are emitted
// in sorted name order, matching the JSON form's determinism.
func (f *File) EncodeHCL() []byte {
	out := hclwrite.NewEmptyFile()
	body := out.Body()

	for _, name := range sortedKeys(f.Group) {
		b := body.AppendNewBlock("group", []string{name}).Body()
		b.SetAttributeValue("targets", ctyStrings(f.Group[name].Targets))
		body.AppendNewline()
	}

	for _, name := range sortedKeys(f.Target) {
		t := f.Target[name]
		b := body.AppendNewBlock("target", []string{name}).Body()
		if len(t.Inherits) > 0 {
			b.SetAttributeValue("inherits", ctyStrings(t.Inherits))
		}
		if t.Context != "" {
			b.SetAttributeValue("context", cty.StringVal(t.Context))
		}
		if t.Dockerfile != "" {
			b.SetAttributeValue("dockerfile", cty.StringVal(t.Dockerfile))
		}
		if len(t.Args) > 0 {
			b.SetAttributeValue("args", ctyStringMap(t.Args))
		}
		if len(t.Tags) > 0 {
			b.SetAttributeValue("tags", ctyStrings(t.Tags))
		}
		if len(t.CacheFrom) > 0 {
			b.SetAttributeValue("cache-from", ctyStrings(t.CacheFrom))
		}
		if len(t.CacheTo) > 0 {
			b.SetAttributeValue("cache-to", ctyStrings(t.CacheTo))
		}
		body.AppendNewline()
	}

	return out.Bytes()
}

func ctyStrings(ss []string) cty.Value {
	if len(ss) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(ss))
	for _, s := range ss {
		vals = append(vals, cty.StringVal(s))
	}
	return cty.ListVal(vals)
}

func ctyStringMap(m map[string]string) cty.Value {
	if len(m) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	vals := make(map[string]cty.Value, len(m))
	for k, v := range m {
		vals[k] = cty.StringVal(v)
	}
	return cty.MapVal(vals)
}
