// Package hcl provides the HCL implementation of the config.Loader and
// config.Encoder interfaces. It parses native HCL and HCL's JSON syntax with
// the same schema, translates both into config.Model, and renders a Model
// back into canonical HCL or JSON.
//
// Maps are read through hcl.ExprMap rather than by evaluating the object, so
// a key written twice is reported with both source locations instead of the
// later value silently winning.
package hcl
