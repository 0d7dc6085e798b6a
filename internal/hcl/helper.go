package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/tailgrid/internal/ctxlog"
)

// isExprDefined reports whether an attribute was actually written in the
// source. For omitted optional attributes gohcl fills in a placeholder
// expression with a zero-width range, so a nil check is not enough. An
// explicit null counts as omitted.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return false
	}

	r := expr.Range()
	isDefined := r.End.Byte > r.Start.Byte
	if isDefined {
		// The JSON syntax reports the closing brace as the placeholder's
		// range, so a null value is treated as omitted as well.
		if val, diags := expr.Value(nil); !diags.HasErrors() && val.IsNull() {
			isDefined = false
		}
	}

	logger.Debug("Checked whether attribute was declared.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// position renders the start of a range as file:line:column.
func position(r hcl.Range) string {
	return fmt.Sprintf("%s:%d:%d", r.Filename, r.Start.Line, r.Start.Column)
}

// errorDiag builds a single error diagnostic pointing at subject.
func errorDiag(summary, detail string, subject hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  subject.Ptr(),
	}
}
