package cli

import (
	"github.com/yaklabco/occur/pkg/config"
	"github.com/yaklabco/occur/pkg/queryrange"
	"github.com/yaklabco/occur/pkg/textcase"
)

// caseFunc maps a configured case transform to its function. The zero
// transform maps to nil, meaning "leave the polarity untouched".
func caseFunc(c config.CaseTransform) queryrange.TransformFunc {
	switch c {
	case config.CaseUpper:
		return textcase.Upper
	case config.CaseLower:
		return textcase.Lower
	case config.CaseTitle:
		return textcase.Title
	default:
		return nil
	}
}

// constantFunc returns a transform that replaces every segment with the
// given literal.
func constantFunc(literal string) queryrange.TransformFunc {
	return func(string) string { return literal }
}

// rewriteFuncs resolves the match and gap transforms from configuration.
// A non-empty Replace literal overrides MatchCase.
func rewriteFuncs(rw config.RewriteConfig) (matchFn, gapFn queryrange.TransformFunc) {
	if rw.Replace != "" {
		matchFn = constantFunc(rw.Replace)
	} else {
		matchFn = caseFunc(rw.MatchCase)
	}
	return matchFn, caseFunc(rw.GapCase)
}
