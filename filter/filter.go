// Package filter compiles user-supplied expressions for narrowing
// search results and watchlist listings, e.g.
//
//	Year > 2010 and contains(Title, "matrix")
//	daysSince(AddedAt) < 30
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nkfelic1/flickwatch/omdb"
	"github.com/nkfelic1/flickwatch/watchlist"
)

// Filter is a compiled expression that evaluates against one record at
// a time. Evaluation errors count as a non-match rather than aborting
// the listing.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile validates and compiles an expression.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // record fields are injected at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original expression text.
func (f *Filter) Expression() string {
	return f.expression
}

// MatchSummary evaluates the filter against a search result.
func (f *Filter) MatchSummary(s omdb.Summary) bool {
	return f.match(map[string]any{
		"ImdbID": s.ImdbID,
		"Title":  s.Title,
		"Year":   s.Year,
		"Poster": s.Poster,
	})
}

// MatchEntry evaluates the filter against a watchlist entry.
func (f *Filter) MatchEntry(e watchlist.Entry) bool {
	return f.match(map[string]any{
		"ImdbID":  e.ImdbID,
		"Title":   e.Title,
		"Year":    e.Year,
		"Poster":  e.Poster,
		"AddedAt": e.AddedAt,
	})
}

func (f *Filter) match(fields map[string]any) bool {
	env := helperFunctions()
	for k, v := range fields {
		env[k] = v
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// AsBool() at compile time guarantees the assertion
	return result.(bool)
}

// helperFunctions builds the functions available inside expressions.
func helperFunctions() map[string]any {
	env := make(map[string]any, 8)

	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}

	return env
}
