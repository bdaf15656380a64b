package report

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

type fieldGetter func(model.Part) string

var valuationFields = map[string]fieldGetter{
	"sapNumber":    func(p model.Part) string { return p.SAPNumber },
	"name":         func(p model.Part) string { return p.Name },
	"category":     func(p model.Part) string { return p.Category },
	"internalRef":  func(p model.Part) string { return p.InternalRef },
	"currentStock": func(p model.Part) string { return strconv.FormatInt(p.CurrentStock, 10) },
}

var inquiryFields = map[string]fieldGetter{
	"name":        func(p model.Part) string { return p.Name },
	"sapNumber":   func(p model.Part) string { return p.SAPNumber },
	"internalRef": func(p model.Part) string { return p.InternalRef },
	"category":    func(p model.Part) string { return p.Category },
	"rackNumber":  func(p model.Part) string { return p.RackNumber },
	"rackLevel":   func(p model.Part) string { return p.RackLevel },
}

type matcher func(model.Part) bool

// compile turns field filters into a predicate. Filters with an empty value
// are ignored; with none left every part matches.
func compile(filters []model.FieldFilter, logic model.FilterLogic, fields map[string]fieldGetter) (matcher, error) {
	if logic == "" {
		logic = model.MatchAll
	}
	if logic != model.MatchAll && logic != model.MatchAny {
		return nil, listctl.Invalid("unknown filter logic %q", logic)
	}

	type clause struct {
		get  fieldGetter
		want string
	}
	clauses := make([]clause, 0, len(filters))
	for _, f := range filters {
		want := strings.ToLower(strings.TrimSpace(f.Value))
		if want == "" {
			continue
		}
		get, ok := fields[f.Field]
		if !ok {
			return nil, listctl.Invalid("unknown filter field %q", f.Field)
		}
		clauses = append(clauses, clause{get: get, want: want})
	}

	if len(clauses) == 0 {
		return func(model.Part) bool { return true }, nil
	}

	return func(p model.Part) bool {
		hit := func(c clause) bool { return strings.Contains(strings.ToLower(c.get(p)), c.want) }
		if logic == model.MatchAny {
			return lo.SomeBy(clauses, hit)
		}
		return lo.EveryBy(clauses, hit)
	}, nil
}
