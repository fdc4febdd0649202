package validator

// Input pairs a value with the schema it must satisfy. Group labels every
// error the pair produces.
type Input struct {
	Value  any
	Schema *StringSchema
	Group  string
}

// ParseAll evaluates each input and merges the failures into one result.
// Every error's Path is overwritten with its input's Group. Errors keep input
// order, then per-input evaluation order. A valid result carries no value.
func ParseAll(inputs ...Input) Result[struct{}] {
	var errs ValidationErrors
	for _, in := range inputs {
		res := Evaluate(in.Schema, in.Value)
		if res.Valid {
			continue
		}
		errs = append(errs, res.Errors.WithPath(in.Group)...)
	}

	if len(errs) > 0 {
		return invalid[struct{}](errs)
	}
	return valid(struct{}{})
}
