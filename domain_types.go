package finskema

// Refinement is a whole-object predicate evaluated after every field passed.
// Check sees canonical values (dates as ISO text, numbers as decimals) and
// reports false on violation; the issue is attached to Path even when Check
// reads other fields.
//
// When Message is empty the message is rendered from the catalogue using
// Code and Params; Params["variant"] selects a template such as
// "business_rule.not_before".
type Refinement struct {
	Name    string // Stable rule name, copied into Issue.Rule.
	Path    string // JSON Pointer of the field the violation is reported against.
	Code    string // Defaults to CodeBusinessRule.
	Message string
	Params  map[string]string
	Check   func(Values) bool
}

// Issue builds the issue reported when the refinement fails. Message is
// left as declared.
func (r Refinement) Issue() Issue {
	code := r.Code
	if code == "" {
		code = CodeBusinessRule
	}
	params := map[string]any{"rule": r.Name}
	for k, v := range r.Params {
		if k != "variant" {
			params[k] = v
		}
	}
	return Issue{Path: r.Path, Code: code, Message: r.Message, Rule: r.Name, Params: params}
}

// MessageData returns the template data for the refinement's message:
// Params plus the rule name.
func (r Refinement) MessageData() map[string]string {
	data := make(map[string]string, len(r.Params)+1)
	for k, v := range r.Params {
		data[k] = v
	}
	data["rule"] = r.Name
	return data
}

// Operation indicates the high-level request intent for validation.
type Operation uint8

const (
	OpCreate Operation = iota
	OpUpdate
)

func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// ParseOperation maps "create"/"update" to an Operation.
func ParseOperation(s string) (Operation, bool) {
	switch s {
	case "create", "":
		return OpCreate, true
	case "update":
		return OpUpdate, true
	}
	return 0, false
}
