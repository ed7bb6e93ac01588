package colreplace

import "fmt"

// ColumnAction rewrites a single field value.
type ColumnAction interface {
	Apply(field string) string
}

// Keep leaves the field untouched.
type Keep struct{}

// Apply returns field unchanged.
func (Keep) Apply(field string) string { return field }

// Replace overwrites the field with Value.
type Replace struct {
	Value string
}

// Apply returns the replacement value.
func (r Replace) Apply(string) string { return r.Value }

// Replacement pairs a header column name with the value written into it.
type Replacement struct {
	Column string
	Value  string
}

// Plan lists the columns to overwrite. When a column appears more than once the
// last entry wins.
type Plan []Replacement

// Single returns a Plan replacing one column.
func Single(column, value string) Plan {
	return Plan{{Column: column, Value: value}}
}

// Resolve maps every planned column onto the header and returns the per-index actions.
func (p Plan) Resolve(header []string) (map[int]ColumnAction, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("colreplace: empty replacement plan")
	}
	actions := make(map[int]ColumnAction, len(p))
	for _, rep := range p {
		idx, err := ColumnIndex(header, rep.Column)
		if err != nil {
			return nil, err
		}
		actions[idx] = Replace{Value: rep.Value}
	}
	return actions, nil
}

// Transformer applies one action per column to rows of a fixed width.
type Transformer struct {
	actions []ColumnAction
}

// NewTransformer builds a Transformer for rows of width fields. Columns without an
// entry in actions are kept. Indexes outside [0, width) are rejected.
func NewTransformer(width int, actions map[int]ColumnAction) (*Transformer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("colreplace: invalid row width %d", width)
	}
	t := &Transformer{actions: make([]ColumnAction, width)}
	for i := range t.actions {
		t.actions[i] = Keep{}
	}
	for idx, action := range actions {
		if idx < 0 || idx >= width {
			return nil, fmt.Errorf("colreplace: column index %d out of range [0,%d)", idx, width)
		}
		if action != nil {
			t.actions[idx] = action
		}
	}
	return t, nil
}

// Width returns the number of fields each row must have.
func (t *Transformer) Width() int {
	return len(t.actions)
}

// Apply rewrites fields in place. A row whose length differs from Width is left
// untouched and reported as a *RowError with Line unset.
func (t *Transformer) Apply(fields []string) error {
	if len(fields) != len(t.actions) {
		return &RowError{Got: len(fields), Want: len(t.actions)}
	}
	for i, action := range t.actions {
		fields[i] = action.Apply(fields[i])
	}
	return nil
}
