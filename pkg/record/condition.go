package record

// Condition is one entry of a flattened WHERE clause. Comparisons carry an
// operator, a field and a value; connectors carry only And or Or.
type Condition struct {
	Operator Operator `json:"operator"        yaml:"operator"`
	Field    Symbol   `json:"field,omitzero"  yaml:"field,omitempty"`
	Value    Value    `json:"value,omitzero"  yaml:"value,omitempty"`
}

// Comparison returns the record for "field op value".
func Comparison(op Operator, field Symbol, value Value) Condition {
	return Condition{Operator: op, Field: field, Value: value}
}

// Connector returns the record for an AND/OR joiner.
func Connector(op Operator) Condition {
	return Condition{Operator: op}
}

// IsConnector reports whether c joins two comparisons.
func (c Condition) IsConnector() bool {
	return c.Operator.IsConnector()
}

// String returns the SQL text of c.
func (c Condition) String() string {
	if c.IsConnector() {
		return c.Operator.String()
	}

	return c.Field.String() + " " + c.Operator.String() + " " + c.Value.String()
}
