package forwardlist

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the list as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Slice())
}

// UnmarshalJSON replaces the contents of l with the decoded array. On a
// decode error l is unchanged.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	l.replace(values)
	return nil
}

// MarshalYAML encodes the list as a YAML sequence.
func (l *List[T]) MarshalYAML() (interface{}, error) {
	return l.Slice(), nil
}

// UnmarshalYAML replaces the contents of l with the decoded sequence. On a
// decode error l is unchanged.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var values []T
	if err := value.Decode(&values); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	l.replace(values)
	return nil
}

func (l *List[T]) replace(values []T) {
	tmp := List[T]{releaser: l.releaser}
	tmp.fill(values)
	l.Swap(&tmp)
	tmp.Clear()
}
