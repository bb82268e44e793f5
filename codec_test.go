package forwardlist

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"gopkg.in/yaml.v3"
)

func TestJSONCodec(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		data, err := json.Marshal(Of(3, 1, 2))
		assert.NotError(t, err)
		check.Equal(t, "[3,1,2]", string(data))

		var l List[int]
		assert.NotError(t, json.Unmarshal(data, &l))
		assert.True(t, slices.Equal([]int{3, 1, 2}, l.Slice()))
	})

	t.Run("EmptyIsArray", func(t *testing.T) {
		data, err := json.Marshal(New[int]())
		assert.NotError(t, err)
		check.Equal(t, "[]", string(data))
	})

	t.Run("EmbeddedField", func(t *testing.T) {
		type doc struct {
			Items *List[string] `json:"items"`
		}
		var d doc
		assert.NotError(t, json.Unmarshal([]byte(`{"items":["a","b"]}`), &d))
		check.Equal(t, 2, d.Items.Size())
	})

	t.Run("BadInputKeepsContents", func(t *testing.T) {
		l := Of(1, 2)
		assert.Error(t, l.UnmarshalJSON([]byte(`["x"]`)))
		assert.True(t, slices.Equal([]int{1, 2}, l.Slice()))
	})
}

func TestYAMLCodec(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		data, err := yaml.Marshal(Of("a", "b"))
		assert.NotError(t, err)
		check.Equal(t, "- a\n- b\n", string(data))

		l := Of("z")
		assert.NotError(t, yaml.Unmarshal(data, l))
		assert.True(t, slices.Equal([]string{"a", "b"}, l.Slice()))
	})

	t.Run("EmbeddedField", func(t *testing.T) {
		type doc struct {
			Items *List[int] `yaml:"items"`
		}
		var d doc
		assert.NotError(t, yaml.Unmarshal([]byte("items: [4, 5, 6]\n"), &d))
		assert.True(t, slices.Equal([]int{4, 5, 6}, d.Items.Slice()))
	})

	t.Run("BadInputKeepsContents", func(t *testing.T) {
		l := Of(1)
		assert.Error(t, yaml.Unmarshal([]byte("{a: 1}"), l))
		assert.True(t, slices.Equal([]int{1}, l.Slice()))
	})
}
