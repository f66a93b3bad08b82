package availability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name    string
		payload any
		want    bool
	}{
		{"bool flag", map[string]any{"available": true}, true},
		{"bool flag false", map[string]any{"available": false}, false},
		{"zero inventory", map[string]any{"inventory": float64(0)}, false},
		{"positive inventory", map[string]any{"inventory": float64(3)}, true},
		{"negative inventory", map[string]any{"inventory": float64(-1)}, false},
		{"string match", map[string]any{"vacancy": "AVAILABLE"}, true},
		{"string mismatch", map[string]any{"vacancy": "sold out"}, false},
		{"uppercase key", map[string]any{"Availability": true}, true},
		{"unrelated keys", map[string]any{"rooms": float64(5), "name": "suite"}, false},
		{"nil payload", nil, false},
		{"empty object", map[string]any{}, false},
		{"empty list", []any{}, false},
		{"bare scalar", "available", false},
		{
			"nested in list",
			map[string]any{"a": map[string]any{"b": []any{map[string]any{"vacancy": "AVAILABLE"}}}},
			true,
		},
		{
			"nested under matched key",
			map[string]any{"availability": map[string]any{"inventory": float64(2)}},
			true,
		},
		{
			"list of days",
			[]any{
				map[string]any{"date": "2026-09-01", "inventory": float64(0)},
				map[string]any{"date": "2026-09-02", "inventory": float64(1)},
			},
			true,
		},
		{
			"null under matched key",
			map[string]any{"available": nil},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(tc.payload))
		})
	}
}

func TestDetectDecodedJSON(t *testing.T) {
	raw := `{
		"rooms": [
			{"id": 633845, "calendar": {"2026-09-01": {"inventories": 0}}},
			{"id": 633846, "calendar": {"2026-09-02": {"inventories": 1}}}
		]
	}`
	var payload any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.True(t, Detect(payload))
}

func TestDetectJSONNumber(t *testing.T) {
	assert.True(t, Detect(map[string]any{"inventory": json.Number("2")}))
	assert.False(t, Detect(map[string]any{"inventory": json.Number("0")}))
	assert.False(t, Detect(map[string]any{"inventory": json.Number("not a number")}))
}
