package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axento/books/internal/ingest"
)

func TestDecodeClassification_PlainJSON(t *testing.T) {
	got, err := decodeClassification(`{"type":"expense","category":"Software","confidence":0.92}`)
	require.NoError(t, err)
	assert.Equal(t, ingest.TypeExpense, got.Type)
	assert.Equal(t, "Software", got.Category)
	assert.Equal(t, 0.92, got.Confidence)
}

func TestDecodeClassification_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"type\": \"income\", \"category\": \"Sales\", \"confidence\": 0.8}\n```"
	got, err := decodeClassification(raw)
	require.NoError(t, err)
	assert.Equal(t, ingest.TypeIncome, got.Type)
	assert.Equal(t, "Sales", got.Category)
}

func TestDecodeClassification_SurroundingProse(t *testing.T) {
	raw := "Here is the classification:\n{\"type\":\"expense\",\"category\":\"Travel\",\"confidence\":0.7}\nHope that helps!"
	got, err := decodeClassification(raw)
	require.NoError(t, err)
	assert.Equal(t, "Travel", got.Category)
}

func TestDecodeClassification_Rejects(t *testing.T) {
	_, err := decodeClassification("not json at all")
	assert.Error(t, err)

	_, err = decodeClassification(`{"type":"transfer","category":"X","confidence":0.5}`)
	assert.Error(t, err)

	_, err = decodeClassification("")
	assert.Error(t, err)
}

func TestCleanModelJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
		{"noise {\"a\":1} noise", `{"a":1}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cleanModelJSON(tc.in), tc.in)
	}
}
