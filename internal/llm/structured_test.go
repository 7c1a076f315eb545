package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type persona struct {
	Name    string `json:"name"`
	Profile string `json:"profile"`
}

func TestDecode_CleanJSON(t *testing.T) {
	raw := `{"name": "Sarah", "profile": "Overworked designer"}`

	got, err := Decode[persona](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Sarah", got.Name)
	assert.Equal(t, "Overworked designer", got.Profile)
}

func TestDecode_MarkdownFences(t *testing.T) {
	raw := "```json\n[{\"name\": \"Sarah\", \"profile\": \"Designer\"}]\n```"

	got, err := Decode[[]persona](raw, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah", got[0].Name)
}

func TestDecode_ProseWrappedJSON(t *testing.T) {
	raw := `Sure! Here are the personas you asked for:
[{"name": "Sarah", "profile": "Designer"}, {"name": "Mike", "profile": "Coder"}]
Let me know if you need more.`

	got, err := Decode[[]persona](raw, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDecode_BracesInStringsDoNotBreakExtraction(t *testing.T) {
	raw := `{"name": "Sarah {the \"closer\"}", "profile": "uses } and { freely"}`

	got, err := Decode[persona](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `Sarah {the "closer"}`, got.Name)
}

func TestDecode_NoJSONFound(t *testing.T) {
	_, err := Decode[persona]("I could not produce an answer.", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode[persona](`{"name": "Sarah", "profile":`, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestDecode_ValidatorFailure(t *testing.T) {
	raw := `{"name": "", "profile": "Designer"}`

	_, err := Decode[persona](raw, func(p persona) error {
		if p.Name == "" {
			return fmt.Errorf("persona missing name")
		}
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
	assert.Contains(t, err.Error(), "persona missing name")
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", errorCode(nil))
	assert.Equal(t, "QUOTA", errorCode(ErrQuotaExhausted))
	assert.Equal(t, "TIMEOUT", errorCode(fmt.Errorf("wrapped: %w", ErrTimeout)))
	assert.Equal(t, "INVALID_OUTPUT", errorCode(ErrInvalidOutput))
	assert.Equal(t, "UNAVAILABLE", errorCode(ErrUnavailable))
	assert.Equal(t, "UNKNOWN", errorCode(errors.New("something else")))
}
