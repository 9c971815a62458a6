package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Description Optional[string] `json:"description"`
	Completed   Optional[bool]   `json:"completed"`
}

func TestOptional_AbsentNullValue(t *testing.T) {
	var p patchBody
	require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &p))
	assert.True(t, p.Description.Set)
	assert.True(t, p.Description.Cleared())
	assert.False(t, p.Completed.Set)

	p = patchBody{}
	require.NoError(t, json.Unmarshal([]byte(`{"description":"x","completed":true}`), &p))
	assert.Equal(t, Some("x"), p.Description)
	assert.Equal(t, Some(true), p.Completed)
}

func TestOptional_TypeMismatch(t *testing.T) {
	var p patchBody
	err := json.Unmarshal([]byte(`{"completed":"yes"}`), &p)
	assert.Error(t, err)
}

func TestEmptyAsNull(t *testing.T) {
	assert.True(t, EmptyAsNull(Some("")).Cleared())
	assert.Equal(t, Some("a"), EmptyAsNull(Some("a")))
	assert.False(t, EmptyAsNull(Optional[string]{}).Set)
}
