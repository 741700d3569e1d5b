package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparatorFaultWalkthrough(t *testing.T) {
	err := comparatorFaultWalkthrough()
	assert.ErrorIs(t, err, errUnordered)
	assert.Contains(t, err.Error(), "failed to sort readings")
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("ARRAYS_TEST_KEY", "")
	assert.Equal(t, "fallback", getEnvOrDefault("ARRAYS_TEST_KEY", "fallback"))

	t.Setenv("ARRAYS_TEST_KEY", "set")
	assert.Equal(t, "set", getEnvOrDefault("ARRAYS_TEST_KEY", "fallback"))
}

func TestMemberString(t *testing.T) {
	m := &member{Name: "Alice", Skills: []string{"go", "sql"}}
	assert.Equal(t, "Alice[go sql]", m.String())
}
