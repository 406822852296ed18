package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAccumulatesErrors(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(true, "title", "must be provided")
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	v.Check(false, "runtime", "must not be negative")

	assert.False(t, v.Valid())
	assert.Equal(t, "must be provided", v.Errors["title"])
	assert.Equal(t, "must not be negative", v.Errors["runtime"])
}

func TestAddErrorKeepsFirstMessage(t *testing.T) {
	v := New()

	v.AddError("title", "first")
	v.AddError("title", "second")

	assert.Equal(t, "first", v.Errors["title"])
}

func TestIn(t *testing.T) {
	assert.True(t, In("PG", "NR", "G", "PG"))
	assert.False(t, In("PG18", "NR", "G", "PG"))
}

func TestUnique(t *testing.T) {
	assert.True(t, Unique([]string{"a", "b", "c"}))
	assert.False(t, Unique([]string{"a", "b", "a"}))
}
