package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAppliesDefaults(t *testing.T) {
	set, err := Validate(Set{
		Name: "git",
		Items: []Item{
			{ID: "1", Prompt: "p", Answer: "a", Aliases: []string{"b", "b", "c"}, Tags: []string{"x", "x"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, set.Language)
	assert.Equal(t, 0, set.Version)
	assert.Equal(t, []string{"b", "c"}, set.Items[0].Aliases)
	assert.Equal(t, []string{"x"}, set.Items[0].Tags)
}

func TestValidateKeepsLanguage(t *testing.T) {
	set, err := Validate(Set{Name: "nl", Language: "nl", Items: []Item{{ID: "1", Prompt: "p", Answer: "a"}}})
	require.NoError(t, err)
	assert.Equal(t, "nl", set.Language)
}

func TestValidateRejectsEmptySet(t *testing.T) {
	_, err := Validate(Set{Name: "empty"})
	require.ErrorIs(t, err, ErrNoItems)
}

func TestValidateReportsAllProblems(t *testing.T) {
	_, err := Validate(Set{
		Items: []Item{
			{ID: "1", Prompt: "p", Answer: "a"},
			{ID: "1", Prompt: "", Answer: " "},
			{Prompt: "p", Answer: "a"},
		},
	})
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "name must not be empty")
	assert.Contains(t, msg, `item 2: duplicate id "1"`)
	assert.Contains(t, msg, "item 2: prompt must not be empty")
	assert.Contains(t, msg, "item 2: answer must not be empty")
	assert.Contains(t, msg, "item 3: id must not be empty")
}

func TestSetTags(t *testing.T) {
	set := Set{Items: []Item{
		{Tags: []string{"basics", "status"}},
		{Tags: []string{"basics", "branch"}},
	}}
	assert.Equal(t, []string{"basics", "status", "branch"}, set.Tags())
}
