package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("", "anything"))
	assert.True(t, ContainsFold("", ""))
	assert.True(t, ContainsFold("ser", "University Services"))
	assert.True(t, ContainsFold("SERVICES", "university services"))
	assert.True(t, ContainsFold("خدمة", "طلب خدمة جديدة"))
	assert.False(t, ContainsFold("clubs", "University Services"))

	// Any matching field is enough.
	assert.True(t, ContainsFold("x", "abc", "xyz"))
	assert.False(t, ContainsFold("q", "abc", "xyz"))
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, MatchesFilter("active", "all"))
	assert.True(t, MatchesFilter("active", ""))
	assert.True(t, MatchesFilter("active", "active"))
	assert.False(t, MatchesFilter("active", "inactive"))
	// Equality is exact, not substring.
	assert.False(t, MatchesFilter("inactive", "active"))
}

func TestStoreFilter(t *testing.T) {
	assert.Equal(t, "", StoreFilter("all"))
	assert.Equal(t, "", StoreFilter(""))
	assert.Equal(t, "active", StoreFilter("active"))
}

func TestCompactList(t *testing.T) {
	assert.Equal(t, []string{"doc1"}, CompactList([]string{"", "doc1", ""}))
	assert.Equal(t, []string{"a", "b"}, CompactList([]string{" a ", "  ", "b"}))
	assert.Empty(t, CompactList(nil))
	assert.Empty(t, CompactList([]string{"", " "}))
}
