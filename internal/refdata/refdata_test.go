package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashtagsForEveryNiche(t *testing.T) {
	for _, niche := range Niches() {
		t.Run(niche, func(t *testing.T) {
			tags, ok := Hashtags(niche)
			require.True(t, ok)
			require.NotEmpty(t, tags)
			for _, tag := range tags {
				assert.True(t, strings.HasPrefix(tag, "#"), tag)
				assert.Greater(t, len(tag), 1)
			}
		})
	}

	_, ok := Hashtags("underwater")
	assert.False(t, ok)
}

func TestTopHashtags(t *testing.T) {
	assert.Len(t, TopHashtags("wedding", 10), 10)
	assert.Len(t, TopHashtags("wedding", 100), 15)
	assert.Empty(t, TopHashtags("wedding", 0))
	assert.Equal(t, []string{}, TopHashtags("underwater", 10))
}

func TestAccessorsReturnCopies(t *testing.T) {
	tags, _ := Hashtags("portrait")
	tags[0] = "mutated"

	again, _ := Hashtags("portrait")
	assert.Equal(t, "#portraitphotography", again[0])

	all := AllTips()
	all["lighting"][0] = "mutated"
	lighting, _ := Tips("lighting")
	assert.NotEqual(t, "mutated", lighting[0])
}

func TestTablesAreConsistent(t *testing.T) {
	assert.Len(t, Niches(), 6)
	for _, c := range TipCategories() {
		_, ok := Tips(c)
		assert.True(t, ok, c)
	}
	for _, c := range MixCategories() {
		_, ok := MixIdeas(c)
		assert.True(t, ok, c)
		assert.NotEmpty(t, MixContentType(c))
	}
	assert.Len(t, Months(), 12)
	for _, m := range Months() {
		_, ok := Seasonal(m)
		assert.True(t, ok, m)
	}
	_, ok := Seasonal("October")
	assert.True(t, ok)
	assert.Equal(t, "baby shower", NicheLabel("baby_shower"))
}
