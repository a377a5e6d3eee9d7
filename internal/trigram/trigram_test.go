package trigram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_PostingLists(t *testing.T) {
	index := Build([]string{"Iron Ingot", "Gold Ingot"})

	assert.Equal(t, []int{0}, index["iro"])
	assert.Equal(t, []int{0, 1}, index["ing"])
	assert.Equal(t, []int{1}, index["gol"])
}

func TestBuild_Lowercases(t *testing.T) {
	index := Build([]string{"IRON"})

	assert.Contains(t, index, "iro")
	assert.NotContains(t, index, "IRO")
}

func TestBuild_DeduplicatesWithinName(t *testing.T) {
	// "aaaa" contains "aaa" twice but must post position 0 only once.
	index := Build([]string{"aaaa"})

	assert.Equal(t, []int{0}, index["aaa"])
}

func TestBuild_SkipsShortNames(t *testing.T) {
	index := Build([]string{"ab", "", "Tin"})

	assert.Len(t, index, 1)
	assert.Equal(t, []int{2}, index["tin"])
}

func TestExtract(t *testing.T) {
	assert.Equal(t, []string{"iro", "ron"}, Extract("iron"))
	assert.Equal(t, []string{"tin"}, Extract("tin"))
	assert.Nil(t, Extract("ab"))
}

func TestExtract_KeepsDuplicates(t *testing.T) {
	// Repeated trigrams count once per occurrence when scoring.
	assert.Equal(t, []string{"aaa", "aaa"}, Extract("aaaa"))
}
