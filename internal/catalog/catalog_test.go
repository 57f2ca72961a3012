package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SectionSizes(t *testing.T) {
	c := Default()

	assert.Equal(t, 26, c.Len())
	assert.Equal(t, 8, c.SectionSize(SectionPsychometric))
	assert.Equal(t, 6, c.SectionSize(SectionTechnical))
	assert.Equal(t, 12, c.SectionSize(SectionWiscar))
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestQuestionsIn_DeclarationOrder(t *testing.T) {
	qs := Default().QuestionsIn(SectionTechnical)
	ids := make([]string, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"tech1", "tech2", "tech3", "tech4", "tech5", "tech6"}, ids)
}

func TestQuestionsIn_ReturnsCopy(t *testing.T) {
	c := Default()
	qs := c.QuestionsIn(SectionPsychometric)
	qs[0].Text = "mutated"

	q, err := c.Lookup("psych1")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", q.Text)
}

func TestLookup(t *testing.T) {
	c := Default()

	q, err := c.Lookup("realworld1")
	require.NoError(t, err)
	assert.Equal(t, KindScenario, q.Kind)
	assert.Equal(t, SectionWiscar, q.Section)
	assert.InDelta(t, 1.3, q.Weight, 1e-9)

	_, err = c.Lookup("nope")
	require.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestAt(t *testing.T) {
	c := Default()

	q, ok := c.At(SectionWiscar, 0)
	require.True(t, ok)
	assert.Equal(t, "will1", q.ID)

	_, ok = c.At(SectionWiscar, 12)
	assert.False(t, ok)
	_, ok = c.At(SectionTechnical, -1)
	assert.False(t, ok)
}

func TestCorrectAnswer(t *testing.T) {
	c := Default()

	a, ok := c.CorrectAnswer("tech3")
	require.True(t, ok)
	assert.Equal(t, "30", a)

	_, ok = c.CorrectAnswer("psych1")
	assert.False(t, ok)
}

func TestScenarioScore(t *testing.T) {
	c := Default()

	tests := []struct {
		id, option string
		want       int
	}{
		{"realworld1", "Investigate further to confirm before reporting", 100},
		{"realworld1", "Immediately report it to your supervisor", 85},
		{"realworld1", "Wait to see if others notice it", 20},
		{"realworld2", "Provide a preliminary assessment only", 70},
		{"realworld2", "Delegate to junior staff", 30},
		{"realworld1", "Something unexpected", NeutralScenarioScore},
		{"tech1", "To set interest rates", NeutralScenarioScore},
	}
	for _, tt := range tests {
		t.Run(tt.id+"/"+tt.option, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ScenarioScore(tt.id, tt.option))
		})
	}
}

func TestQuestionInvariants(t *testing.T) {
	for _, q := range Default().All() {
		if q.Kind == KindLikert {
			assert.Empty(t, q.Options, q.ID)
		} else {
			assert.NotEmpty(t, q.Options, q.ID)
		}
		if q.Section == SectionWiscar {
			_, ok := q.Dimension()
			assert.True(t, ok, q.ID)
		}
	}
}

func TestEachDimensionHasQuestions(t *testing.T) {
	counts := map[Dimension]int{}
	for _, q := range Default().QuestionsIn(SectionWiscar) {
		d, _ := q.Dimension()
		counts[d]++
	}
	for _, d := range AllDimensions() {
		assert.Equal(t, 2, counts[d], string(d))
	}
}

func TestSectionText(t *testing.T) {
	assert.Equal(t, "Technical Knowledge", SectionTechnical.Title())
	assert.Equal(t, "Comprehensive framework analysis", SectionWiscar.Description())
	assert.Equal(t, "Real-World", DimensionRealWorld.Label())

	s, ok := ParseSection("wiscar")
	require.True(t, ok)
	assert.Equal(t, SectionWiscar, s)
	_, ok = ParseSection("intro")
	assert.False(t, ok)
}
