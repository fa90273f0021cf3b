package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSpeaker_CreationOnFirstUse(t *testing.T) {
	c := New("c")
	a := c.AddSpeaker("A")
	require.NotNil(t, a)
	assert.Equal(t, "A", a.ID)
	assert.Same(t, a, c.AddSpeaker("A"), "second lookup returns the same object")
	assert.Same(t, a, c.Speaker("A"))
	assert.Nil(t, c.Speaker("B"))
}

func TestAddDialogue_DuplicateID(t *testing.T) {
	c := New("c")
	_, err := c.AddDialogue("d1", "g")
	require.NoError(t, err)
	_, err = c.AddDialogue("d1", "g")
	require.Error(t, err)
}

func TestAddSent_NumberingAndIndex(t *testing.T) {
	c := New("c")
	d, err := c.AddDialogue("d1", "g")
	require.NoError(t, err)
	spk := c.AddSpeaker("A")
	turn := c.AddTurn(d, spk)

	s1, err := c.AddSent(d, turn, "first", nil)
	require.NoError(t, err)
	s2, err := c.AddSent(d, turn, "second", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, s1.Num)
	assert.Equal(t, 2, s2.Num)
	assert.Equal(t, "d1:1", s1.ID)
	assert.Equal(t, "d1:2", s2.ID)
	assert.Same(t, s2, c.SentenceByID("d1:2"))
	assert.False(t, s1.HasSyntax())
	assert.False(t, s1.HasSyntaxProb(), "new sentences carry no score")
}

func TestSanityCheck(t *testing.T) {
	c := New("c")
	require.Error(t, c.SanityCheck(), "empty corpus fails")

	d, err := c.AddDialogue("d1", "g")
	require.NoError(t, err)
	require.Error(t, c.SanityCheck(), "dialogue without turns fails")

	spk := c.AddSpeaker("A")
	turn := c.AddTurn(d, spk)
	require.Error(t, c.SanityCheck(), "empty turn fails")

	_, err = c.AddSent(d, turn, "hello", nil)
	require.NoError(t, err)
	require.NoError(t, c.SanityCheck())
}

func TestTreeString(t *testing.T) {
	tr := &Tree{Label: "S", Children: []*Tree{
		{Label: "NP", Children: []*Tree{{Label: "dogs"}}},
		{Label: "VP", Children: []*Tree{{Label: "bark"}}},
	}}
	assert.Equal(t, "(S (NP dogs) (VP bark))", tr.String())
	assert.True(t, tr.Children[0].Children[0].Leaf())
}
