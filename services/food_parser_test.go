package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/lexicon"
	"backend/models"
)

func TestFoodParserNumericAndContainerQuantities(t *testing.T) {
	p := NewFoodParser(lexicon.New())

	mentions := p.Extract("I ate two rotis and a bowl of dal")
	require.Len(t, mentions, 2)

	assert.Equal(t, models.FoodMention{FoodName: "rotis", Quantity: 2, Unit: "serving"}, mentions[0])
	assert.Equal(t, models.FoodMention{FoodName: "dal", Quantity: 1, Unit: "bowls"}, mentions[1])
}

func TestFoodParserNumeralWithUnit(t *testing.T) {
	p := NewFoodParser(lexicon.New())

	mentions := p.Extract("had 2 slices of pizza")
	require.Len(t, mentions, 1)
	assert.Equal(t, "pizza", mentions[0].FoodName)
	assert.Equal(t, 2.0, mentions[0].Quantity)
	assert.Equal(t, "slices", mentions[0].Unit)
}

func TestFoodParserContainerWithNumeral(t *testing.T) {
	p := NewFoodParser(lexicon.New())

	mentions := p.Extract("2 plates of fried rice")
	require.Len(t, mentions, 1)
	assert.Equal(t, "fried rice", mentions[0].FoodName)
	assert.Equal(t, 2.0, mentions[0].Quantity)
	assert.Equal(t, "plates", mentions[0].Unit)
}

func TestFoodParserQualitativeQuantities(t *testing.T) {
	p := NewFoodParser(lexicon.New())

	tests := []struct {
		transcript string
		quantity   float64
	}{
		{"couple of rotis", 2},
		{"few dumplings", 3},
		{"had some dal", 0.5},
		{"a full plate of biryani", 1},
		{"an idli", 1},
	}

	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			mentions := p.Extract(tt.transcript)
			require.Len(t, mentions, 1)
			assert.Equal(t, tt.quantity, mentions[0].Quantity)
		})
	}
}

func TestFoodParserRejectsWorkoutClauses(t *testing.T) {
	p := NewFoodParser(lexicon.New())

	assert.Empty(t, p.Extract("went for a run"))
	assert.Empty(t, p.Extract("did yoga for an hour"))
}

func TestFoodParserRejectsUnknownFood(t *testing.T) {
	p := NewFoodParser(lexicon.New())

	assert.Empty(t, p.Extract("i had 2 xyzfood"))
	assert.Empty(t, p.Extract("just talking about the weather"))
}

func TestFoodParserMixedTranscriptKeepsFoodClausesOnly(t *testing.T) {
	p := NewFoodParser(lexicon.New())

	mentions := p.Extract("i had an idli, then ran for 30 minutes")
	require.Len(t, mentions, 1)
	assert.Equal(t, "idli", mentions[0].FoodName)
	assert.Equal(t, 1.0, mentions[0].Quantity)
}

func TestFoodParserQualifierExtendsName(t *testing.T) {
	p := NewFoodParser(lexicon.New())

	mentions := p.Extract("dal fry for lunch")
	require.Len(t, mentions, 1)
	assert.Equal(t, "dal fry", mentions[0].FoodName)
}

func TestFoodParserBareStatement(t *testing.T) {
	p := NewFoodParser(lexicon.New())

	mentions := p.Extract("i'm eating pasta")
	require.Len(t, mentions, 1)
	assert.Equal(t, "pasta", mentions[0].FoodName)
	assert.Equal(t, 1.0, mentions[0].Quantity)
	assert.Equal(t, "serving", mentions[0].Unit)
}
