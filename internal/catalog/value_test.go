package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValue(t *testing.T) {
	c := Default()
	likert, err := c.Lookup("psych1")
	require.NoError(t, err)
	choice, err := c.Lookup("tech2")
	require.NoError(t, err)

	tests := []struct {
		name    string
		q       Question
		v       Value
		wantErr bool
	}{
		{"likert min", likert, LikertValue(1), false},
		{"likert max", likert, LikertValue(5), false},
		{"likert zero", likert, LikertValue(0), true},
		{"likert six", likert, LikertValue(6), true},
		{"likert given choice", likert, ChoiceValue("Agree"), true},
		{"likert nil", likert, nil, true},
		{"choice option", choice, ChoiceValue("Good creditworthiness"), false},
		{"choice not option", choice, ChoiceValue("good creditworthiness"), true},
		{"choice given likert", choice, LikertValue(3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckValue(tt.q, tt.v)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedAnswer)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseValue(t *testing.T) {
	c := Default()
	likert, _ := c.Lookup("will1")
	scenario, _ := c.Lookup("realworld2")

	v, err := ParseValue(likert, " 4 ")
	require.NoError(t, err)
	assert.Equal(t, LikertValue(4), v)

	_, err = ParseValue(likert, "four")
	require.ErrorIs(t, err, ErrMalformedAnswer)

	_, err = ParseValue(likert, "9")
	require.ErrorIs(t, err, ErrMalformedAnswer)

	v, err = ParseValue(scenario, "Delegate to junior staff")
	require.NoError(t, err)
	assert.Equal(t, ChoiceValue("Delegate to junior staff"), v)

	_, err = ParseValue(scenario, "Delegate")
	require.ErrorIs(t, err, ErrMalformedAnswer)
}
