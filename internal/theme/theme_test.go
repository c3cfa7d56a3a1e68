package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"light", ModeLight, false},
		{"dark", ModeDark, false},
		{"sepia", "", true},
		{"Dark", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokensDefineBothModes(t *testing.T) {
	tokens := map[string][2]string{
		"Background":        {Background.Light, Background.Dark},
		"Text":              {Text.Light, Text.Dark},
		"Card":              {Card.Light, Card.Dark},
		"SubCard":           {SubCard.Light, SubCard.Dark},
		"CardBorder":        {CardBorder.Light, CardBorder.Dark},
		"ProgressFirst":     {ProgressFirst.Light, ProgressFirst.Dark},
		"ProgressSecond":    {ProgressSecond.Light, ProgressSecond.Dark},
		"IconButton":        {IconButton.Light, IconButton.Dark},
		"IconButtonBack":    {IconButtonBack.Light, IconButtonBack.Dark},
		"SmallLink":         {SmallLink.Light, SmallLink.Dark},
		"ChartLink":         {ChartLink.Light, ChartLink.Dark},
		"ChartSelectedLink": {ChartSelectedLink.Light, ChartSelectedLink.Dark},
	}

	for name, pair := range tokens {
		assert.Regexp(t, `^#[0-9a-fA-F]{6}$`, pair[0], "%s light", name)
		assert.Regexp(t, `^#[0-9a-fA-F]{6}$`, pair[1], "%s dark", name)
	}
}

func TestOpaqueApproximations(t *testing.T) {
	// the dark border has to stay visible against the dark card
	assert.NotEqual(t, Card.Dark, CardBorder.Dark)
	assert.NotEqual(t, Background.Dark, CardBorder.Dark)

	// 5% black over white, and opaque black
	assert.Equal(t, "#f2f2f2", ProgressBackground.Light)
	assert.Equal(t, "#000000", ProgressBackground.Dark)
}
