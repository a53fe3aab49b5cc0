package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rustlay/cli/internal/errors"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSnake  string
		wantPascal string
	}{
		{"snake input", "user_profile", "user_profile", "UserProfile"},
		{"single word", "translations", "translations", "Translations"},
		{"hyphen folds into snake only", "Order-Item", "order_item", "Order-Item"},
		{"mixed case keeps remainder", "user_HTTPClient", "user_httpclient", "UserHTTPClient"},
		{"digits", "v2_api", "v2_api", "V2Api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := Derive(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, ctx.Raw)
			assert.Equal(t, tt.wantSnake, ctx.Snake)
			assert.Equal(t, tt.wantPascal, ctx.Pascal)
		})
	}
}

func TestDerive_Empty(t *testing.T) {
	_, err := Derive("")
	require.Error(t, err)
	assert.True(t, oerrors.Is(err, oerrors.ErrArgument))
}

func TestPascal_EmptySegments(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"__a__b_", "AB"},
		{"_leading", "Leading"},
		{"trailing_", "Trailing"},
		{"double__sep", "DoubleSep"},
		{"_", ""},
		{"___", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, Pascal(tt.raw))
			})
		})
	}
}

func TestSnake_MatchesRule(t *testing.T) {
	for _, raw := range []string{"user_profile", "Order-Item", "ABC", "a-b-c", "Mixed_Case-Name"} {
		want := strings.ToLower(strings.ReplaceAll(raw, "-", "_"))
		assert.Equal(t, want, Snake(raw), raw)
		assert.NotContains(t, Pascal(raw), "_", raw)
	}
}

func TestContext_Vars(t *testing.T) {
	ctx, err := Derive("user_profile")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"feature_name":            "user_profile",
		"snake_case_feature_name": "user_profile",
		"capitalize_feature_name": "UserProfile",
	}, ctx.Vars())
}
