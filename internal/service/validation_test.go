package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/domain"
)

func TestValidateID(t *testing.T) {
	require.NoError(t, ValidateID("game id", "6f1c2f7e-3b1a-4a55-9e3c-1b5c1d0c2a11"))

	for _, id := range []string{"", "   ", "game-1"} {
		err := ValidateID("game id", id)
		require.ErrorIs(t, err, domain.ErrInvalidInput, id)
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "lowercases", in: "Anna@Example.COM", want: "anna@example.com"},
		{name: "trims", in: "  ben@example.com\t", want: "ben@example.com"},
		{name: "empty", in: " ", wantErr: true},
		{name: "missing at", in: "clara.example.com", wantErr: true},
		{name: "display name", in: "Dora <dora@example.com>", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEmail(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidateImageURL(t *testing.T) {
	require.NoError(t, ValidateImageURL(""))
	require.NoError(t, ValidateImageURL("https://cdn.example.com/tree.png"))

	for _, raw := range []string{"tree.png", "ftp://example.com/a.png", "https://"} {
		require.ErrorIs(t, ValidateImageURL(raw), domain.ErrInvalidInput, raw)
	}
}

func TestLengthLimitsCountRunes(t *testing.T) {
	// Кириллица занимает два байта, лимит считается в символах
	require.NoError(t, ValidateGameName(strings.Repeat("ё", maxNameLength)))
	require.ErrorIs(t, ValidateGameName(strings.Repeat("ё", maxNameLength+1)), domain.ErrInvalidInput)
	require.ErrorIs(t, ValidateGameName(""), domain.ErrInvalidInput)

	require.NoError(t, ValidateParticipantName("Anna"))
	require.ErrorIs(t, ValidateParticipantName(""), domain.ErrInvalidInput)

	require.NoError(t, ValidateGameText(""))
	require.ErrorIs(t, ValidateGameText(strings.Repeat("x", maxTextLength+1)), domain.ErrInvalidInput)

	require.NoError(t, ValidateWishes(strings.Repeat("x", maxWishesLength)))
	require.ErrorIs(t, ValidateWishes(strings.Repeat("x", maxWishesLength+1)), domain.ErrInvalidInput)
}

func TestNormalizeTextComposesToNFC(t *testing.T) {
	require.Equal(t, "Zo\u00eb", NormalizeText("  Zoe\u0308\n"))
	require.Empty(t, NormalizeText("   "))
}
