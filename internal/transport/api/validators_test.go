package api

import (
	"testing"

	"github.com/fsdevblog/groph-market/internal/transport/api/testutils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("max_bytes", validateMaxBytes))
	require.NoError(t, v.RegisterValidation("payout", validatePayout))

	type params struct {
		Title  string `validate:"max_bytes=8"`
		Payout string `validate:"payout"`
	}

	assert.NoError(t, v.Struct(params{Title: "12345678", Payout: "card 4111 1111"}))
	// 2 руны, 8 байт
	assert.NoError(t, v.Struct(params{Title: testutils.GenerateOverBytesUnderRunes(2), Payout: "x"}))
	assert.Error(t, v.Struct(params{Title: testutils.GenerateOverBytesUnderRunes(3), Payout: "x"}))

	assert.Error(t, v.Struct(params{Payout: "   "}))
	assert.Error(t, v.Struct(params{Payout: "card\t4111"}))
}
