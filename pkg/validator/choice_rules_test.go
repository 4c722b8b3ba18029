package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusksociety/dsm/pkg/validator"
)

func TestOneOfString(t *testing.T) {
	options := []string{"brand", "artist"}

	t.Run("accepts listed values", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.OneOfString("type", "brand", options)))
		assert.NoError(t, validator.Apply(validator.ValidEnum("type", "artist", options)))
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		errs := validator.ExtractValidationErrors(validator.Apply(validator.OneOfString("type", "Brand", options)))
		require.Len(t, errs, 1)
		assert.Equal(t, validator.EnumMismatch, errs[0].Kind)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		errs := validator.ExtractValidationErrors(validator.Apply(validator.OneOfString("type", "sponsor", options)))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be one of: brand, artist", errs[0].Message)
		assert.Equal(t, "sponsor", errs[0].Value)
		assert.Equal(t, options, errs[0].TranslationValues["allowed_values"])
	})
}
