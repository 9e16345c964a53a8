package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonecheck/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("phone", "+1 201 555 0123"),
			validator.MaxLen("phone", "+1 201 555 0123", 64),
			validator.InList("type", "mobile", []string{"any", "mobile", "fixed_line"}),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("1", 65)
		err := validator.Apply(
			validator.Required("phone", "  "),
			validator.MaxLen("phone", long, 64),
			validator.InList("type", "pager", []string{"any", "mobile", "fixed_line"}),
			validator.ValidCountry("country", "USA"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 4)
		assert.Equal(t, []string{"phone", "type", "country"}, errs.Fields())
		assert.Equal(t, []string{"field is required", "must be at most 64 characters long"}, errs.Get("phone"))
		assert.Equal(t, []string{"must be one of: any, mobile, fixed_line"}, errs.Get("type"))
		assert.True(t, errs.Has("country"))
		assert.False(t, errs.Has("strict"))
		assert.Equal(t, "validation.in_list", errs[2].TranslationKey)
		assert.Contains(t, err.Error(), "type: must be one of")
	})

	t.Run("wrapped errors are unwrapped", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("bind: %w", validator.Apply(validator.Required("phone", "")))
		assert.True(t, validator.IsValidationError(err))
		assert.Len(t, validator.ExtractValidationErrors(err), 1)

		assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestMaxLen_CountsRunes(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MaxLen("phone", "ñññ", 3)))
	assert.Error(t, validator.Apply(validator.MaxLen("phone", "ñññn", 3)))
}

func TestOptional(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Optional("", validator.ValidCountry("country", ""))))
	assert.NoError(t, validator.Apply(validator.Optional("gb", validator.ValidCountry("country", "gb"))))
	assert.Error(t, validator.Apply(validator.Optional("zz9", validator.ValidCountry("country", "zz9"))))
}

func TestNoControlChars(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.NoControlChars("phone", "+1 201")))
	assert.Error(t, validator.Apply(validator.NoControlChars("phone", "+1\x00201")))
}

func TestInList_Generic(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.InList("n", 2, []int{1, 2, 3})))
	err := validator.Apply(validator.InList("n", 5, []int{1, 2, 3}))
	require.Error(t, err)
	assert.Equal(t, []string{"must be one of: 1, 2, 3"}, validator.ExtractValidationErrors(err).Get("n"))
}
