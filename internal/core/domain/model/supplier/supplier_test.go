package supplier_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create supplier with valid parameters", func(t *testing.T) {
		s, err := supplier.NewSupplier(
			validID, "Acme Fasteners", "DE123456789", "sales@acme.example", "1 Factory Rd", "Net 30",
		)

		require.NoError(t, err)
		assert.NotNil(t, s)
		assert.True(t, s.ID().IsEqual(validID))
		assert.Equal(t, "Acme Fasteners", s.Name())
		assert.Equal(t, "DE123456789", s.TaxID())
		assert.Equal(t, "sales@acme.example", s.Email())
		assert.Equal(t, "1 Factory Rd", s.Address())
		assert.Equal(t, "Net 30", s.Notes())
		require.NoError(t, s.Validate())
	})

	t.Run("should allow empty contact details", func(t *testing.T) {
		s, err := supplier.NewSupplier(validID, "Acme Fasteners", "", "", "", "")

		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		s, err := supplier.NewSupplier(validID, "", "", "", "", "")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := supplier.NewSupplier(invalidID, "Acme Fasteners", "", "", "", "")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})
}

func TestSupplierValidate(t *testing.T) {
	t.Run("should fail for nil supplier", func(t *testing.T) {
		var s *supplier.Supplier

		assert.ErrorIs(t, s.Validate(), supplier.ErrSupplierIsNotConstructed)
	})

	t.Run("should fail for zero-value supplier", func(t *testing.T) {
		var s supplier.Supplier

		assert.ErrorIs(t, s.Validate(), supplier.ErrSupplierIsNotConstructed)
	})
}
