package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	t.Run("accepts plain decimal", func(t *testing.T) {
		v, ok := ParseMoney("1234.56")
		require.True(t, ok)
		assert.Equal(t, 1234.56, v)
	})

	t.Run("comma decimal separator normalizes to the same value", func(t *testing.T) {
		v, ok := ParseMoney("1.234,56")
		require.True(t, ok)
		assert.Equal(t, 1234.56, v)

		v2, ok := ParseMoney("1234,56")
		require.True(t, ok)
		assert.Equal(t, v, v2)
	})

	t.Run("strips spaces", func(t *testing.T) {
		v, ok := ParseMoney("  1 000,50 ")
		require.True(t, ok)
		assert.Equal(t, 1000.50, v)
	})

	t.Run("accepts integers", func(t *testing.T) {
		v, ok := ParseMoney("1000")
		require.True(t, ok)
		assert.Equal(t, 1000.0, v)
	})

	t.Run("negative amounts are not rejected", func(t *testing.T) {
		v, ok := ParseMoney("-50")
		require.True(t, ok)
		assert.Equal(t, -50.0, v)
	})

	t.Run("rejects junk", func(t *testing.T) {
		for _, in := range []string{"", "abc", "12abc", "1e5", "inf", "NaN", "0x10", "1.2.3"} {
			_, ok := ParseMoney(in)
			assert.False(t, ok, "expected %q to be rejected", in)
		}
	})
}

func TestValidDate(t *testing.T) {
	t.Run("real dates pass", func(t *testing.T) {
		assert.True(t, ValidDate("2025-03-01"))
		assert.True(t, ValidDate("2024-02-29")) // leap year
	})

	t.Run("impossible dates fail", func(t *testing.T) {
		assert.False(t, ValidDate("2024-02-30"))
		assert.False(t, ValidDate("2023-02-29")) // not a leap year
		assert.False(t, ValidDate("2024-13-01"))
		assert.False(t, ValidDate("2024-00-10"))
	})

	t.Run("shape must be literal YYYY-MM-DD", func(t *testing.T) {
		assert.False(t, ValidDate("01-03-2025"))
		assert.False(t, ValidDate("2025-3-1"))
		assert.False(t, ValidDate("2025/03/01"))
		assert.False(t, ValidDate(""))
	})
}

func TestProjectFormValidate(t *testing.T) {
	valid := ProjectForm{
		ProjectName:   "  Website  ",
		TotalAmount:   "1.000,00",
		ClientName:    "Acme",
		DeliveryDate:  "2025-03-01",
		Status:        "in_progress",
		Notes:         "  responsive design  ",
		PendingAmount: "1000",
	}

	t.Run("valid form normalizes every field", func(t *testing.T) {
		input, err := valid.Validate()
		require.NoError(t, err)
		assert.Equal(t, "Website", input.ProjectName)
		assert.Equal(t, 1000.0, input.TotalAmount)
		assert.Equal(t, "Acme", input.ClientName)
		assert.Equal(t, "2025-03-01", input.DeliveryDate)
		assert.Equal(t, "in_progress", input.Status)
		assert.Equal(t, "responsive design", input.Notes)
		assert.Equal(t, 1000.0, input.PendingAmount)
	})

	t.Run("notes may be empty", func(t *testing.T) {
		form := valid
		form.Notes = "   "
		input, err := form.Validate()
		require.NoError(t, err)
		assert.Equal(t, "", input.Notes)
	})

	t.Run("whitespace-only required fields are rejected", func(t *testing.T) {
		form := valid
		form.ProjectName = "   "
		_, err := form.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "project_name")
	})

	t.Run("unknown status is rejected, not defaulted", func(t *testing.T) {
		form := valid
		form.Status = "done"
		_, err := form.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("all failures aggregate into one error", func(t *testing.T) {
		form := ProjectForm{
			TotalAmount:   "abc",
			DeliveryDate:  "2024-02-30",
			Status:        "nope",
			PendingAmount: "",
		}
		input, err := form.Validate()
		require.Error(t, err)
		assert.Nil(t, input)
		for _, field := range []string{"project_name", "client_name", "total_amount", "pending_amount", "delivery_date", "status"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}
