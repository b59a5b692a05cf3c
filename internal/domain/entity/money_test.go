package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
)

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		input    string
		expected Money
	}{
		{"10", 1000},
		{"10.5", 1050},
		{"10.50", 1050},
		{"0.01", 1},
		{" 500 ", 50000},
		{"10.500", 1050},
		{"0", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			m, err := ParseMoney(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m)
		})
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "-1", "10.123", "$10", "1e30"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMoney(input)
			assert.Error(t, err)
			assert.True(t, errs.IsValidationError(err))
		})
	}
}

func TestMoney_Formatting(t *testing.T) {
	assert.Equal(t, "26.67", Money(2667).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-10.00", Money(-1000).String())
	assert.Equal(t, "₹1,234.50", Money(123450).Display())
	assert.Equal(t, "-₹0.99", Money(-99).Display())
}

func TestMoney_JSON(t *testing.T) {
	payload := struct {
		Amount Money `json:"amount"`
	}{Amount: 4000}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":40.00}`, string(data))
	assert.Contains(t, string(data), "40.00")

	var decoded struct {
		Amount Money `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"12.5"}`), &decoded))
	assert.Equal(t, Money(1250), decoded.Amount)
	require.NoError(t, json.Unmarshal([]byte(`{"amount":500}`), &decoded))
	assert.Equal(t, Money(50000), decoded.Amount)
	assert.Error(t, json.Unmarshal([]byte(`{"amount":1.234}`), &decoded))
}

func TestMoney_Times(t *testing.T) {
	m, err := Rupees(10).Times(3)
	require.NoError(t, err)
	assert.Equal(t, Rupees(30), m)

	_, err = Money(1 << 62).Times(4)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}

func TestFeeFor(t *testing.T) {
	testCases := []struct {
		name     string
		amount   Money
		bps      int64
		expected Money
	}{
		{"ten percent of 500", Rupees(500), 1000, Rupees(50)},
		{"rounds half up", 5, 1000, 1},
		{"rounds down below half", 4, 1000, 0},
		{"odd paise", 12345, 1000, 1235},
		{"zero fee", Rupees(100), 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FeeFor(tc.amount, tc.bps))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 75.0, Percentage(3, 4))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 0.0, Percentage(0, 0))
}
