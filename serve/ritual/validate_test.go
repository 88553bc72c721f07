package ritual

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWish(t *testing.T) {
	wish, err := ValidateWish("  身体健康 ")
	require.NoError(t, err)
	assert.Equal(t, "身体健康", wish)

	_, err = ValidateWish(" \t\n")
	assert.ErrorIs(t, err, ErrEmptyWish)

	_, err = ValidateWish(strings.Repeat("福", maxWishLength))
	assert.NoError(t, err)

	_, err = ValidateWish(strings.Repeat("福", maxWishLength+1))
	assert.ErrorIs(t, err, ErrWishTooLong)
}

func TestValidateNumbers(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		want    [3]int
		wantErr bool
	}{
		{"ok", []int{1, 50, 99}, [3]int{1, 50, 99}, false},
		{"too few", []int{1, 2}, [3]int{}, true},
		{"too many", []int{1, 2, 3, 4}, [3]int{}, true},
		{"zero", []int{0, 2, 3}, [3]int{}, true},
		{"hundred", []int{1, 2, 100}, [3]int{}, true},
		{"nil", nil, [3]int{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateNumbers(tt.numbers)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumbers)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOfferingValidate(t *testing.T) {
	const addr = "0x52908400098527886E0F7030069857D2E4169EE7"

	got, err := Offering{Amount: " 0.005 ", Currency: "eth", WalletAddress: addr}.Validate()
	require.NoError(t, err)
	assert.Equal(t, Offering{Amount: "0.005", Currency: "ETH", WalletAddress: addr}, got)

	tests := []struct {
		name     string
		offering Offering
		err      error
	}{
		{"zero amount", Offering{Amount: "0.0", Currency: "ETH", WalletAddress: addr}, ErrInvalidAmount},
		{"negative amount", Offering{Amount: "-1", Currency: "ETH", WalletAddress: addr}, ErrInvalidAmount},
		{"not a number", Offering{Amount: "abc", Currency: "ETH", WalletAddress: addr}, ErrInvalidAmount},
		{"unknown currency", Offering{Amount: "1", Currency: "DOGE", WalletAddress: addr}, ErrInvalidCurrency},
		{"short address", Offering{Amount: "1", Currency: "USDT", WalletAddress: "0x1234"}, ErrInvalidAddress},
		{"bad tx hash", Offering{Amount: "1", Currency: "USDT", WalletAddress: addr, TxHash: "0xabc"}, ErrInvalidTxHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.offering.Validate()
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "0x5290...9EE7", FormatAddress("0x52908400098527886E0F7030069857D2E4169EE7"))
	assert.Equal(t, "0x1234", FormatAddress("0x1234"))
}

func TestNumbersRoundTrip(t *testing.T) {
	assert.Equal(t, "12,34,56", joinNumbers([]int{12, 34, 56}))
	assert.Equal(t, []int{12, 34, 56}, splitNumbers("12,34,56"))
	assert.Nil(t, splitNumbers(""))
	assert.Nil(t, splitNumbers("1,x,3"))
}
