package ritual

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinNumber = 1
	MaxNumber = 99
)

var (
	ErrEmptyWish       = errors.New("wish is empty")
	ErrWishTooLong     = errors.New("wish is too long")
	ErrInvalidNumbers  = errors.New("exactly three numbers between 1 and 99 are required")
	ErrInvalidAmount   = errors.New("offering amount must be a positive decimal")
	ErrInvalidCurrency = errors.New("offering currency is not supported")
	ErrInvalidAddress  = errors.New("wallet address is invalid")
	ErrInvalidTxHash   = errors.New("transaction hash is invalid")
)

var (
	amountRe  = regexp.MustCompile(`^\d+(\.\d{1,18})?$`)
	addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashRe  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// ValidateWish 去掉首尾空白后校验愿望
func ValidateWish(wish string) (string, error) {
	wish = strings.TrimSpace(wish)
	if wish == "" {
		return "", ErrEmptyWish
	}
	if utf8.RuneCountInString(wish) > maxWishLength {
		return "", fmt.Errorf("%w: max %d characters", ErrWishTooLong, maxWishLength)
	}
	return wish, nil
}

// ValidateNumbers 必须恰好三个 1-99 的整数
func ValidateNumbers(numbers []int) ([3]int, error) {
	var out [3]int
	if len(numbers) != 3 {
		return out, ErrInvalidNumbers
	}
	for i, n := range numbers {
		if n < MinNumber || n > MaxNumber {
			return out, ErrInvalidNumbers
		}
		out[i] = n
	}
	return out, nil
}

// Offering 一次上香的支付声明
type Offering struct {
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	WalletAddress string `json:"walletAddress"`
	TxHash        string `json:"txHash,omitempty"`
}

// Validate 校验金额、币种、钱包地址与可选的交易哈希，返回规范化后的声明
func (o Offering) Validate() (Offering, error) {
	o.Amount = strings.TrimSpace(o.Amount)
	o.Currency = strings.ToUpper(strings.TrimSpace(o.Currency))
	o.WalletAddress = strings.TrimSpace(o.WalletAddress)
	o.TxHash = strings.TrimSpace(o.TxHash)

	if !amountRe.MatchString(o.Amount) {
		return o, ErrInvalidAmount
	}
	amount, err := strconv.ParseFloat(o.Amount, 64)
	if err != nil || amount <= 0 {
		return o, ErrInvalidAmount
	}

	if !currencies[o.Currency] {
		return o, fmt.Errorf("%w: %s", ErrInvalidCurrency, o.Currency)
	}

	if !addressRe.MatchString(o.WalletAddress) {
		return o, ErrInvalidAddress
	}

	if o.TxHash != "" && !txHashRe.MatchString(o.TxHash) {
		return o, ErrInvalidTxHash
	}

	return o, nil
}

// FormatAddress 缩写钱包地址，如 0x1234...abcd
func FormatAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
