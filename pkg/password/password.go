package password

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost bcrypt加密轮数
const DefaultCost = 10

const (
	lower   = "abcdefghijkmnopqrstuvwxyz"
	upper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digits  = "23456789"
	symbols = "!@#$%^&*"
)

// MinLength 临时密码最小长度
const MinLength = 8

var ErrMismatch = errors.New("password mismatch")

// Hash 使用 bcrypt 加密密码
func Hash(plain string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare 校验密码,不匹配时返回ErrMismatch
func Compare(hashed, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// Generate 生成包含大小写字母、数字、符号的随机临时密码
func Generate(length int) (string, error) {
	if length < MinLength {
		length = MinLength
	}
	all := lower + upper + digits + symbols
	buf := make([]byte, length)
	// 每类字符至少一个
	for i, set := range []string{lower, upper, digits, symbols} {
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}
	for i := 4; i < length; i++ {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}
	// Fisher-Yates
	for i := length - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		j := n.Int64()
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}
