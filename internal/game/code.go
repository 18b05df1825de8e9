package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
)

const CodeLen = 4

// Code — упорядоченная последовательность из 4 цифр (секрет или догадка).
type Code [CodeLen]uint8

func (c Code) String() string {
	b := make([]byte, CodeLen)
	for i, d := range c {
		b[i] = '0' + d
	}
	return string(b)
}

func codeFromString(s string) (Code, error) {
	if !valid4Digits(s) {
		return Code{}, fmt.Errorf("code %q is not exactly 4 digits", s)
	}
	var c Code
	for i := 0; i < CodeLen; i++ {
		c[i] = s[i] - '0'
	}
	return c, nil
}

// DigitSource выдаёт случайные цифры 0-9 для генерации секрета.
// Абстракция нужна, чтобы тесты подставляли фиксированную последовательность.
type DigitSource interface {
	Digit() uint8
}

type mathSource struct{}

func (mathSource) Digit() uint8 { return uint8(rand.Intn(10)) }

// DefaultSource — process-wide источник; auto-seeded, невоспроизводимый.
func DefaultSource() DigitSource { return mathSource{} }

// NewSecret draws 4 independent digits. Repeats are allowed.
func NewSecret(src DigitSource) Code {
	var c Code
	for i := range c {
		c[i] = src.Digit() % 10
	}
	return c
}

var (
	ErrNotNumber = errors.New("guess is not an unsigned number")
	ErrBadLength = errors.New("guess must be exactly 4 characters")
	ErrNotDigits = errors.New("guess must contain only digits 0-9")
)

// ParseGuess validates one trimmed input line and decodes it into a Code.
//
// The checks run in the order the game applies them: parse as an unsigned
// integer, then exact length 4, then per-character digit decode. The last
// check rejects instead of crashing: length alone does not guarantee
// digit-only content, so decode is guarded rather than trusted.
func ParseGuess(line string) (Code, error) {
	if _, err := strconv.ParseUint(line, 10, 64); err != nil {
		return Code{}, ErrNotNumber
	}
	if len(line) != CodeLen {
		return Code{}, ErrBadLength
	}
	if !valid4Digits(line) {
		return Code{}, ErrNotDigits
	}
	c, _ := codeFromString(line)
	return c, nil
}
