// Package shortcode generates and checks the 7-character paths that identify
// short links.
package shortcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

const (
	// Alphabet leaves out l, I, L, O and 0 so generated paths can be read back
	// without ambiguity.
	Alphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ123456789"
	// Length is the length of every path.
	Length = 7
)

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// Generate draws Length characters uniformly at random from Alphabet.
func Generate() (string, error) {
	result := make([]byte, Length)
	for i := range result {
		num, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("shortcode: %w", err)
		}
		result[i] = Alphabet[num.Int64()]
	}
	return string(result), nil
}

// HasValidLength reports whether path is exactly Length characters long.
// Resolution only checks the length; the character set is left to the
// datastore lookup.
func HasValidLength(path string) bool {
	return utf8.RuneCountInString(path) == Length
}

// IsValid reports whether path has the generated shape: Length characters,
// all from Alphabet.
func IsValid(path string) bool {
	if !HasValidLength(path) {
		return false
	}
	for _, c := range path {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}
	return true
}
