// Package estimate computes how long an exhaustive search over a password's
// keyspace would take. The figures are theoretical: they assume a
// bcrypt-speed attacker who does not know the exact length and gets no help
// from dictionaries or precomputed tables.
package estimate

import "math/big"

// AttackRate is the assumed number of guesses per second.
const AttackRate = 9000

// Estimate is the brute-force cost of a pool size and password length.
type Estimate struct {
	CharsetSize int
	Length      int
	Keyspace    *big.Int
	Seconds     *big.Int
}

// New computes the estimate for a charset of charsetSize characters and a
// password of length characters.
func New(charsetSize, length int) Estimate {
	keyspace := Keyspace(charsetSize, length)
	return Estimate{
		CharsetSize: charsetSize,
		Length:      length,
		Keyspace:    keyspace,
		Seconds:     secondsFor(keyspace),
	}
}

// String returns the estimated time in words.
func (e Estimate) String() string {
	return Humanize(e.Seconds)
}

// Keyspace returns charsetSize^1 + charsetSize^2 + ... + charsetSize^length,
// the number of strings of length 1 through length over the charset.
// Non-positive arguments give zero.
func Keyspace(charsetSize, length int) *big.Int {
	total := new(big.Int)
	if charsetSize <= 0 || length <= 0 {
		return total
	}

	base := big.NewInt(int64(charsetSize))
	power := big.NewInt(1)
	for i := 0; i < length; i++ {
		power.Mul(power, base)
		total.Add(total, power)
	}
	return total
}

// CrackSeconds returns Keyspace(charsetSize, length) / AttackRate, rounded down.
func CrackSeconds(charsetSize, length int) *big.Int {
	return secondsFor(Keyspace(charsetSize, length))
}

func secondsFor(keyspace *big.Int) *big.Int {
	return new(big.Int).Quo(keyspace, big.NewInt(AttackRate))
}
