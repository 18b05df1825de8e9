package game

// Score counts bulls and cows for a guess against the secret.
//
// Bulls are exact position+value matches; cows are value matches at other
// positions, with multiplicity capped by the rarer per-digit count between
// the two codes (multiset intersection). Always bulls+cows <= 4, and the
// function is symmetric in its arguments.
func Score(secret, guess Code) (bulls, cows int) {
	// гистограммы по цифрам 0-9
	var snc [10]int
	var gnc [10]int

	for i := 0; i < CodeLen; i++ {
		snc[secret[i]]++
		gnc[guess[i]]++
	}

	// raw multiset overlap, position-blind
	overlap := 0
	for d := 0; d < 10; d++ {
		if snc[d] < gnc[d] {
			overlap += snc[d]
		} else {
			overlap += gnc[d]
		}
	}

	for i := 0; i < CodeLen; i++ {
		if secret[i] == guess[i] {
			bulls++
		}
	}

	// каждый бык уже учтён в overlap — вычитаем обратно
	cows = overlap - bulls
	return bulls, cows
}

func valid4Digits(s string) bool {
	if len(s) != CodeLen {
		return false
	}
	for i := 0; i < CodeLen; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
