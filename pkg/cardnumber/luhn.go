package cardnumber

// luhnValid reports whether digits passes the Luhn mod-10 checksum. The
// input must already be digits only. Processing runs right to left,
// doubling every second digit and folding results above nine back into a
// single digit.
func luhnValid(digits string) bool {
	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}
