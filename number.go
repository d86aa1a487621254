package jsn

// skipNumberFast and skipNumberStrict are both entered with *p one byte
// past the first number byte (the dispatch byte already consumed by
// advanceNS). Both leave *p at the first byte that is not part of the
// number and return the offset where the number started.
//
// skipNumberFast takes the longest prefix matching the JSON number
// grammar without rejecting every malformed partial form (a leading zero
// followed by more digits, for instance); it is used by the tape builder
// and skipOneFast, where any mis-skip still leaves bracket/quote balance
// intact for the surrounding container scan to catch. A bare '-' with no
// following digit is still rejected, since that isn't a number at all.
func skipNumberFast(src []byte, p *int) (start int, err error) {
	start = *p - 1
	n := len(src)
	i := *p

	if src[start] == '-' {
		if i >= n || src[i] < '0' || src[i] > '9' {
			*p = start
			return start, ErrInvalidNumber
		}
	}
	for i < n && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	if i < n && src[i] == '.' {
		j := i + 1
		for j < n && src[j] >= '0' && src[j] <= '9' {
			j++
		}
		if j > i+1 {
			i = j
		}
	}
	if i < n && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < n && (src[j] == '+' || src[j] == '-') {
			j++
		}
		k := j
		for k < n && src[k] >= '0' && src[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	*p = i
	return start, nil
}

// skipNumberStrict additionally rejects malformed partial numbers: a
// leading zero followed by more digits, a '.' with no digit after it, and
// an exponent marker with no digit after it. Used by the validating skip
// path, where a malformed sibling must be caught rather than silently
// tolerated.
func skipNumberStrict(src []byte, p *int) (start int, err error) {
	start = *p - 1
	n := len(src)
	i := start

	if i < n && src[i] == '-' {
		i++
	}
	if i >= n || src[i] < '0' || src[i] > '9' {
		*p = i
		return start, ErrInvalidNumber
	}
	if src[i] == '0' {
		i++
		if i < n && src[i] >= '0' && src[i] <= '9' {
			*p = i
			return start, ErrInvalidNumber
		}
	} else {
		for i < n && src[i] >= '0' && src[i] <= '9' {
			i++
		}
	}
	if i < n && src[i] == '.' {
		i++
		digits := 0
		for i < n && src[i] >= '0' && src[i] <= '9' {
			i++
			digits++
		}
		if digits == 0 {
			*p = i
			return start, ErrInvalidNumber
		}
	}
	if i < n && (src[i] == 'e' || src[i] == 'E') {
		i++
		if i < n && (src[i] == '+' || src[i] == '-') {
			i++
		}
		digits := 0
		for i < n && src[i] >= '0' && src[i] <= '9' {
			i++
			digits++
		}
		if digits == 0 {
			*p = i
			return start, ErrInvalidNumber
		}
	}
	*p = i
	return start, nil
}
