package bidi

import xbidi "golang.org/x/text/unicode/bidi"

// implicitRuns resolves the level of every codepoint and groups equal
// levels into runs in logical order. It reports false when text holds
// explicit formatting characters.
func implicitRuns(text []rune, base uint8) ([]Run, bool) {
	classes := make([]xbidi.Class, len(text))
	for i, r := range text {
		props, _ := xbidi.LookupRune(r)
		c := props.Class()
		if explicit(c) {
			return nil, false
		}
		classes[i] = c
	}

	levels := resolveLevels(classes, base)
	var runs []Run
	for i, lv := range levels {
		if n := len(runs); n > 0 && runs[n-1].Level == lv {
			runs[n-1].Length++
			continue
		}
		runs = append(runs, Run{Level: lv, Offset: i, Length: 1})
	}
	return runs, true
}

func explicit(c xbidi.Class) bool {
	switch c {
	case xbidi.Control, xbidi.LRO, xbidi.RLO, xbidi.LRE, xbidi.RLE, xbidi.PDF,
		xbidi.LRI, xbidi.RLI, xbidi.FSI, xbidi.PDI:
		return true
	}
	return false
}

// resolveLevels applies the weak, neutral and implicit rules to a single
// isolating run sequence at level base, then resets separators and
// trailing whitespace to base (rule L1).
func resolveLevels(classes []xbidi.Class, base uint8) []uint8 {
	n := len(classes)
	sos := xbidi.L
	if base&1 == 1 {
		sos = xbidi.R
	}
	types := make([]xbidi.Class, n)
	for i, c := range classes {
		if c == xbidi.BN {
			c = xbidi.ON
		}
		types[i] = c
	}

	// W1
	prev := sos
	for i, t := range types {
		if t == xbidi.NSM {
			types[i] = prev
		}
		prev = types[i]
	}

	// W2, W3
	last := sos
	for i, t := range types {
		switch t {
		case xbidi.L, xbidi.R:
			last = t
		case xbidi.AL:
			last = t
			types[i] = xbidi.R
		case xbidi.EN:
			if last == xbidi.AL {
				types[i] = xbidi.AN
			}
		}
	}

	// W4
	for i := 1; i+1 < n; i++ {
		a, b := types[i-1], types[i+1]
		switch types[i] {
		case xbidi.ES:
			if a == xbidi.EN && b == xbidi.EN {
				types[i] = xbidi.EN
			}
		case xbidi.CS:
			if a == b && (a == xbidi.EN || a == xbidi.AN) {
				types[i] = a
			}
		}
	}

	// W5
	for i := 0; i < n; {
		if types[i] != xbidi.ET {
			i++
			continue
		}
		j := i
		for j < n && types[j] == xbidi.ET {
			j++
		}
		if (i > 0 && types[i-1] == xbidi.EN) || (j < n && types[j] == xbidi.EN) {
			for k := i; k < j; k++ {
				types[k] = xbidi.EN
			}
		}
		i = j
	}

	// W6, W7
	last = sos
	for i, t := range types {
		switch t {
		case xbidi.ES, xbidi.ET, xbidi.CS:
			types[i] = xbidi.ON
		case xbidi.L, xbidi.R:
			last = t
		case xbidi.EN:
			if last == xbidi.L {
				types[i] = xbidi.L
			}
		}
	}

	// N1, N2: numbers count as R.
	for i := 0; i < n; {
		if !neutral(types[i]) {
			i++
			continue
		}
		j := i
		for j < n && neutral(types[j]) {
			j++
		}
		before, after := sos, sos
		if i > 0 {
			before = strong(types[i-1])
		}
		if j < n {
			after = strong(types[j])
		}
		dir := sos
		if before == after {
			dir = before
		}
		for k := i; k < j; k++ {
			types[k] = dir
		}
		i = j
	}

	// I1, I2
	levels := make([]uint8, n)
	for i, t := range types {
		lv := base
		switch {
		case base&1 == 0 && t == xbidi.R:
			lv++
		case base&1 == 0 && (t == xbidi.EN || t == xbidi.AN):
			lv += 2
		case base&1 == 1 && t != xbidi.R:
			lv++
		}
		levels[i] = lv
	}

	// L1
	trailing := true
	for i := n - 1; i >= 0; i-- {
		switch classes[i] {
		case xbidi.S, xbidi.B:
			levels[i] = base
			trailing = true
		case xbidi.WS, xbidi.BN:
			if trailing {
				levels[i] = base
			}
		default:
			trailing = false
		}
	}
	return levels
}

func neutral(c xbidi.Class) bool {
	switch c {
	case xbidi.B, xbidi.S, xbidi.WS, xbidi.ON:
		return true
	}
	return false
}

func strong(c xbidi.Class) xbidi.Class {
	if c == xbidi.L {
		return xbidi.L
	}
	return xbidi.R
}
