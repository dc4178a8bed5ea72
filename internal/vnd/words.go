package vnd

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	wordUnits    = []string{"", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}
	wordSuffixes = []string{"", " nghìn", " triệu", " tỷ"}
)

// InWords spells an amount in Vietnamese currency words, capitalized
// and suffixed with "đồng". The sign is ignored; zero reads
// "Không đồng". Amounts are supported up to the tỷ (billion) group.
func InWords(amount int64) string {
	n := amount
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return "Không đồng"
	}

	var groups []int
	for n > 0 {
		groups = append([]int{int(n % 1000)}, groups...)
		n /= 1000
	}

	var parts []string
	for i, g := range groups {
		if g == 0 {
			continue
		}
		text := readThreeDigits(g, i == 0)
		if idx := len(groups) - 1 - i; idx < len(wordSuffixes) {
			text += wordSuffixes[idx]
		}
		parts = append(parts, text)
	}

	return capitalize(strings.Join(parts, " ")) + " đồng"
}

// readThreeDigits reads one 000–999 group. The leading group omits the
// "linh" filler that joins a bare unit digit to the groups before it.
func readThreeDigits(n int, mostSignificant bool) string {
	hundreds := n / 100
	tens := (n % 100) / 10
	units := n % 10

	var b strings.Builder
	if hundreds > 0 {
		b.WriteString(wordUnits[hundreds] + " trăm")
	}

	switch {
	case tens > 1:
		appendWord(&b, wordUnits[tens]+" mươi")
		if units == 1 {
			b.WriteString(" mốt")
		}
	case tens == 1:
		appendWord(&b, "mười")
	case units > 0:
		if hundreds > 0 || !mostSignificant {
			appendWord(&b, "linh")
		}
	}

	if units > 0 {
		switch {
		case units == 5 && tens >= 1:
			b.WriteString(" lăm")
		case units == 1 && tens > 1:
			// already read as "mốt"
		default:
			appendWord(&b, wordUnits[units])
		}
	}

	return b.String()
}

func appendWord(b *strings.Builder, word string) {
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	b.WriteString(word)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
