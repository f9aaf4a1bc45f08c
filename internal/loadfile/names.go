package loadfile

// columnLetters returns the spreadsheet-style name for a 1-based column
// position using bijective base-26 numeration: 1 → A, 26 → Z, 27 → AA,
// 52 → AZ, 703 → AAA. There is no zero digit.
func columnLetters(pos int) string {
	var buf [8]byte
	i := len(buf)
	for pos > 0 {
		pos--
		i--
		buf[i] = byte('A' + pos%26)
		pos /= 26
	}
	return string(buf[i:])
}

// SyntheticNames generates width spreadsheet-style column names (A, B, ..,
// Z, AA, AB, ..) for callers that indicate the file's own header must not
// be trusted for naming, only for counting. This mode is always selected
// explicitly; the parser never infers it.
func SyntheticNames(width int) []string {
	names := make([]string, width)
	for i := range names {
		names[i] = columnLetters(i + 1)
	}
	return names
}
