package readline

// backwardWordBoundary returns the index of the word boundary before pos:
// any run of spaces immediately before pos is skipped, then the word before
// it. Only the ASCII space is a delimiter; tabs and other whitespace count
// as word characters.
func backwardWordBoundary(text []rune, pos int) int {
	i := clampInt(pos, 0, len(text))
	for i > 0 && text[i-1] == ' ' {
		i--
	}
	for i > 0 && text[i-1] != ' ' {
		i--
	}
	return i
}

// longestCommonPrefix returns the length in runes of the longest prefix
// shared by all candidates. candidates must be non-empty.
func longestCommonPrefix(candidates []string) int {
	first := []rune(candidates[0])
	n := len(first)
	for _, c := range candidates[1:] {
		runes := []rune(c)
		if len(runes) < n {
			n = len(runes)
		}
		for i := 0; i < n; i++ {
			if runes[i] != first[i] {
				n = i
				break
			}
		}
	}
	return n
}
