package utils

import "strings"

// Separator priority for choosing a cut point: paragraph break first,
// then line break, then word boundary. When none fits, the chunk is
// hard-sliced at exactly 'chunkSize' characters.
var splitSeparators = []string{"\n\n", "\n", " "}

// SplitText splits a long string into chunks of at most 'chunkSize' characters.
// Consecutive chunks share 'overlap' trailing/leading characters to preserve
// context at boundaries. The split is lossless: concatenating the chunks and
// removing the overlaps reconstructs the input exactly.
//
// Whitespace-only input yields no chunks. Input that already fits in a single
// chunk is returned unchanged.
func SplitText(text string, chunkSize int, overlap int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	if overlap >= chunkSize || overlap < 0 {
		overlap = 0 // fallback if overlap is unusable
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		end = snapToSeparator(runes, start, end, overlap)
		chunks = append(chunks, string(runes[start:end]))

		// Next chunk starts inside the previous one by 'overlap' characters.
		start = end - overlap
	}

	return chunks
}

// snapToSeparator pulls the cut point back to the last occurrence of the
// highest-priority separator inside the candidate window, keeping the
// separator attached to the leading chunk. The cut must land far enough past
// 'start' that the overlap re-added afterwards still makes forward progress;
// otherwise the window is hard-sliced at 'end'.
func snapToSeparator(runes []rune, start, end, overlap int) int {
	window := string(runes[start:end])

	for _, sep := range splitSeparators {
		i := strings.LastIndex(window, sep)
		if i < 0 {
			continue
		}
		cut := start + len([]rune(window[:i])) + len([]rune(sep))
		if cut-start > overlap {
			return cut
		}
	}

	return end
}
