package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "empty input",
			text:       "",
			chunkSize:  100,
			overlap:    20,
			wantChunks: 0,
		},
		{
			name:       "whitespace only",
			text:       "   \n\t  ",
			chunkSize:  100,
			overlap:    20,
			wantChunks: 0,
		},
		{
			name:       "fits in one chunk",
			text:       "short document",
			chunkSize:  100,
			overlap:    20,
			wantChunks: 1,
		},
		{
			name:       "exactly chunk size",
			text:       strings.Repeat("a", 100),
			chunkSize:  100,
			overlap:    20,
			wantChunks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if len(chunks) != tt.wantChunks {
				t.Errorf("got %d chunks, want %d", len(chunks), tt.wantChunks)
			}
			if tt.wantChunks == 1 && chunks[0] != tt.text {
				t.Errorf("single chunk should be the input unchanged")
			}
		})
	}
}

func TestSplitTextChunkSizeLimit(t *testing.T) {
	text := strings.Repeat("word ", 400) // 2000 chars
	chunks := SplitText(text, 300, 60)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len([]rune(chunk)) > 300 {
			t.Errorf("chunk %d exceeds chunk size: %d runes", i, len([]rune(chunk)))
		}
	}
}

func TestSplitTextLossless(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		chunkSize int
		overlap   int
	}{
		{
			name:      "paragraphs",
			text:      strings.Repeat("First paragraph with some content.\n\nSecond paragraph here.\n", 30),
			chunkSize: 200,
			overlap:   40,
		},
		{
			name:      "single lines",
			text:      strings.Repeat("a line of text\n", 100),
			chunkSize: 150,
			overlap:   30,
		},
		{
			name:      "no separators at all",
			text:      strings.Repeat("x", 1000),
			chunkSize: 128,
			overlap:   32,
		},
		{
			name:      "multibyte runes",
			text:      strings.Repeat("héllo wörld çontent ", 100),
			chunkSize: 120,
			overlap:   24,
		},
		{
			name:      "zero overlap",
			text:      strings.Repeat("some words go here ", 60),
			chunkSize: 100,
			overlap:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if got := reconstruct(chunks, tt.overlap); got != tt.text {
				t.Errorf("reconstruction mismatch: got %d chars, want %d", len(got), len(tt.text))
			}
		})
	}
}

func TestSplitTextOverlapShared(t *testing.T) {
	text := strings.Repeat("z", 500)
	overlap := 50
	chunks := SplitText(text, 200, overlap)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1])
		curr := []rune(chunks[i])
		tail := string(prev[len(prev)-overlap:])
		head := string(curr[:overlap])
		if tail != head {
			t.Errorf("chunk %d does not share %d-rune overlap with predecessor", i, overlap)
		}
	}
}

func TestSplitTextUnusableOverlap(t *testing.T) {
	// Overlap >= chunk size cannot make progress and must be ignored.
	text := strings.Repeat("y", 300)
	chunks := SplitText(text, 100, 100)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if got := reconstruct(chunks, 0); got != text {
		t.Errorf("reconstruction mismatch without overlap")
	}
}

// reconstruct concatenates chunks, dropping the first 'overlap' runes of
// every chunk after the first.
func reconstruct(chunks []string, overlap int) string {
	var b strings.Builder
	for i, chunk := range chunks {
		runes := []rune(chunk)
		if i > 0 {
			runes = runes[overlap:]
		}
		b.WriteString(string(runes))
	}
	return b.String()
}
