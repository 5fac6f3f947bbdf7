package ingestion_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/JaimeStill/doc-library/internal/ingestion"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want []string
	}{
		{"empty", "", 5, nil},
		{"shorter than n", "abc", 5, []string{"abc"}},
		{"exactly n", "abcde", 5, []string{"abcde"}},
		{"one over", "abcdef", 5, []string{"abcde", "f"}},
		{"even split", "abcdef", 3, []string{"abc", "def"}},
		{"n of one", "abc", 1, []string{"a", "b", "c"}},
		{"multibyte", "héllo wörld", 4, []string{"héll", "o wö", "rld"}},
		{"emoji", "😀😀😀", 2, []string{"😀😀", "😀"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ingestion.Split(tt.text, tt.n)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Split() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplit_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := ingestion.Split("text", n)
		if !errors.Is(err, ingestion.ErrInvalidChunkSize) {
			t.Errorf("Split(n=%d) err = %v, want ErrInvalidChunkSize", n, err)
		}
		if !errors.Is(err, ingestion.ErrInvalidArgument) {
			t.Errorf("Split(n=%d) err = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestSplit_Reconstructs(t *testing.T) {
	inputs := []string{
		strings.Repeat("lorem ipsum ", 300),
		"naïve café résumé " + strings.Repeat("日本語テキスト", 50),
		"bad \xff\xfe bytes \xc3",
	}

	for _, text := range inputs {
		for _, n := range []int{1, 7, 100, 800, 5000} {
			chunks, err := ingestion.Split(text, n)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}

			if got := strings.Join(chunks, ""); got != text {
				t.Errorf("n=%d: concatenation differs from input", n)
			}

			for i, c := range chunks {
				l := utf8.RuneCountInString(c)
				if l > n {
					t.Errorf("n=%d: chunk %d has %d runes", n, i, l)
				}
				if i < len(chunks)-1 && l != n {
					t.Errorf("n=%d: non-final chunk %d has %d runes, want %d", n, i, l, n)
				}
				if l == 0 {
					t.Errorf("n=%d: chunk %d is empty", n, i)
				}
			}
		}
	}
}
