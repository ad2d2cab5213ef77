// Package summarize builds a naive extractive summary of a transcript: the
// leading slice of its sentences plus the five most frequent meaningful words.
// Deterministic, no I/O.
package summarize

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	// minInput gates summarization; shorter texts fail with ErrTooShort.
	minInput = 50
	// minSentence drops split fragments that are too short to carry meaning.
	minSentence = 20
	// maxSentences caps the extract regardless of transcript length.
	maxSentences = 5
	// maxKeyPoints caps the frequency list.
	maxKeyPoints = 5
	// minTokenLen drops short filler words before frequency counting.
	minTokenLen = 5
)

var ErrTooShort = errors.New("transcript too short to summarize")

// Result is the display-ready summary payload.
type Result struct {
	Summary   string
	KeyPoints []string
	WordCount int
}

var (
	reSentenceSplit = regexp.MustCompile(`[.!?]+`)
	reNonWord       = regexp.MustCompile(`\W`)
)

var stopWords = map[string]struct{}{
	"about": {}, "above": {}, "actually": {}, "after": {}, "again": {},
	"always": {}, "around": {}, "because": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "could": {}, "doing": {}, "during": {},
	"every": {}, "going": {}, "gonna": {}, "having": {}, "maybe": {},
	"other": {}, "really": {}, "right": {}, "should": {}, "something": {},
	"their": {}, "there": {}, "these": {}, "thing": {}, "things": {},
	"think": {}, "those": {}, "through": {}, "today": {}, "under": {},
	"where": {}, "which": {}, "while": {}, "would": {}, "youre": {},
}

// Summarize produces an extractive summary of text. It fails with ErrTooShort
// below the input gate and never returns a partial result.
func Summarize(text string) (Result, error) {
	if len(text) < minInput {
		return Result{}, ErrTooShort
	}

	sentences := splitSentences(text)
	n := int(math.Ceil(float64(len(sentences)) * 0.2))
	if n > maxSentences {
		n = maxSentences
	}
	if n > len(sentences) {
		n = len(sentences)
	}
	summary := ""
	if n > 0 {
		summary = strings.Join(sentences[:n], ". ") + "."
	}

	return Result{
		Summary:   summary,
		KeyPoints: keyPoints(text),
		WordCount: len(strings.Fields(text)),
	}, nil
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range reSentenceSplit.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) > minSentence {
			out = append(out, s)
		}
	}
	return out
}

// keyPoints returns the five most frequent tokens, lowercased and stripped of
// non-word characters, skipping stop words and short tokens. Ties keep
// first-encountered order.
func keyPoints(text string) []string {
	counts := map[string]int{}
	var order []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		tok := reNonWord.ReplaceAllString(w, "")
		if len(tok) < minTokenLen {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxKeyPoints {
		order = order[:maxKeyPoints]
	}
	return order
}
