// internal/dialogue/answers.go
package dialogue

import "carassist/internal/ai"

// AnswerSet stores question/answer pairs keyed by exact question text while
// preserving insertion order. A duplicate question silently overwrites the
// earlier answer in place, keeping its original position, so extraction
// iterates the pairs exactly the way they were first asked.
type AnswerSet struct {
	entries []ai.QA
	index   map[string]int
}

func NewAnswerSet() *AnswerSet {
	return &AnswerSet{index: make(map[string]int)}
}

// Put records answer under question. It reports whether an earlier answer
// for the same question text was overwritten.
func (s *AnswerSet) Put(question, answer string) bool {
	if i, ok := s.index[question]; ok {
		s.entries[i].Answer = answer
		return true
	}
	s.index[question] = len(s.entries)
	s.entries = append(s.entries, ai.QA{Question: question, Answer: answer})
	return false
}

// Pairs returns the recorded pairs in insertion order. The slice header is
// shared; callers treat it as read-only.
func (s *AnswerSet) Pairs() []ai.QA {
	return s.entries
}

func (s *AnswerSet) Len() int {
	return len(s.entries)
}
