package session

import "math"

// SectionSize returns the number of questions in the current section, or 0
// outside question phases.
func (s *Session) SectionSize() int {
	sec, ok := s.Section()
	if !ok {
		return 0
	}
	return s.cat.SectionSize(sec)
}

// OverallProgress returns committed answers as a rounded percentage of the
// whole catalog.
func (s *Session) OverallProgress() int {
	total := s.cat.Len()
	if total == 0 {
		return 0
	}
	return percent(len(s.answers), total)
}

// SectionProgress returns the position of the current question within its
// section as a rounded percentage, counting the current question as reached.
func (s *Session) SectionProgress() int {
	size := s.SectionSize()
	if size == 0 {
		return 0
	}
	return percent(s.index+1, size)
}

func percent(n, d int) int {
	return int(math.Round(float64(n) / float64(d) * 100))
}
