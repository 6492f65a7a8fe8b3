package http

// lineScanner walks text line by line. A line ends at LF; a CR directly
// before the LF is dropped. The final line needs no terminator, and a
// trailing terminator does not produce an empty final line.
type lineScanner struct {
	data   string
	pos    int
	length int
	line   int // 1-indexed number of the last line returned
}

func newLineScanner(data string) *lineScanner {
	return &lineScanner{data: data, length: len(data)}
}

// next returns the next line, or false at end of input.
func (s *lineScanner) next() (string, bool) {
	if s.pos >= s.length {
		return "", false
	}

	start := s.pos
	for s.pos < s.length {
		if s.data[s.pos] == '\n' {
			end := s.pos
			if end > start && s.data[end-1] == '\r' {
				end--
			}
			s.pos++
			s.line++
			return s.data[start:end], true
		}
		s.pos++
	}

	// Last line, no terminator.
	s.line++
	return s.data[start:], true
}
