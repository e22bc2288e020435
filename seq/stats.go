package seq

import "github.com/charmingruby/lambdalab/option"

// Number is the set of numeric types Summarize can project to.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Stats accumulates count, sum, min and max of a numeric stream. The zero
// value is ready to use and describes an empty stream.
type Stats[N Number] struct {
	count int
	sum   N
	min   N
	max   N
}

// Add folds one value into the statistics.
func (s *Stats[N]) Add(v N) {
	if s.count == 0 || v < s.min {
		s.min = v
	}
	if s.count == 0 || v > s.max {
		s.max = v
	}
	s.count++
	s.sum += v
}

// Count is the number of values seen.
func (s Stats[N]) Count() int { return s.count }

// Sum is zero for an empty stream.
func (s Stats[N]) Sum() N { return s.sum }

// Min is None for an empty stream.
func (s Stats[N]) Min() option.Option[N] {
	return option.FromOk(s.min, s.count > 0)
}

// Max is None for an empty stream.
func (s Stats[N]) Max() option.Option[N] {
	return option.FromOk(s.max, s.count > 0)
}

// Average is the arithmetic mean, or 0 for an empty stream.
func (s Stats[N]) Average() float64 {
	if s.count == 0 {
		return 0
	}
	return float64(s.sum) / float64(s.count)
}

// Summarize drains the iterator projecting each value to a number.
func Summarize[T any, N Number](it Iterator[T], project func(T) N) Stats[N] {
	var stats Stats[N]
	ForEach(it, func(v T) { stats.Add(project(v)) })
	return stats
}
