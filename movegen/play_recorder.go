package movegen

// PlayRecorderFunc receives each placement as it is generated.
type PlayRecorderFunc func(Placement)

func NullPlayRecorder(Placement) {}

// AllPlaysRecorder appends every placement to plays.
func AllPlaysRecorder(plays *[]Placement) PlayRecorderFunc {
	return func(p Placement) {
		*plays = append(*plays, p)
	}
}
