package zpk

import "fmt"

// Combine returns the series connection of a plant, a controller and an
// actuator: the zero and pole lists of the three models concatenated in that
// order, and the product of their gains.
//
// Inputs are not modified and the result shares no memory with them. A nil
// model, a non-finite gain or root, or a sample time mismatch yields an
// [*InvalidInputError] naming the offending argument, and no model.
func Combine(plant, controller, actuator *Model) (*Model, error) {
	return series(
		[]string{"plant", "controller", "actuator"},
		[]*Model{plant, controller, actuator},
	)
}

// Series returns the product of any number of models. With no arguments it
// returns [Identity]. Errors name the argument as "model[i]".
func Series(models ...*Model) (*Model, error) {
	names := make([]string, len(models))
	for i := range models {
		names[i] = fmt.Sprintf("model[%d]", i)
	}

	return series(names, models)
}

func series(names []string, models []*Model) (*Model, error) {
	var (
		nz, np int
		dt     float64
	)

	for i, m := range models {
		if err := m.validate(names[i]); err != nil {
			return nil, err
		}

		if i == 0 {
			dt = m.SampleTime
		} else if m.SampleTime != dt {
			return nil, invalid(names[i], "sample time %v does not match %v of %s",
				m.SampleTime, dt, names[0])
		}

		nz += len(m.Zeros)
		np += len(m.Poles)
	}

	out := &Model{
		Zeros:      make([]complex128, 0, nz),
		Poles:      make([]complex128, 0, np),
		Gain:       1,
		SampleTime: dt,
	}

	for _, m := range models {
		out.Zeros = append(out.Zeros, m.Zeros...)
		out.Poles = append(out.Poles, m.Poles...)
		out.Gain *= m.Gain
	}

	return out, nil
}
