package sim

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	values := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	values[n-1] = stop
	return values
}

// With returns a copy of p with the named parameter set. Run-level names
// (z0, v0, step, duration) are tried before the sphere's own parameters.
func (p FreeFallParams) With(name string, value float64) (FreeFallParams, error) {
	switch name {
	case "z0":
		p.Z0 = value
	case "v0":
		p.V0 = value
	case "step":
		p.Step = value
	case "duration":
		p.Duration = value
	default:
		if err := p.Sphere.SetParam(name, value); err != nil {
			return p, err
		}
	}
	return p, nil
}

// With returns a copy of p with the named parameter set. Run-level names
// (duration, dt, z0, v0) are tried before the wing's own parameters.
func (p WingParams) With(name string, value float64) (WingParams, error) {
	switch name {
	case "duration":
		p.Duration = value
	case "dt":
		p.Dt = value
	case "z0":
		p.Z0 = value
	case "v0":
		p.V0 = value
	default:
		w := p.Wing()
		if err := w.SetParam(name, value); err != nil {
			return p, err
		}
		p.Beta, p.Speed, p.Trim = w.Beta, w.Speed, w.Trim
	}
	return p, nil
}

// FreeFallSweep expands base into one parameter set per value.
func FreeFallSweep(base FreeFallParams, name string, values []float64) ([]FreeFallParams, error) {
	params := make([]FreeFallParams, 0, len(values))
	for _, v := range values {
		p, err := base.With(name, v)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

func WingSweep(base WingParams, name string, values []float64) ([]WingParams, error) {
	params := make([]WingParams, 0, len(values))
	for _, v := range values {
		p, err := base.With(name, v)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}
