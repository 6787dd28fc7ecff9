package zpk

import (
	"strconv"
	"strings"
)

// Parse reads a model in the form
//
//	zeros=<list>;poles=<list>;gain=<number>[;dt=<number>]
//
// where each list is a comma-separated sequence of complex literals such as
// -1, 2.5, -1+2i or (0-3i). An empty list is written as "zeros=". The zeros,
// poles and gain fields are required; a missing field is an error, never a
// default.
func Parse(s string) (*Model, error) {
	fields := make(map[string]string, 4)

	for part := range strings.SplitSeq(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, invalid("model", "field %q is not key=value", part)
		}

		key = strings.ToLower(strings.TrimSpace(key))
		switch key {
		case "zeros", "poles", "gain", "dt":
		default:
			return nil, invalid("model", "unknown field %q", key)
		}

		if _, dup := fields[key]; dup {
			return nil, invalid("model", "duplicate field %q", key)
		}

		fields[key] = strings.TrimSpace(value)
	}

	for _, key := range []string{"zeros", "poles", "gain"} {
		if _, ok := fields[key]; !ok {
			return nil, invalid("model", "missing %q field", key)
		}
	}

	zeros, err := parseRoots("zeros", fields["zeros"])
	if err != nil {
		return nil, err
	}

	poles, err := parseRoots("poles", fields["poles"])
	if err != nil {
		return nil, err
	}

	gain, err := strconv.ParseFloat(fields["gain"], 64)
	if err != nil {
		return nil, invalid("gain", "%q is not a number", fields["gain"])
	}

	m := &Model{Zeros: zeros, Poles: poles, Gain: gain}

	if dt, ok := fields["dt"]; ok {
		m.SampleTime, err = strconv.ParseFloat(dt, 64)
		if err != nil {
			return nil, invalid("dt", "%q is not a number", dt)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

func parseRoots(arg, list string) ([]complex128, error) {
	if list == "" {
		return []complex128{}, nil
	}

	items := strings.Split(list, ",")
	out := make([]complex128, len(items))

	for i, item := range items {
		item = strings.TrimSpace(item)

		v, err := strconv.ParseComplex(item, 128)
		if err != nil {
			return nil, invalid(arg, "item %d (%q) is not a complex number", i, item)
		}

		out[i] = v
	}

	return out, nil
}

// String renders m in the form read by [Parse].
func (m *Model) String() string {
	if m == nil {
		return "<nil>"
	}

	var sb strings.Builder

	sb.WriteString("zeros=")
	writeRoots(&sb, m.Zeros)
	sb.WriteString(";poles=")
	writeRoots(&sb, m.Poles)
	sb.WriteString(";gain=")
	sb.WriteString(strconv.FormatFloat(m.Gain, 'g', -1, 64))

	if m.SampleTime != 0 {
		sb.WriteString(";dt=")
		sb.WriteString(strconv.FormatFloat(m.SampleTime, 'g', -1, 64))
	}

	return sb.String()
}

func writeRoots(sb *strings.Builder, roots []complex128) {
	for i, r := range roots {
		if i > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(FormatRoot(r))
	}
}

// FormatRoot formats a root as a plain real number when its imaginary part is
// zero and as a parenthesised complex literal otherwise.
func FormatRoot(r complex128) string {
	if imag(r) == 0 {
		return strconv.FormatFloat(real(r), 'g', -1, 64)
	}

	return strconv.FormatComplex(r, 'g', -1, 128)
}
