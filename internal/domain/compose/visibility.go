package compose

// Visibility holds one flag per category; exactly one is set.
type Visibility []bool

// Project returns the visibility for count groups with active shown.
func Project(count, active int) Visibility {
	v := make(Visibility, count)
	if active >= 0 && active < count {
		v[active] = true
	}
	return v
}

// Visible returns the index of the shown group, or -1.
func (v Visibility) Visible() int {
	for i, shown := range v {
		if shown {
			return i
		}
	}
	return -1
}

// Shown reports whether group i is shown.
func (v Visibility) Shown(i int) bool {
	return i >= 0 && i < len(v) && v[i]
}
