package lang

// Native converts v into plain Go data: int64, string, or
// map[string]any for dictionaries. Key order is not retained.
func (v Value) Native() any {
	switch v.Kind {
	case KindInteger:
		return v.Integer
	case KindText:
		return v.Text
	case KindDict:
		return v.Dict.ToMap()
	default:
		return nil
	}
}

// ToMap converts d into nested Go maps. See [Value.Native].
func (d *Dict) ToMap() map[string]any {
	m := make(map[string]any, d.Len())

	for k, v := range d.All() {
		m[k] = v.Native()
	}

	return m
}
