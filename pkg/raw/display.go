package raw

// Show renders r using the same canonical spacing the reader accepts back
// in. It exists alongside Raw.String so call sites that only have a Raw,
// and not a concrete pointer type, can render without a type switch.
func Show(r Raw) string {
	return r.String()
}
