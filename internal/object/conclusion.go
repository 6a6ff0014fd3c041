package object

// Conclusion maps a boolean onto its display label and tone
type Conclusion bool

// Label returns "Yes" for true and "No" for false
func (c Conclusion) Label() string {
	if c {
		return "Yes"
	}
	return "No"
}

// Positive reports whether the conclusion should be shown in the success colour
// (green) rather than the failure colour (red)
func (c Conclusion) Positive() bool {
	return bool(c)
}
