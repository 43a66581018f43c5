package toolchain

// Constant is a wrapped configuration token (MODE or SCHEDULE) threaded
// through to every backend tool that accepts semantic-variant selection.
// The raw environment value is wrapped into the constructor syntax the
// toolchain's parsers consume; backend tools never see the raw string.
type Constant struct {
	name string
}

// NewMode wraps a raw MODE value (e.g. "NORMAL").
func NewMode(raw string) Constant {
	return Constant{name: raw}
}

// NewSchedule wraps a raw SCHEDULE value, applying the schedule-tagging
// convention: "LONDON" becomes the LONDON_EVM constant.
func NewSchedule(raw string) Constant {
	return Constant{name: raw + "_EVM"}
}

// Token renders the backtick-quoted constant form consumed by the
// interpreter's text parser: `NAME`.
func (c Constant) Token() string {
	return "`" + c.name + "`"
}

// Apply renders the constructor application form consumed by krun's
// configuration-variable parser: `NAME`(.KList).
func (c Constant) Apply() string {
	return "`" + c.name + "`(.KList)"
}

func (c Constant) String() string {
	return c.name
}
