package coerce

// color is an ordinal enumeration fixture.
type color int

const (
	red color = iota
	green
	blue
)

var colorNames = [...]string{"red", "green", "blue"}

func (c color) Name() string { return colorNames[c] }
func (c color) Ordinal() int { return int(c) }

// priority is value-backed with a numeric payload distinct from the ordinal.
type priority int

const (
	low priority = iota
	high
)

var priorityNames = [...]string{"low", "high"}

func (p priority) Name() string { return priorityNames[p] }
func (p priority) Ordinal() int { return int(p) }
func (p priority) Value() any { return int(p+1) * 10 }

// region is value-backed with a string payload.
type region int

const (
	east region = iota
	west
)

var regionNames = [...]string{"East", "West"}
var regionCodes = [...]string{"us-east-1", "us-west-2"}

func (r region) Name() string { return regionNames[r] }
func (r region) Ordinal() int { return int(r) }
func (r region) Value() any { return regionCodes[r] }
