package alarm

// Day selects on which days a slot fires. The first seven values are
// concrete weekdays with Monday == 0, aligned with Weekday's result.
type Day uint8

const (
	// Monday through Sunday restrict the slot to a single weekday.
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	// EachDay fires the slot every day.
	EachDay
	// OneTime fires once; the slot erases itself as part of the match.
	OneTime
	// Workday fires Monday through Friday.
	Workday
	// Weekend fires on Saturday and Sunday.
	Weekend

	// DayStates is the number of selectable day patterns.
	DayStates = 11
)

// workdayCount is the number of weekdays covered by Workday; weekday
// indices at or above it belong to the weekend.
const workdayCount = 5

// dayLabels maps Day+1 to the two-character display abbreviation.
// Index 0 holds the "AL" placeholder shown when the day field is not
// being displayed at all.
var dayLabels = [DayStates + 1]string{
	"AL", "MO", "TU", "WE", "TH", "FR", "SA", "SU", "ED", "1t", "MF", "WN",
}

// UnsetLabel is the placeholder shown in place of a day abbreviation
// outside setting mode.
const UnsetLabel = "AL"

// Label returns the two-character abbreviation for the pattern.
func (d Day) Label() string {
	return dayLabels[d+1]
}

// Next returns the following pattern in the selection cycle, wrapping
// after Weekend back to Monday.
func (d Day) Next() Day {
	return (d + 1) % DayStates
}

// Matches reports whether the pattern covers the given weekday index
// (Monday == 0, Sunday == 6). EachDay and OneTime carry their own
// semantics and are resolved by the trigger evaluator, not here.
func (d Day) Matches(weekday int) bool {
	switch {
	case d <= Sunday:
		return int(d) == weekday
	case d == Workday:
		return weekday < workdayCount
	case d == Weekend:
		return weekday >= workdayCount
	default:
		return false
	}
}
