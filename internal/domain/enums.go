package domain

type Frequency string

const (
	FrequencyDaily  Frequency = "DAILY"
	FrequencyWeekly Frequency = "WEEKLY"
)

// ValidFrequencies is the canonical set of accepted frequency strings.
var ValidFrequencies = map[string]bool{
	"DAILY": true, "WEEKLY": true,
}

// HabitDayStatus classifies a single due habit on a single date.
type HabitDayStatus string

const (
	HabitComplete HabitDayStatus = "complete"
	HabitMissed   HabitDayStatus = "missed"
	HabitUnlogged HabitDayStatus = "unlogged"
)

// DayStatus classifies a whole calendar day across a user's habit set.
type DayStatus string

const (
	DayFuture     DayStatus = "future"
	DayInactive   DayStatus = "inactive"
	DayIncomplete DayStatus = "incomplete"
	DayPartial    DayStatus = "partial"
	DayComplete   DayStatus = "complete"
)
