package schedule

// ===============================
// Exception types
// ===============================

const (
	TypeBreak      = "break"
	TypeLunchBreak = "lunch_break"
	TypeClosure    = "closure"
	TypeHoliday    = "holiday"
	TypeVacation   = "vacation"
	TypeOther      = "other"
)

var ExceptionTypes = []string{
	TypeBreak,
	TypeLunchBreak,
	TypeClosure,
	TypeHoliday,
	TypeVacation,
	TypeOther,
}

func IsValidExceptionType(t string) bool {
	for _, v := range ExceptionTypes {
		if v == t {
			return true
		}
	}
	return false
}

// BlockKindOpen marks working-hours background blocks; exception blocks
// carry their exception type as the kind.
const BlockKindOpen = "open"
