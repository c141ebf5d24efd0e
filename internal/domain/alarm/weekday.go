package alarm

// Weekday maps a Gregorian calendar date to a weekday index with
// Monday == 0 and Sunday == 6. It uses a Zeller-congruence variant with
// the usual month shift that treats January and February as months 13
// and 14 of the previous year. The RTC delivers local civil time, so no
// timezone handling is involved.
func Weekday(year, month, day int) int {
	if month <= 2 {
		month += 12
		year--
	}

	k := year % 100
	j := year / 100

	// Zeller yields Saturday == 0; the +5 rotates to Monday == 0.
	return (day + 13*(month+1)/5 + k + k/4 + j/4 + 5*j + 5) % 7
}
