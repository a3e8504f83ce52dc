package domain

import (
	"fmt"
	"strings"
)

// Shift is the weekday an employee works. The roster only models one shift
// day per employee.
type Shift string

const (
	ShiftMonday    Shift = "Monday"
	ShiftTuesday   Shift = "Tuesday"
	ShiftWednesday Shift = "Wednesday"
	ShiftThursday  Shift = "Thursday"
	ShiftFriday    Shift = "Friday"
	ShiftSaturday  Shift = "Saturday"
	ShiftSunday    Shift = "Sunday"
)

// Shifts lists every valid shift in week order.
func Shifts() []Shift {
	return []Shift{
		ShiftMonday, ShiftTuesday, ShiftWednesday, ShiftThursday,
		ShiftFriday, ShiftSaturday, ShiftSunday,
	}
}

// ParseShift matches a shift value case-insensitively.
func ParseShift(s string) (Shift, error) {
	in := strings.TrimSpace(s)
	for _, sh := range Shifts() {
		if strings.EqualFold(in, string(sh)) {
			return sh, nil
		}
	}
	return "", fmt.Errorf("domain: invalid shift %q", s)
}

// Valid reports whether the shift is one of the 7 weekday values.
func (s Shift) Valid() bool {
	_, err := ParseShift(string(s))
	return err == nil
}

// Employee is one roster record. JSON tags match the wire form used by the
// remote collection.
type Employee struct {
	Name  string `json:"employeeName"`
	Phone string `json:"phone"`
	Shift Shift  `json:"shift"`
	UID   string `json:"uid"`
}
