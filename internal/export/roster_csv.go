package export

import (
	"encoding/csv"
	"io"

	"employee-manager/internal/domain"
)

// Payroll CSV template. Keep header order EXACT.
var rosterHeader = []string{
	"EMPLOYEE_ID",
	"EMPLOYEE_NAME",
	"PHONE",
	"SHIFT",
}

// WriteRosterCSV writes a roster snapshot in the payroll import format.
// Rows are ordered by employee id so repeated exports of the same snapshot
// are byte-identical.
func WriteRosterCSV(w io.Writer, roster map[string]domain.Employee) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(rosterHeader); err != nil {
		return err
	}

	for _, id := range SortedIDs(roster) {
		e := roster[id]
		row := []string{id, e.Name, e.Phone, string(e.Shift)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
