package domain

// Column headers of the case upload sheet, in sheet order.
const (
	ColumnCaseNumber    = "Case Number"
	ColumnFirstName     = "First Name"
	ColumnLastName      = "Last Name"
	ColumnContactNumber = "Contact Number"
	ColumnEmail         = "Email"
	ColumnAddress       = "Address"
	ColumnState         = "State"
	ColumnDistrict      = "District"
	ColumnPincode       = "Pincode"
)

// CaseColumns returns the fixed column schema of a case upload sheet.
func CaseColumns() []string {
	return []string{
		ColumnCaseNumber,
		ColumnFirstName,
		ColumnLastName,
		ColumnContactNumber,
		ColumnEmail,
		ColumnAddress,
		ColumnState,
		ColumnDistrict,
		ColumnPincode,
	}
}

// CaseRecord is one row of a case upload sheet. Field order matches CaseColumns.
type CaseRecord struct {
	CaseNumber    string
	FirstName     string
	LastName      string
	ContactNumber string
	Email         string
	Address       string
	State         string
	District      string
	Pincode       string
}

// Values returns the record's cells in column order.
func (c CaseRecord) Values() []string {
	return []string{
		c.CaseNumber,
		c.FirstName,
		c.LastName,
		c.ContactNumber,
		c.Email,
		c.Address,
		c.State,
		c.District,
		c.Pincode,
	}
}
