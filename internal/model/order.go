package model

// Guest labels stored in the guest_label column.
const (
	GuestLabel    = "guest"
	EmployeeLabel = "employee"
)

// Order is a single lunch selection as exchanged with callers.
type Order struct {
	Date    string `json:"date"`
	User    string `json:"user"`
	Menu    string `json:"menu"`
	Time    string `json:"time"`
	IsGuest bool   `json:"isGuest"`
}

// OrderRow is a stored order as read back from the orders table.
// Date holds the raw cell: either a string or a time.Time.
type OrderRow struct {
	ID         int64
	Date       any
	User       string
	Menu       string
	Time       string
	GuestLabel string
	UpdatedAt  string
}

// OrderRecord is the full set of columns written for one order row.
type OrderRecord struct {
	Date       string
	User       string
	Menu       string
	Time       string
	GuestLabel string
	UpdatedAt  string
}

// LabelForGuest encodes the guest flag as its stored label.
func LabelForGuest(isGuest bool) string {
	if isGuest {
		return GuestLabel
	}
	return EmployeeLabel
}

// IsGuestLabel decodes a stored label. Anything but GuestLabel is an employee.
func IsGuestLabel(label string) bool {
	return label == GuestLabel
}
