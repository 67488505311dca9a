package model

// Setting is one key/value row of the settings table.
type Setting struct {
	ID    int64
	Key   string
	Value string
}

// Settings keys, in the order they are written.
const (
	SettingDeadline        = "deadline"
	SettingReminderMinutes = "reminderMinutes"
	SettingMenuList        = "menuList"
	SettingSideMenuList    = "sideMenuList"
	SettingEmployees       = "employees"
	SettingGoogleSheetURL  = "googleSheetUrl"
)

// Settings is the singleton administrative record. A nil field means the
// key is not stored.
type Settings struct {
	Deadline        *string   `json:"deadline,omitempty"`
	ReminderMinutes *int      `json:"reminderMinutes,omitempty"`
	MenuList        *[]string `json:"menuList,omitempty"`
	SideMenuList    *[]string `json:"sideMenuList,omitempty"`
	Employees       *[]string `json:"employees,omitempty"`
	GoogleSheetURL  *string   `json:"googleSheetUrl,omitempty"`
}
