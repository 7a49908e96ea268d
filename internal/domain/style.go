package domain

// StatusStyle describes how a status renders in the dashboard.
type StatusStyle struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var statusStyles = map[string]StatusStyle{
	string(UploadStatusPending):    {Color: "gray", Icon: "clock"},
	string(UploadStatusProcessing): {Color: "blue", Icon: "spinner"},
	string(UploadStatusCompleted):  {Color: "green", Icon: "check"},
	string(UploadStatusFailed):     {Color: "red", Icon: "cross"},

	string(ValidationStatusValid):   {Color: "green", Icon: "check"},
	string(ValidationStatusInvalid): {Color: "red", Icon: "warning"},

	"chargeback": {Color: "purple", Icon: "undo"},
}

var defaultStyle = StatusStyle{Color: "gray", Icon: "dot"}

// StyleFor returns the display style for a status string. Unknown statuses
// fall back to a neutral style rather than erroring.
func StyleFor(status string) StatusStyle {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return defaultStyle
}
