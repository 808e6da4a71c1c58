package suggestion

// Input is what the user handed in: free text, a PNG screenshot, or both.
type Input struct {
	Text string
	// ImageB64 is base64 PNG data, optionally prefixed with a data URL header.
	ImageB64 string
}

// Proposal is one event as suggested by the model. Fields are passed through
// as the model wrote them; the client reviews them before creating an event.
type Proposal struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	Location        *string `json:"location"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	IsAllDay        bool    `json:"is_all_day"`
	RepeatFrequency string  `json:"repeat_frequency"`
	RepeatUntil     *string `json:"repeat_until"`
	CalendarName    *string `json:"calendar_name"`
}

type SuggestOutput struct {
	Proposals []Proposal
	Provider  string
	Model     string
}
