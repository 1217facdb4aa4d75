package domain

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// AreasOfInterest are the volunteer programs offered on the get-involved page.
var AreasOfInterest = []Option{
	{Value: "education", Label: "Education Programs"},
	{Value: "healthcare", Label: "Healthcare Initiatives"},
	{Value: "water", Label: "Clean Water Projects"},
	{Value: "community", Label: "Community Development"},
	{Value: "admin", Label: "Administrative Support"},
	{Value: "fundraising", Label: "Fundraising & Events"},
}

// Availabilities are the commitment levels a volunteer can choose from.
var Availabilities = []Option{
	{Value: "full-time", Label: "Full-time (40+ hours/week)"},
	{Value: "part-time", Label: "Part-time (20-40 hours/week)"},
	{Value: "flexible", Label: "Flexible (10-20 hours/week)"},
	{Value: "occasional", Label: "Occasional (as needed)"},
	{Value: "remote", Label: "Remote only"},
}

// OptionLabel returns the label for value, or value itself when unknown.
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
