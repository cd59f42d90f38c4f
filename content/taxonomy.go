package content

// Expertise is one entry of the fixed expertise taxonomy blogs are tagged with.
type Expertise struct {
	ID   int
	Name string
}

// Expertises is the complete expertise taxonomy known to the CMS.
var Expertises = []Expertise{
	{1, "Web Development"},
	{2, "Mobile Development"},
	{3, "Data Science"},
	{4, "Machine Learning"},
	{5, "DevOps"},
	{6, "UI/UX Design"},
	{7, "Cloud Computing"},
	{8, "Cybersecurity"},
}

// ExpertiseName returns the display name for id, or "" if unknown.
func ExpertiseName(id int) string {
	for _, e := range Expertises {
		if e.ID == id {
			return e.Name
		}
	}
	return ""
}

// Choice is a value with a display label and an optional hint.
type Choice struct {
	Value       string
	Label       string
	Description string
}

// JobTypes lists the accepted career listing types.
var JobTypes = []Choice{
	{Value: "Full-time", Label: "Full-time"},
	{Value: "Part-time", Label: "Part-time"},
	{Value: "Contract", Label: "Contract"},
	{Value: "Internship", Label: "Internship"},
	{Value: "Remote", Label: "Remote"},
	{Value: "Freelance", Label: "Freelance"},
	{Value: "Temporary", Label: "Temporary"},
}

// ExperienceLevels lists the seniority bands.
var ExperienceLevels = []Choice{
	{Value: "Entry Level", Label: "Entry Level", Description: "0-2 years experience"},
	{Value: "Junior", Label: "Junior", Description: "1-3 years experience"},
	{Value: "Mid Level", Label: "Mid Level", Description: "3-5 years experience"},
	{Value: "Senior", Label: "Senior", Description: "5-8 years experience"},
	{Value: "Lead", Label: "Lead", Description: "7-10 years experience"},
	{Value: "Manager", Label: "Manager", Description: "8-12 years experience"},
	{Value: "Director", Label: "Director", Description: "10-15 years experience"},
	{Value: "Executive", Label: "Executive", Description: "15+ years experience"},
}

// Genders lists the gender preferences a listing may state.
var Genders = []Choice{
	{Value: "Both", Label: "Both Gender"},
	{Value: "Male", Label: "Male Only"},
	{Value: "Female", Label: "Female Only"},
}

// Categories is the career category taxonomy. Listings store the label.
var Categories = []Choice{
	{Value: "engineering", Label: "Engineering"},
	{Value: "design", Label: "Design"},
	{Value: "marketing", Label: "Marketing"},
	{Value: "sales", Label: "Sales"},
	{Value: "finance", Label: "Finance"},
	{Value: "hr", Label: "Human Resources"},
	{Value: "it", Label: "IT & Support"},
	{Value: "product", Label: "Product Management"},
	{Value: "operations", Label: "Operations"},
	{Value: "customer-service", Label: "Customer Service"},
}

// CategoryLabel maps a category id to its stored label. Unknown ids are
// returned unchanged and then fail validation.
func CategoryLabel(id string) string {
	for _, c := range Categories {
		if c.Value == id {
			return c.Label
		}
	}
	return id
}

// CategoryID maps a stored label back to its id.
func CategoryID(label string) string {
	for _, c := range Categories {
		if c.Label == label {
			return c.Value
		}
	}
	return label
}

func hasLabel(choices []Choice, label string) bool {
	for _, c := range choices {
		if c.Label == label {
			return true
		}
	}
	return false
}

func hasChoice(choices []Choice, v string) bool {
	for _, c := range choices {
		if c.Value == v {
			return true
		}
	}
	return false
}
