// Package jobs serves the placeholder job listings of the job browser. There
// is no real job-board integration; "applying" seeds a resume session with the
// listing's details.
package jobs

// Listing is one static job-board entry.
type Listing struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Salary   string   `json:"salary"`
	Match    string   `json:"match"`
	Tags     []string `json:"tags"`
}

var listings = []Listing{
	{ID: 1, Title: "Senior Frontend Engineer", Company: "TechFlow", Location: "Remote", Salary: "$140k - $180k", Match: "98%", Tags: []string{"Full-time", "React", "Node.js"}},
	{ID: 2, Title: "Product Designer", Company: "Nexus AI", Location: "San Francisco, CA", Salary: "$120k - $160k", Match: "92%", Tags: []string{"Full-time", "Figma", "Design Systems"}},
	{ID: 3, Title: "Full Stack Developer", Company: "CloudScale", Location: "New York, NY", Salary: "$130k - $170k", Match: "85%", Tags: []string{"Full-time", "Go", "React"}},
}

func All() []Listing {
	out := make([]Listing, len(listings))
	copy(out, listings)
	return out
}

func Find(id int) (Listing, bool) {
	for _, l := range listings {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}

// Description renders the listing as job-description text for seeding a
// session created from an "apply" action.
func (l Listing) Description() string {
	return l.Title + " at " + l.Company + " (" + l.Location + "). Salary: " + l.Salary + "."
}
