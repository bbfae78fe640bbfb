// Package content holds the structured marketing copy served by the site
// content endpoints: brand and contact details, navigation, and project
// summaries. Edit this file to update what the site displays.
package content

// Site is the site-wide configuration block.
type Site struct {
	Brand      Brand     `json:"brand"`
	Contact    Contact   `json:"contact"`
	Social     Social    `json:"social"`
	Navigation []NavItem `json:"navigation"`
}

type Brand struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Website string `json:"website"`
}

type Contact struct {
	Email   string   `json:"email"`
	Phones  []string `json:"phones"`
	Address Address  `json:"address"`
}

type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

type Social struct {
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Project is a summary entry on the projects listing, with the feature
// highlights shown on its card or microsite.
type Project struct {
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	Summary  string    `json:"summary"`
	Tags     []string  `json:"tags"`
	Badge    string    `json:"badge,omitempty"`
	Features []Feature `json:"features,omitempty"`
}

// Feature is a single highlighted selling point with an optional icon.
type Feature struct {
	Icon        Icon   `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// SiteContent returns the site-wide configuration block.
func SiteContent() Site {
	return Site{
		Brand: Brand{
			Name:    "Mother Properties",
			Tagline: "Curated Farmlands & Nature-Led Living",
			Website: "www.motherproperties.net",
		},
		Contact: Contact{
			Email:  "motherpropertiesblr@gmail.com",
			Phones: []string{"+91 98450 42789", "+91 90350 51133"},
			Address: Address{
				Line1:   "#1831, 1st Floor, 41st Cross, 22nd Main",
				Line2:   "Jayanagar 9th Block, Near Jain College",
				City:    "Bangalore",
				Pincode: "560 069",
			},
		},
		Social: Social{
			Instagram: "https://instagram.com/motherproperties",
			LinkedIn:  "https://linkedin.com/company/motherproperties",
		},
		Navigation: []NavItem{
			{Name: "Home", Href: "/"},
			{Name: "About", Href: "/about"},
			{Name: "Projects", Href: "/projects"},
			{Name: "Coffee Prince", Href: "/coffeeprince"},
			{Name: "Contact", Href: "/contact"},
		},
	}
}

// Projects returns the project listing in display order. Icon fields are
// resolved through the closed identifier set before serving.
func Projects() []Project {
	projects := []Project{
		{
			Slug:    "coffeeprince",
			Name:    "Coffee Prince",
			Summary: "Managed coffee farmlands in the Sakleshpur region of the Western Ghats. Approximately 35+ acres of curated farmland blending natural beauty with modern living.",
			Tags:    []string{"Managed Farmland", "Coffee Estate Experience", "Western Ghats"},
			Badge:   "Featured",
			Features: []Feature{
				{Icon: IconSprout, Title: "Managed Plantation", Description: "Professional estate management with sustainable practices."},
				{Icon: IconTrendingUp, Title: "Long-Term Value", Description: "Curated farmland as an appreciating, nature-led asset."},
				{Icon: IconFileCheck, Title: "Titled Land", Description: "Clear ownership documentation and transparent processes."},
				{Icon: IconMapPin, Title: "Sakleshpur, Western Ghats", Description: "Misty hills, lush coffee plantations, rich biodiversity."},
			},
		},
		{
			Slug:    "upcoming-1",
			Name:    "Coming Soon",
			Summary: "New exciting projects in development. Stay tuned for more curated farmland opportunities.",
			Tags:    []string{"Upcoming"},
		},
	}

	for i := range projects {
		for j := range projects[i].Features {
			projects[i].Features[j].Icon = ResolveIcon(projects[i].Features[j].Icon)
		}
	}
	return projects
}

// ProjectBySlug returns the project with the given slug, or false when no
// such project exists.
func ProjectBySlug(slug string) (Project, bool) {
	for _, p := range Projects() {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}
