package views

// AboutView is the static about page. It is public; no session or fetch.
type AboutView struct {
	Title    string
	Mission  string
	Sections []AboutSection
}

// AboutSection is one block of about-page copy.
type AboutSection struct {
	Heading string
	Body    string
}

func NewAboutView() *AboutView {
	return &AboutView{
		Title:   "About CleanEarth",
		Mission: "CleanEarth connects residents who spot waste with volunteers who organize cleanup camps in their neighborhood.",
		Sections: []AboutSection{
			{
				Heading: "Report",
				Body:    "Residents report waste locations with a pincode, coordinates and a short description.",
			},
			{
				Heading: "Organize",
				Body:    "Volunteers in the same pincode see open reports and register cleanup camps against them.",
			},
			{
				Heading: "Clean up",
				Body:    "Camps track participation and completion; volunteers earn points and badges for finished cleanups.",
			},
		},
	}
}
