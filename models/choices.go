package models

// Form vocabularies rendered into the profile edit and search forms.

var Countries = []string{"Australia"}

var Universities = []string{
	"Australian National University (ANU)",
	"University of Sydney",
	"University of Melbourne",
	"University of Queensland",
	"University of New South Wales (UNSW)",
	"Monash University",
	"University of Western Australia (UWA)",
	"University of Adelaide",
	"University of Technology Sydney (UTS)",
	"RMIT University",
	"Macquarie University",
	"Queensland University of Technology (QUT)",
	"University of Newcastle",
	"University of Wollongong",
	"Deakin University",
	"Griffith University",
	"La Trobe University",
	"University of Tasmania",
	"University of South Australia",
	"Curtin University",
	"Swinburne University of Technology",
	"Flinders University",
	"Western Sydney University",
	"James Cook University",
	"University of Canberra",
	"Charles Sturt University",
	"Murdoch University",
	"Victoria University",
	"Bond University",
	"University of New England",
	"Federation University Australia",
}

var Qualifications = []string{
	"High School",
	"Certificate/Diploma",
	"Bachelor",
	"Honours",
	"Master (Coursework)",
	"Master (Research)",
	"PhD",
	"Other",
}

// Any label containing "Student" keeps the supervisor field alive.
var Positions = []string{
	"Undergraduate Student",
	"Honours Student",
	"Master Student",
	"PhD Candidate",
	"Postdoctoral Researcher",
	"Research Assistant",
	"Academic (Lecturer/Senior Lecturer/Professor)",
	"Industry Professional",
	"Other",
}

var Titles = []string{"Mr", "Ms", "Dr", "Prof", "Other"}
