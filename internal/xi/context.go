package xi

// TeamCodes are the team codes the XI service accepts.
var TeamCodes = []string{"CSK", "DC", "GT", "KKR", "LSG", "MI", "PK", "RCB", "RR", "SRH"}

// Venues is the fixed venue list offered on the best XI form. The backend
// resolves partial names, so short stadium names are fine.
var Venues = []string{
	"Wankhede",
	"Chepauk",
	"Eden Gardens",
	"Chinnaswamy",
	"Arun Jaitley",
	"Narendra Modi",
	"Rajiv Gandhi",
	"Sawai Mansingh",
	"Ekana",
	"Mullanpur",
}

// TossDecisions are the values the selector understands.
var TossDecisions = []string{"bat", "bowl"}

// PitchConditions is display-only form context; it is never sent upstream.
var PitchConditions = []string{"balanced", "batting", "bowling"}
