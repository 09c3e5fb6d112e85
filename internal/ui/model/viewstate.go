package model

// Generation counts refresh cycles. Responses stamped with an older generation
// than the current one are discarded on arrival.
type Generation uint64

// Page is the active highest level page model. Pages represent a complete
// standalone "screen" that occupies the entire terminal with the exception of
// the footer.
type Page int

const (
	PageMain Page = iota
	PageConfig
	PageHelp
)

// Section defines which "section" or "tab" within the main page is active.
type Section int

const (
	SectionAuction Section = iota
	SectionAnalytics
	SectionSquad
	SectionXI
)

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page    Page
	Section Section
	// KeyZone defines which area, usually drawn with a model.Container, is
	// active and accepting user keyboard inputs.
	KeyZone KeyZone
	// Gen is the current fetch generation.
	Gen Generation

	// --------- h
	// | Upper | e
	// |-------- i
	// | Lower | g
	// --------- h
	// W i d t h t
	Upper  int
	Lower  int
	Height int
	Width  int
}
