package model

// Normalized content records. Every field carries a concrete value; the
// presentation layer never null-checks. All records are read-only
// projections of the content store.

// Notice is one announcement. Pinned notices are displayed ahead of the
// rest; ordering otherwise follows the store's descending date sort.
type Notice struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Pinned   bool   `json:"pinned"`
	Views    int    `json:"views"`
	URL      string `json:"url"`
}

// DefaultNoticeCategory is used when a notice has no category set.
const DefaultNoticeCategory = "일반"

// Activity is one activity report.
type Activity struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Date             string   `json:"date"`
	Program          string   `json:"program"`
	Content          string   `json:"content"`
	Location         string   `json:"location"`
	ParticipantCount int      `json:"participantCount"`
	Photos           []string `json:"photos"`
	Tags             []string `json:"tags"`
	URL              string   `json:"url"`
}

// Program is one program listing.
type Program struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Period      string `json:"period"`
	Image       string `json:"image,omitempty"`
	Order       int    `json:"order"`
	Published   bool   `json:"published"`
	URL         string `json:"url"`
}

// DefaultProgramOrder sorts programs without an explicit order last.
const DefaultProgramOrder = 999

// Business is one business information entry.
type Business struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Overview    string   `json:"overview"`
	Goal        string   `json:"goal"`
	Target      string   `json:"target"`
	Content     string   `json:"content"`
	Achievement string   `json:"achievement"`
	Images      []string `json:"images"`
	Order       int      `json:"order"`
	CreatedAt   string   `json:"createdAt"`
}

// Banner is one homepage hero banner.
type Banner struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
	Published   bool   `json:"published"`
}

// ChairmanProfile is the chairman greeting card shown on the about page.
type ChairmanProfile struct {
	Image    *string `json:"image"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
}

// Fallbacks for the chairman profile when the store row is incomplete.
const (
	DefaultChairmanName     = "윤동성"
	DefaultChairmanPosition = "이사장"
)
