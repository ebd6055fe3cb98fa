package models

// Image is a swatch paired with the room photograph it was correlated to.
// Room equals Swatch when no room photograph matched.
type Image struct {
	Name   string `json:"name" yaml:"name"`
	Swatch string `json:"swatch" yaml:"swatch"`
	Room   string `json:"room" yaml:"room"`
}

// UsesFallback reports whether the image has no room photograph of its own.
func (i Image) UsesFallback() bool {
	return i.Room == i.Swatch
}

// SessionSummary is the listing form of a browsing session
type SessionSummary struct {
	ID      string `json:"id"`
	Set     string `json:"set"`
	Current int    `json:"current"`
	Count   int    `json:"count"`
}

// View describes what a coverflow renderer should display
type View struct {
	SessionID string      `json:"session_id,omitempty"`
	Set       string      `json:"set,omitempty"`
	Empty     bool        `json:"empty"`
	Current   int         `json:"current"`
	Title     ViewTitle   `json:"title"`
	Preview   Preview     `json:"preview"`
	Thumbs    []Thumbnail `json:"thumbs"`
}

// ViewTitle is the display title of the selected image. Sub is empty when
// the filename carried no sub-title.
type ViewTitle struct {
	Main string `json:"main"`
	Sub  string `json:"sub,omitempty"`
}

// Preview is the large image shown for the current selection
type Preview struct {
	Src      string `json:"src"`
	Swatch   string `json:"swatch"`
	Fallback bool   `json:"fallback"`
}

// Thumbnail is one coverflow entry
type Thumbnail struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Src   string `json:"src"`
	Role  string `json:"role"`
}
