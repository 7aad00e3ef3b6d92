package model

// Project is one entry in the studio showcase.
//
// The `json:"..."` tags match the field names the front-end reads, e.g.
//
//	{"id":1,"title":"Gold Standard","type":"Luxury Advertisement",...}
type Project struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Type         string `json:"type"` // e.g. "Short Film", "Automotive Commercial"
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	VideoURL     string `json:"videoUrl"` // embeddable player URL shown in the modal
}

// NewProject is the input to a project create operation.
type NewProject struct {
	Title        string
	Type         string
	Description  string
	ThumbnailURL string
	VideoURL     string
}
