package domain

// ManifestTimeLayout renders day-month-year, 12h clock, meridiem and zone abbreviation
const ManifestTimeLayout = "02-01-2006 03:04 PM MST"

// ManifestRecord describes one generated image
type ManifestRecord struct {
	Key       string `json:"key"`
	Quote     string `json:"quote"`
	Author    string `json:"author"`
	ImageType string `json:"image_type"`
	Time      string `json:"time"`
}

// Manifest is the list of generated images, newest first
type Manifest []ManifestRecord

// Prepend returns a new manifest with r at the head
func (m Manifest) Prepend(r ManifestRecord) Manifest {
	out := make(Manifest, 0, len(m)+1)
	out = append(out, r)
	return append(out, m...)
}
