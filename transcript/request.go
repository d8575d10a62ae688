package transcript

import "github.com/kbukum/transcript-gateway/util"

// Request is an inbound transcript request. Empty optional fields take the
// configured defaults.
type Request struct {
	URL      string `json:"url" form:"url" validate:"required"`
	Language string `json:"lang" form:"lang" validate:"omitempty,max=16"`
	Text     *bool  `json:"text" form:"text"`
	Mode     string `json:"mode" form:"mode" validate:"omitempty,oneof=native auto generate"`
}

func (r *Request) sanitize() {
	r.URL = util.SanitizeString(r.URL)
	r.Language = util.SanitizeString(r.Language)
	r.Mode = util.SanitizeString(r.Mode)
}
