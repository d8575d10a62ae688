package transcript

import (
	"net/url"
	"regexp"
	"strings"
)

var youTubeHosts = map[string]bool{
	"youtube.com":              true,
	"www.youtube.com":          true,
	"m.youtube.com":            true,
	"music.youtube.com":        true,
	"youtube-nocookie.com":     true,
	"www.youtube-nocookie.com": true,
	"youtu.be":                 true,
	"www.youtu.be":             true,
}

// Path prefixes whose next segment is the video id.
var youTubeIDPrefixes = map[string]bool{
	"shorts": true,
	"embed":  true,
	"live":   true,
	"v":      true,
}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// YouTubeVideoID extracts the video id from a YouTube URL. It reports
// false for other hosts and for YouTube URLs without a usable id, such as
// channel or search pages.
func YouTubeVideoID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if !youTubeHosts[host] {
		return "", false
	}

	segments := pathSegments(u.Path)
	var id string
	switch {
	case strings.HasSuffix(host, "youtu.be"):
		if len(segments) > 0 {
			id = segments[0]
		}
	case len(segments) == 1 && segments[0] == "watch":
		id = u.Query().Get("v")
	case len(segments) >= 2 && youTubeIDPrefixes[segments[0]]:
		id = segments[1]
	}

	if !videoIDPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

func pathSegments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CanonicalYouTubeURL returns the watch URL for a video id.
func CanonicalYouTubeURL(id string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
}
