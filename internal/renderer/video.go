// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// InvalidVideoMessage is rendered in place of the player when a video URL
// cannot be resolved to a known embed format. An explicit placeholder
// beats a silently broken iframe.
const InvalidVideoMessage = "Invalid video URL"

// videoIDRe is the permitted shape of provider video ids.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// EmbedURL resolves a YouTube or Vimeo watch URL into an embeddable
// player URL. The second return value is false when the URL is not
// recognized; callers render InvalidVideoMessage instead.
func EmbedURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	switch host {
	case "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); validVideoID(id) {
			return "https://www.youtube.com/embed/" + id, true
		}
		if id, ok := pathSegmentAfter(u.Path, "embed"); ok && validVideoID(id) {
			return "https://www.youtube.com/embed/" + id, true
		}
		if id, ok := pathSegmentAfter(u.Path, "shorts"); ok && validVideoID(id) {
			return "https://www.youtube.com/embed/" + id, true
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); validVideoID(id) {
			return "https://www.youtube.com/embed/" + id, true
		}
	case "vimeo.com":
		if id := strings.Trim(u.Path, "/"); isDigits(id) {
			return fmt.Sprintf("https://player.vimeo.com/video/%s", id), true
		}
	case "player.vimeo.com":
		if id, ok := pathSegmentAfter(u.Path, "video"); ok && isDigits(id) {
			return fmt.Sprintf("https://player.vimeo.com/video/%s", id), true
		}
	}
	return "", false
}

// pathSegmentAfter returns the path segment following the named one.
func pathSegmentAfter(path, name string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if p == name && i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1], true
		}
	}
	return "", false
}

func validVideoID(id string) bool {
	return id != "" && videoIDRe.MatchString(id)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
