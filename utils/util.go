package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"
)

var HEX_COLOR_REGEX = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
var FLAG_URL_REGEX = regexp.MustCompile(`(?i)^https?://.+\.(png|jpg|jpeg|gif|svg)$`)

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
var seededRandMu sync.Mutex

// Random "#RRGGBB" color, used for newly founded nations.
func RandomHexColor() string {
	seededRandMu.Lock()
	defer seededRandMu.Unlock()

	return fmt.Sprintf("#%06x", seededRand.Intn(0xFFFFFF+1))
}

func ValidHexColor(s string) bool {
	return HEX_COLOR_REGEX.MatchString(s)
}

// Accepts direct image URLs and inline base64 data URLs.
func ValidFlagURL(s string) bool {
	if FLAG_URL_REGEX.MatchString(s) {
		return true
	}

	return len(s) > 11 && s[:11] == "data:image/"
}
