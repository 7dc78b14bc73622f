package client

import "strings"

const (
	globalBaseURL = "http://mobile-service.blizzard.com"
	chinaBaseURL  = "http://mobile-service.battlenet.com.cn"
)

// RegionBaseURL returns the provisioning base URL for a two-letter region
// code (case-insensitive). ok is false for unknown regions.
func RegionBaseURL(region string) (url string, ok bool) {
	switch strings.ToUpper(region) {
	case "US", "EU", "KR":
		return globalBaseURL, true
	case "CN":
		return chinaBaseURL, true
	default:
		return "", false
	}
}

// Regions lists the supported region codes.
func Regions() []string {
	return []string{"US", "EU", "KR", "CN"}
}
