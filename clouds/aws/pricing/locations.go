// Package pricing - Region to Price List location names
package pricing

// The Price List API filters on human-readable location names, not
// region codes.
var locationNames = map[string]string{
	"us-east-1": "US East (N. Virginia)",
	"us-east-2": "US East (Ohio)",
	"us-west-1": "US West (N. California)",
	"us-west-2": "US West (Oregon)",
	"eu-west-1": "EU (Ireland)",
	"eu-central-1": "EU (Frankfurt)",
	"ap-southeast-1": "Asia Pacific (Singapore)",
	"ap-southeast-2": "Asia Pacific (Sydney)",
	"ap-northeast-1": "Asia Pacific (Tokyo)",
}

// LocationName maps a region code to its Price List location name
func LocationName(region string) (string, bool) {
	name, ok := locationNames[region]
	return name, ok
}
