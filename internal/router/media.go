package router

import (
	"strings"

	"github.com/HerbHall/nettriage/pkg/models"
)

// mediaTokens maps descriptor substrings to media types. Order matters:
// "Thunderbolt Ethernet" must classify as thunderbolt, so the thunderbolt
// token is consulted before the ethernet one.
var mediaTokens = []struct {
	token string
	media models.MediaType
}{
	{"wi-fi", models.MediaWiFi},
	{"wifi", models.MediaWiFi},
	{"airport", models.MediaWiFi},
	{"thunderbolt", models.MediaThunderbolt},
	{"ethernet", models.MediaEthernet},
	{"usb", models.MediaUSB},
	{"bluetooth", models.MediaBluetooth},
	{"cellular", models.MediaCellular},
	{"mobile", models.MediaCellular},
	{"firewire", models.MediaFireWire},
}

// ifacePrefixes maps interface-name prefixes to media types, consulted only
// when no descriptor token matched. More specific prefixes come first.
var ifacePrefixes = []struct {
	prefix string
	media  models.MediaType
}{
	{"lo", models.MediaLoopback},
	{"utun", models.MediaTunnel},
	{"tun", models.MediaTunnel},
	{"tap", models.MediaTunnel},
	{"wg", models.MediaTunnel},
	{"gif", models.MediaTunnel},
	{"stf", models.MediaTunnel},
	{"ipsec", models.MediaTunnel},
	{"bridge", models.MediaBridge},
	{"br", models.MediaBridge},
	{"awdl", models.MediaWiFi},
	{"wlan", models.MediaWiFi},
	{"wl", models.MediaWiFi},
	{"ww", models.MediaCellular},
	{"fw", models.MediaFireWire},
	{"usb", models.MediaUSB},
	{"bt", models.MediaBluetooth},
	{"pan", models.MediaBluetooth},
	{"eth", models.MediaEthernet},
	{"en", models.MediaEthernet},
}

// classifyMedia determines an interface's media type from its service name
// and hardware descriptor, falling back to interface-name conventions.
func classifyMedia(serviceName, hardware, ifaceName string) models.MediaType {
	descriptor := strings.ToLower(serviceName + " " + hardware)
	for _, t := range mediaTokens {
		if strings.Contains(descriptor, t.token) {
			return t.media
		}
	}

	name := strings.ToLower(ifaceName)
	for _, p := range ifacePrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.media
		}
	}
	return models.MediaUnknown
}
