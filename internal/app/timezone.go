package app

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

// cityZones is checked in order; the first city contained in a destination's
// leading name segment wins.
var cityZones = []struct{ city, zone string }{
	{"sydney", "Australia/Sydney"},
	{"melbourne", "Australia/Melbourne"},
	{"tokyo", "Asia/Tokyo"},
	{"kyoto", "Asia/Tokyo"},
	{"rio de janeiro", "America/Sao_Paulo"},
	{"são paulo", "America/Sao_Paulo"},
	{"bora bora", "Pacific/Tahiti"},
	{"copacabana", "America/Sao_Paulo"},
}

func timeZoneFor(name string) string {
	city := strings.TrimSpace(strings.ToLower(firstSegment(name)))
	for _, cz := range cityZones {
		if strings.Contains(city, cz.city) {
			return cz.zone
		}
	}
	return ""
}

func (r *Renderer) localTime(zone string) string {
	if zone == "" {
		return ""
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Debug().Err(err).Str("zone", zone).Msg("time zone not supported")
		return ""
	}
	return r.now().In(loc).Format("3:04:05 PM")
}
