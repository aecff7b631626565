package discovery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/stoq-client/models"
	"github.com/grandcat/zeroconf"
)

// announcementFromEntry converts a resolved mDNS entry. The first IPv4
// address is preferred over IPv6.
func announcementFromEntry(e *zeroconf.ServiceEntry) (models.ServerAnnouncement, error) {
	var address string
	switch {
	case len(e.AddrIPv4) > 0:
		address = e.AddrIPv4[0].String()
	case len(e.AddrIPv6) > 0:
		address = e.AddrIPv6[0].String()
	default:
		return models.ServerAnnouncement{}, fmt.Errorf("%w: %q has no address", ErrLookupFailure, e.Instance)
	}

	if e.Port <= 0 || e.Port > 65535 {
		return models.ServerAnnouncement{}, fmt.Errorf("%w: %q has port %d", ErrLookupFailure, e.Instance, e.Port)
	}

	return models.ServerAnnouncement{
		Key:        models.ServerKey{Address: address, Port: e.Port},
		Instance:   e.Instance,
		HostName:   e.HostName,
		Properties: parseTXT(e.Text),
	}, nil
}

// parseTXT turns "key=value" TXT strings into a map. A string without "=" is
// a boolean attribute and maps to an empty value.
func parseTXT(records []string) map[string]string {
	props := make(map[string]string, len(records))
	for _, record := range records {
		if record == "" {
			continue
		}
		key, value, _ := strings.Cut(record, "=")
		if key == "" {
			continue
		}
		props[key] = value
	}
	return props
}

// formatTXT is the inverse of parseTXT, sorted by key.
func formatTXT(props map[string]string) []string {
	records := make([]string, 0, len(props))
	for key, value := range props {
		records = append(records, key+"="+value)
	}
	sort.Strings(records)
	return records
}
