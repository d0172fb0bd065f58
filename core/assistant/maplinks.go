package assistant

import (
	"fmt"
	"net/url"
	"strconv"
)

// embedBoundingBoxMargin is the half-width, in degrees, of the bounding
// box rendered around the destination marker.
const embedBoundingBoxMargin = 0.02

// EmbedURL builds the OpenStreetMap embed link centred on the directive's
// destination. It returns an error when the destination coordinates are
// not parseable as decimal degrees.
func (d MapDirective) EmbedURL() (string, error) {
	lat, err := strconv.ParseFloat(d.DestLat, 64)
	if err != nil {
		return "", fmt.Errorf("invalid destination latitude %q: %w", d.DestLat, err)
	}
	lon, err := strconv.ParseFloat(d.DestLon, 64)
	if err != nil {
		return "", fmt.Errorf("invalid destination longitude %q: %w", d.DestLon, err)
	}

	bbox := fmt.Sprintf("%v,%v,%v,%v",
		lon-embedBoundingBoxMargin, lat-embedBoundingBoxMargin,
		lon+embedBoundingBoxMargin, lat+embedBoundingBoxMargin,
	)

	embedURL := url.URL{Scheme: "https", Host: "www.openstreetmap.org", Path: "/export/embed.html"}
	query := embedURL.Query()
	query.Set("bbox", bbox)
	query.Set("layer", "mapnik")
	query.Set("marker", d.DestLat+","+d.DestLon)
	embedURL.RawQuery = query.Encode()
	return embedURL.String(), nil
}

// RouteURL builds the OpenStreetMap directions deep link from the
// directive's origin to its destination. Coordinates are passed through
// as-is; the external routing service validates them.
func (d MapDirective) RouteURL() string {
	routeURL := url.URL{Scheme: "https", Host: "www.openstreetmap.org", Path: "/directions"}
	query := routeURL.Query()
	query.Set("engine", "fossgis_osrm_car")
	query.Set("route", fmt.Sprintf("%s,%s;%s,%s", d.OriginLat, d.OriginLon, d.DestLat, d.DestLon))
	routeURL.RawQuery = query.Encode()
	return routeURL.String()
}
