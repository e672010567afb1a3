package alerts

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// ToPoints converts alerts into GeoJSON point features, one per alert that
// has a location. Order follows the input.
func ToPoints(alerts []Alert) []*geojson.Feature {
	points := make([]*geojson.Feature, 0, len(alerts))
	for i := range alerts {
		point, ok := centroid(&alerts[i])
		if !ok {
			continue
		}
		feature := geojson.NewFeature(point)
		feature.ID = alerts[i].ID
		feature.Properties = properties(&alerts[i])
		points = append(points, feature)
	}
	return points
}

// ToShape converts an alert's area into a GeoJSON feature. Alerts without an
// area fall back to their centroid.
func ToShape(alert *Alert) (*geojson.Feature, bool) {
	if alert == nil {
		return nil, false
	}
	var geometry orb.Geometry
	if alert.Geometry != nil {
		geometry = alert.Geometry.Geometry()
	}
	if geometry == nil {
		point, ok := centroid(alert)
		if !ok {
			return nil, false
		}
		geometry = point
	}
	feature := geojson.NewFeature(geometry)
	feature.ID = alert.ID
	feature.Properties = properties(alert)
	return feature, true
}

func centroid(alert *Alert) (orb.Point, bool) {
	if alert.Centroid != nil {
		if point, ok := alert.Centroid.Geometry().(orb.Point); ok {
			return point, true
		}
	}
	if alert.Geometry == nil {
		return orb.Point{}, false
	}
	geometry := alert.Geometry.Geometry()
	if geometry == nil {
		return orb.Point{}, false
	}
	if point, ok := geometry.(orb.Point); ok {
		return point, true
	}
	point, _ := planar.CentroidArea(geometry)
	return point, true
}

func properties(alert *Alert) geojson.Properties {
	props := geojson.Properties{
		"id":       alert.ID,
		"event":    alert.Event,
		"severity": alert.Severity,
	}
	if !alert.ExpectedAt.IsZero() {
		props["expectedAt"] = alert.ExpectedAt.UTC().Format(time.RFC3339)
	}
	if alert.Headline != "" {
		props["headline"] = alert.Headline
	}
	return props
}
