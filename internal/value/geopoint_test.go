package value

import "testing"

func TestGeoPointPoleNormalization(t *testing.T) {
	p := GeoPointFromDegrees(90, 123)
	if p.LonMs != 0 {
		t.Errorf("longitude at north pole should be forced to 0, got %d", p.LonMs)
	}
	p2 := GeoPointFromDegrees(-90, -45)
	if p2.LonMs != 0 {
		t.Errorf("longitude at south pole should be forced to 0, got %d", p2.LonMs)
	}
}

func TestGeoPointOutOfRangeIsNA(t *testing.T) {
	if !GeoPointFromDegrees(91, 0).IsNA() {
		t.Errorf("latitude 91 should be N/A")
	}
	if !GeoPointFromDegrees(0, 181).IsNA() {
		t.Errorf("longitude 181 should be N/A")
	}
}

func TestGeoPointEqualPropagatesNA(t *testing.T) {
	p := GeoPointFromDegrees(1, 2)
	if got := p.Equal(GeoPointNA); got != NA {
		t.Errorf("comparison with NA GeoPoint should be NA, got %v", got)
	}
}

func TestGeoPointDegreesRoundTrip(t *testing.T) {
	p := GeoPointFromDegrees(12.5, -34.25)
	lat, lon := p.Degrees()
	if lat < 12.49 || lat > 12.51 {
		t.Errorf("lat round trip = %v, want ~12.5", lat)
	}
	if lon < -34.26 || lon > -34.24 {
		t.Errorf("lon round trip = %v, want ~-34.25", lon)
	}
}
