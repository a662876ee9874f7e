package geo

import "testing"

func TestDistanceM(t *testing.T) {
	// Amsterdam to Copenhagen ~ 620 km
	ams := Point{Lat: 52.37, Lng: 4.89}
	cph := Point{Lat: 55.68, Lng: 12.57}
	d := DistanceM(ams, cph)
	if d < 580000 || d > 660000 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestDistanceSymmetricAndZero(t *testing.T) {
	a := Point{Lat: -6.2, Lng: 106.816}
	b := Point{Lat: -6.9175, Lng: 107.6191}
	if DistanceM(a, b) != DistanceM(b, a) {
		t.Fatalf("distance not symmetric")
	}
	if DistanceM(a, a) != 0 {
		t.Fatalf("expected zero distance to self")
	}
}

func TestInterpolate(t *testing.T) {
	a := Point{Lat: 10, Lng: 20}
	b := Point{Lat: 20, Lng: 40}
	mid := Interpolate(a, b, 0.5)
	if mid.Lat != 15 || mid.Lng != 30 {
		t.Fatalf("unexpected midpoint: %+v", mid)
	}
	quarter := Interpolate(a, b, 0.25)
	if quarter.Lat != 12.5 || quarter.Lng != 25 {
		t.Fatalf("unexpected quarter point: %+v", quarter)
	}
}

func TestRoutePosition(t *testing.T) {
	start := Point{Lat: 0, Lng: 0}
	end := Point{Lat: 0, Lng: 10}
	near := Point{Lat: 0, Lng: 2}
	far := Point{Lat: 0, Lng: 8}

	if p := RoutePosition(start, end, start); p != 0 {
		t.Fatalf("expected position 0 at start, got %v", p)
	}
	pNear := RoutePosition(start, end, near)
	pFar := RoutePosition(start, end, far)
	if pNear >= pFar {
		t.Fatalf("expected ordering by position: %v >= %v", pNear, pFar)
	}
	if pFar > 1.01 {
		t.Fatalf("position beyond end: %v", pFar)
	}
}

func TestRoutePositionDegenerate(t *testing.T) {
	p := Point{Lat: 52.37, Lng: 4.89}
	stop := Point{Lat: 50, Lng: 5}
	if pos := RoutePosition(p, p, stop); pos != 0 {
		t.Fatalf("expected 0 for coincident endpoints, got %v", pos)
	}
}
