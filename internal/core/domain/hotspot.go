package domain

import "time"

// FireHotspot is a single satellite fire detection. It is only held for
// rendering and is never persisted.
type FireHotspot struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	AcquisitionDate string  `json:"acq_date"`
	Confidence      string  `json:"confidence"`
	Brightness      float64 `json:"brightness"`
}

// HotspotSnapshot is a set of hotspots fetched for one sensor and day window.
type HotspotSnapshot struct {
	Sensor    string        `json:"sensor"`
	Days      int           `json:"days"`
	FetchedAt time.Time     `json:"fetched_at"`
	Hotspots  []FireHotspot `json:"hotspots"`
}
