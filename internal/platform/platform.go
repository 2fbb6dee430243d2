// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package platform detects which ride-hailing platform issued a PDF trip
// log and computes the crop region for its table.
//
// Every supported platform prints a recognizable title string and a trip
// counter somewhere in the document text. Detection walks an ordered profile
// list: the order matters because Meituan's counter pattern also matches
// Didi documents, so Didi has to be probed first.
package platform

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/tripconv/pkg/types"
)

// Platform tags, in detection order.
const (
	Didi       = "didi"
	Gaode      = "gaode"
	Shouqi     = "shouqi"
	Meituan    = "meituan"
	Huaxiaozhu = "huaxiaozhu"
	Unknown    = "unknown"
)

// Profile describes how a platform lays out its trip-log table: the text
// markers that identify it and the crop geometry of the table area.
type Profile struct {
	// Tag is the platform identifier (e.g. "didi").
	Tag string

	// titleMarker is the literal title string that identifies the platform.
	titleMarker string

	// countPattern captures the number of trips from the document text.
	countPattern *regexp.Regexp

	// base is the crop region used when the trip count is unknown.
	// A zero region means the whole page is scanned.
	base types.Region

	// growBase and growPerRow recompute the region bottom as
	// growBase + growPerRow * tripCount when the trip count is known.
	growBase   float64
	growPerRow float64

	// Stream selects whitespace-based column detection instead of
	// ruled-line detection.
	Stream bool

	// FirstPageOnly restricts extraction to page 1.
	FirstPageOnly bool
}

// profiles is the ordered platform registry. The region constants are in
// PDF points, top-referenced, measured off each platform's export layout.
var profiles = []*Profile{
	{
		Tag:          Didi,
		titleMarker:  "滴滴出行",
		countPattern: regexp.MustCompile(`共(\d+)笔行程`),
		base:         types.Region{Top: 266, Left: 42.765625, Bottom: 785.028125, Right: 564.134375},
		growBase:     3120.003125,
		growPerRow:   31.2375,
	},
	{
		Tag:          Gaode,
		titleMarker:  "高德地图",
		countPattern: regexp.MustCompile(`共计(\d+)单行程`),
		base:         types.Region{Top: 173, Left: 37.5767, Bottom: 791.3437, Right: 559.1864},
		growBase:     216.9033,
		growPerRow:   30,
		Stream:       true,
	},
	{
		Tag:          Shouqi,
		titleMarker:  "首汽约车电子行程单",
		countPattern: regexp.MustCompile(`共(\d+)个行程`),
		base:         types.Region{Top: 153.584375, Left: 29.378125, Bottom: 817.753125, Right: 566.365625},
		growBase:     176.64062,
		growPerRow:   15.95379,
		Stream:       true,
	},
	{
		Tag:           Meituan,
		titleMarker:   "美团打车",
		countPattern:  regexp.MustCompile(`(\d+)笔行程`),
		base:          types.Region{Top: 285.7275, Left: 41.6925, Bottom: 314.7975, Right: 571.0725},
		growBase:      314.7975,
		growPerRow:    28.305,
		Stream:        true,
		FirstPageOnly: true,
	},
	{
		Tag:          Huaxiaozhu,
		titleMarker:  "花小猪打车",
		countPattern: regexp.MustCompile(`(\d+)笔行程`),
		base:         types.Region{Top: 222, Left: 42, Bottom: 780, Right: 564},
		growBase:     262,
		growPerRow:   31,
	},
}

// unknownProfile is the fallback when no marker matches: whole pages,
// whitespace column detection.
var unknownProfile = &Profile{
	Tag:    Unknown,
	Stream: true,
}

// Meta is the result of inspecting a trip-log PDF.
type Meta struct {
	Platform  string `json:"platform"`
	TripCount int    `json:"trip_count"`
	Pages     int    `json:"pages"`
}

// Lookup returns the profile for a platform tag, falling back to the
// unknown profile.
func Lookup(tag string) *Profile {
	for _, p := range profiles {
		if p.Tag == tag {
			return p
		}
	}
	return unknownProfile
}

// Tags lists the supported platform tags in detection order.
func Tags() []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.Tag)
	}
	return out
}

// DetectText matches the flattened document text against the profile
// registry and returns the platform tag and trip count. Unrecognized text
// yields the unknown tag with a zero count.
func DetectText(content string) (string, int) {
	for _, p := range profiles {
		if p.titleMarker == "" || !strings.Contains(content, p.titleMarker) {
			continue
		}
		count := 0
		if m := p.countPattern.FindStringSubmatch(content); m != nil {
			count, _ = strconv.Atoi(m[1])
		}
		return p.Tag, count
	}
	return Unknown, 0
}

// CropRegion computes the crop region for the given trip count. The bottom
// edge grows linearly with the row count; a zero count keeps the base
// region. Profiles without geometry (unknown) return nil, meaning the whole
// page.
func (p *Profile) CropRegion(tripCount int) *types.Region {
	if p.base == (types.Region{}) {
		return nil
	}
	r := p.base
	if tripCount != 0 {
		r.Bottom = p.growBase + p.growPerRow*float64(tripCount)
	}
	return &r
}
