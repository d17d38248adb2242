package service

import (
	"github.com/amterp/camtint/internal/allocate"
	"github.com/amterp/camtint/internal/angle"
	camerr "github.com/amterp/camtint/internal/errors"
	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/provider"
)

// Mode selects how angle colors are chosen.
type Mode string

const (
	ModeAuto       Mode = "auto"
	ModeManual     Mode = "manual"
	ModeIndividual Mode = "individual"
)

// ParseMode validates a mode string. Empty defaults to auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeManual:
		return ModeManual, nil
	case ModeIndividual:
		return ModeIndividual, nil
	default:
		return "", camerr.InvalidMode(s)
	}
}

// ClipScan is the detection result for one clip.
type ClipScan struct {
	Track    string
	Kind     model.TrackKind
	Name     string
	Angle    int
	Detected bool
}

// ScanResult is a full pass over the timeline's clips.
type ScanResult struct {
	Clips  []ClipScan
	Angles []int // distinct detected angles, ascending
}

// ColorizeService runs the scan/allocate/apply pipeline over a timeline
// provider. All state is per-call; the service itself is stateless.
type ColorizeService struct {
	// Debug forwards undetectable clip names to the scanner's debug log.
	Debug bool
}

// NewColorizeService creates a new colorize service.
func NewColorizeService() *ColorizeService {
	return &ColorizeService{}
}

// scanKinds is the order clip collections are visited: video first,
// then audio, matching track enumeration everywhere else.
var scanKinds = []model.TrackKind{model.TrackVideo, model.TrackAudio}

// Scan visits every clip once, running angle detection and collecting
// the distinct angle set.
func (s *ColorizeService) Scan(p provider.Provider) *ScanResult {
	scanner := angle.NewScanner()
	scanner.Debug = s.Debug

	result := &ScanResult{}
	for _, kind := range scanKinds {
		for _, clip := range p.Clips(kind) {
			n, ok := scanner.Add(clip.Name())
			result.Clips = append(result.Clips, ClipScan{
				Kind:     kind,
				Name:     clip.Name(),
				Angle:    n,
				Detected: ok,
			})
		}
	}
	result.Angles = scanner.Sorted()
	return result
}

// Allocate builds the angle-color map for the given mode. Automatic
// mode consumes the ascending angle list; manual and individual modes
// consume selector rows. Structurally invalid rows produce a partial or
// empty map rather than an error—the reporter flags anomalies.
func (s *ColorizeService) Allocate(mode Mode, angles []int, prefs map[int]model.ColorName, rows []allocate.Row) model.AngleColorMap {
	alloc := allocate.New(prefs)

	switch mode {
	case ModeManual:
		return alloc.Manual(rows)
	case ModeIndividual:
		if len(rows) == 0 {
			return model.AngleColorMap{}
		}
		return alloc.Individual(rows[0])
	default:
		return alloc.Automatic(angles)
	}
}

// Apply re-scans every clip and sets its color when its detected angle
// has a map entry. Returns the number of acknowledged color sets.
// Undetectable clips, unmapped angles and rejected set calls are all
// skipped without aborting the rest.
func (s *ColorizeService) Apply(m model.AngleColorMap, p provider.Provider) int {
	applied := 0
	for _, kind := range scanKinds {
		for _, clip := range p.Clips(kind) {
			n, ok := angle.Detect(clip.Name())
			if !ok {
				continue
			}
			color, mapped := m[n]
			if !mapped {
				continue
			}
			if clip.SetColor(color) {
				applied++
			}
		}
	}
	return applied
}
