package orchestrator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/robot"
)

// inboundHeader is the first `$`-delimited field of an inbound frame.
type inboundHeader string

const (
	headerExplore      inboundHeader = "EXP"
	headerImageExplore inboundHeader = "IR"
	headerWaypoint     inboundHeader = "WP"
	headerStart        inboundHeader = "START"
	headerFastestPath  inboundHeader = "FP"
	headerSensors      inboundHeader = "P"
	headerTerminate    inboundHeader = "QQQQQQ"
)

// inboundFrame is one parsed `$`-delimited inbound message.
type inboundFrame struct {
	header  inboundHeader
	payload string
}

// parseInbound splits a raw inbound line on its header/payload separator.
// It never fails: an empty or malformed line just yields a header that will
// not match any dispatch case and is logged and discarded by the caller.
func parseInbound(line string) inboundFrame {
	parts := strings.SplitN(strings.TrimSpace(line), "$", 2)
	frame := inboundFrame{header: inboundHeader(parts[0])}
	if len(parts) == 2 {
		frame.payload = parts[1]
	}
	return frame
}

var coordPayload = regexp.MustCompile(`^\d+\s\d+$`)

// ErrMalformedCoordinate is returned when a WP or START payload does not
// match the required "<x> <y>" shape.
var ErrMalformedCoordinate = fmt.Errorf("orchestrator: payload does not match \\d+\\s\\d+")

// parseCoordinatePayload validates and decodes a "<x> <y>" payload into an
// external coordinate pair.
func parseCoordinatePayload(payload string) (x, y int, err error) {
	if !coordPayload.MatchString(payload) {
		return 0, 0, ErrMalformedCoordinate
	}
	fields := strings.Fields(payload)
	if x, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, err
	}
	if y, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseSensorPayload decodes a "P$<d1> ... <d6>" payload into one Reading
// per sensor, in wire order. A value of 0 maps to Exhausted (no obstacle in
// range); a negative value maps to Discarded; a positive value maps to
// Detected at that distance.
func parseSensorPayload(payload string) ([]robot.Reading, error) {
	fields := strings.Fields(payload)
	readings := make([]robot.Reading, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		switch {
		case v < 0:
			readings[i] = robot.Reading{Discarded: true}
		case v == 0:
			readings[i] = robot.Reading{Exhausted: true}
		default:
			readings[i] = robot.Reading{Detected: true, Distance: v}
		}
	}
	return readings, nil
}

// formatMDF renders the outbound "a MDF <P1> <P2>" frame.
func formatMDF(p1, p2 string) string {
	return fmt.Sprintf("a MDF %s %s", p1, p2)
}

// formatMotionIndicator renders the leading "hF|" frame that precedes a
// fastest-path motion burst.
func formatMotionIndicator() string {
	return "hF|"
}

// formatPhotoRequest renders the outbound photo-request frame: header "p"
// followed by the target obstacle cell in Imaging coordinates.
func formatPhotoRequest(target geometry.Point) string {
	x, y := toImaging(target)
	return fmt.Sprintf("p %d %d", x, y)
}
