package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// anchorJSON is the storage and wire envelope for every anchor variant.
type anchorJSON struct {
	Kind   AnchorKind   `json:"kind"`
	Exact  string       `json:"exact,omitempty"`
	X      *float64     `json:"x,omitempty"`
	Y      *float64     `json:"y,omitempty"`
	W      *float64     `json:"w,omitempty"`
	H      *float64     `json:"h,omitempty"`
	X1     *float64     `json:"x1,omitempty"`
	Y1     *float64     `json:"y1,omitempty"`
	X2     *float64     `json:"x2,omitempty"`
	Y2     *float64     `json:"y2,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
}

// EncodeAnchor serializes an anchor into its JSON envelope.
func EncodeAnchor(a Anchor) ([]byte, error) {
	if a == nil {
		return nil, NewValidationError("anchor", "required")
	}

	env := anchorJSON{Kind: a.Kind()}
	switch v := a.(type) {
	case TextSpan:
		env.Exact = v.Exact
	case WholeItem:
	case Point:
		env.X, env.Y = &v.X, &v.Y
	case Box:
		env.X, env.Y, env.W, env.H = &v.X, &v.Y, &v.W, &v.H
	case Line:
		env.X1, env.Y1, env.X2, env.Y2 = &v.X1, &v.Y1, &v.X2, &v.Y2
	case Freehand:
		env.Points = make([][2]float64, len(v.Points))
		for i, p := range v.Points {
			env.Points[i] = [2]float64{p.X, p.Y}
		}
	default:
		return nil, fmt.Errorf("encode anchor: unsupported variant %T", a)
	}

	return json.Marshal(env)
}

// DecodeAnchor parses a JSON envelope produced by EncodeAnchor. It does not
// validate coordinate ranges; call ValidateAnchor for that.
func DecodeAnchor(data []byte) (Anchor, error) {
	var env anchorJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, NewValidationError("anchor", "malformed JSON")
	}

	need := func(fields ...*float64) bool {
		for _, f := range fields {
			if f == nil {
				return false
			}
		}
		return true
	}

	switch env.Kind {
	case AnchorKindText:
		return TextSpan{Exact: env.Exact}, nil
	case AnchorKindItem:
		return WholeItem{}, nil
	case AnchorKindPoint:
		if !need(env.X, env.Y) {
			return nil, NewValidationError("anchor", "point requires x and y")
		}
		return Point{X: *env.X, Y: *env.Y}, nil
	case AnchorKindBox:
		if !need(env.X, env.Y, env.W, env.H) {
			return nil, NewValidationError("anchor", "box requires x, y, w and h")
		}
		return Box{X: *env.X, Y: *env.Y, W: *env.W, H: *env.H}, nil
	case AnchorKindLine:
		if !need(env.X1, env.Y1, env.X2, env.Y2) {
			return nil, NewValidationError("anchor", "line requires x1, y1, x2 and y2")
		}
		return Line{X1: *env.X1, Y1: *env.Y1, X2: *env.X2, Y2: *env.Y2}, nil
	case AnchorKindFreehand:
		pts := make([]Point, len(env.Points))
		for i, p := range env.Points {
			pts[i] = Point{X: p[0], Y: p[1]}
		}
		return Freehand{Points: pts}, nil
	}

	return nil, NewValidationError("anchor.kind", fmt.Sprintf("unknown kind %q", env.Kind))
}

// Legacy tagged-string prefixes.
const (
	legacyImagePrefix = "IMG##"
	legacyTextPrefix  = "TXT##"
)

// ParseAnchorTag decodes a legacy tagged annotation string such as
// "IMG##BOX:10,10,20,20" or "TXT##exact words". It is meant to be called once
// at the API boundary; everything past it works with Anchor values.
func ParseAnchorTag(tag string) (Anchor, error) {
	switch {
	case strings.HasPrefix(tag, legacyTextPrefix):
		return TextSpan{Exact: strings.TrimPrefix(tag, legacyTextPrefix)}, nil
	case strings.HasPrefix(tag, legacyImagePrefix):
	default:
		return nil, NewValidationError("anchor_tag", "unknown prefix")
	}

	body := strings.TrimPrefix(tag, legacyImagePrefix)
	shape, args, ok := strings.Cut(body, ":")
	if !ok {
		return nil, NewValidationError("anchor_tag", "missing shape arguments")
	}

	switch strings.ToUpper(shape) {
	case "POINT":
		v, err := parseFloats(args, 2)
		if err != nil {
			return nil, err
		}
		return Point{X: v[0], Y: v[1]}, nil
	case "BOX":
		v, err := parseFloats(args, 4)
		if err != nil {
			return nil, err
		}
		return Box{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	case "LINE":
		v, err := parseFloats(args, 4)
		if err != nil {
			return nil, err
		}
		return Line{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
	case "FREEHAND":
		var pts []Point
		for _, pair := range strings.Split(args, ";") {
			if strings.TrimSpace(pair) == "" {
				continue
			}
			v, err := parseFloats(pair, 2)
			if err != nil {
				return nil, err
			}
			pts = append(pts, Point{X: v[0], Y: v[1]})
		}
		return Freehand{Points: pts}, nil
	}

	return nil, NewValidationError("anchor_tag", fmt.Sprintf("unknown shape %q", shape))
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, NewValidationError("anchor_tag", fmt.Sprintf("expected %d numbers, got %d", n, len(parts)))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, NewValidationError("anchor_tag", fmt.Sprintf("invalid number %q", p))
		}
		out[i] = v
	}
	return out, nil
}
