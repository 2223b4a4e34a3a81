package domain

import (
	"fmt"
	"math"
	"strings"
)

// AnchorKind identifies the variant of an Anchor.
type AnchorKind string

const (
	AnchorKindText     AnchorKind = "text"
	AnchorKindItem     AnchorKind = "item"
	AnchorKindPoint    AnchorKind = "point"
	AnchorKindBox      AnchorKind = "box"
	AnchorKindLine     AnchorKind = "line"
	AnchorKindFreehand AnchorKind = "freehand"
)

func (k AnchorKind) String() string { return string(k) }

// IsShape reports whether the kind is positioned in artifact coordinates.
func (k AnchorKind) IsShape() bool {
	switch k {
	case AnchorKindPoint, AnchorKindBox, AnchorKindLine, AnchorKindFreehand:
		return true
	}
	return false
}

// MaxFreehandPoints bounds the size of a freehand stroke.
const MaxFreehandPoints = 2000

// Anchor is where a revision note points: a text span, the item as a whole,
// or a shape over the canonical rendered artifact. The set of variants is
// closed; see TextSpan, WholeItem, Point, Box, Line and Freehand.
type Anchor interface {
	Kind() AnchorKind
	Validate() error
	anchor()
}

// TextSpan anchors a note to an exact substring of the item body.
type TextSpan struct {
	Exact string
}

// WholeItem anchors a note to the item without a position.
type WholeItem struct{}

// Point is a single location. Coordinates are percentages (0-100) of the
// artifact width and height.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in percentage space.
type Box struct {
	X, Y, W, H float64
}

// Line is a segment in percentage space.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Freehand is an ordered stroke in percentage space.
type Freehand struct {
	Points []Point
}

func (TextSpan) Kind() AnchorKind  { return AnchorKindText }
func (WholeItem) Kind() AnchorKind { return AnchorKindItem }
func (Point) Kind() AnchorKind     { return AnchorKindPoint }
func (Box) Kind() AnchorKind       { return AnchorKindBox }
func (Line) Kind() AnchorKind      { return AnchorKindLine }
func (Freehand) Kind() AnchorKind  { return AnchorKindFreehand }

func (TextSpan) anchor()  {}
func (WholeItem) anchor() {}
func (Point) anchor()     {}
func (Box) anchor()       {}
func (Line) anchor()      {}
func (Freehand) anchor()  {}

func (t TextSpan) Validate() error {
	if strings.TrimSpace(t.Exact) == "" {
		return NewValidationError("anchor.exact", "required")
	}
	return nil
}

func (WholeItem) Validate() error { return nil }

func (p Point) Validate() error {
	return checkPercent("anchor", map[string]float64{"x": p.X, "y": p.Y})
}

func (b Box) Validate() error {
	if err := checkPercent("anchor", map[string]float64{"x": b.X, "y": b.Y, "w": b.W, "h": b.H}); err != nil {
		return err
	}
	var errs []FieldError
	if b.X+b.W > 100 {
		errs = append(errs, FieldError{Field: "anchor.w", Message: "box exceeds artifact width"})
	}
	if b.Y+b.H > 100 {
		errs = append(errs, FieldError{Field: "anchor.h", Message: "box exceeds artifact height"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func (l Line) Validate() error {
	return checkPercent("anchor", map[string]float64{"x1": l.X1, "y1": l.Y1, "x2": l.X2, "y2": l.Y2})
}

func (f Freehand) Validate() error {
	if len(f.Points) < 2 {
		return NewValidationError("anchor.points", "at least 2 points required")
	}
	if len(f.Points) > MaxFreehandPoints {
		return NewValidationError("anchor.points", fmt.Sprintf("max %d points", MaxFreehandPoints))
	}
	for i, p := range f.Points {
		prefix := fmt.Sprintf("anchor.points[%d]", i)
		if err := checkPercent(prefix, map[string]float64{"x": p.X, "y": p.Y}); err != nil {
			return err
		}
	}
	return nil
}

// IsShapeAnchor reports whether a is interpreted against the rendered
// artifact. Shape anchors do not survive artifact replacement.
func IsShapeAnchor(a Anchor) bool {
	return a != nil && a.Kind().IsShape()
}

// ValidateAnchor rejects nil anchors and delegates to the variant.
func ValidateAnchor(a Anchor) error {
	if a == nil {
		return NewValidationError("anchor", "required")
	}
	return a.Validate()
}

func checkPercent(prefix string, values map[string]float64) error {
	var errs []FieldError
	for _, name := range []string{"x", "y", "w", "h", "x1", "y1", "x2", "y2"} {
		v, ok := values[name]
		if !ok {
			continue
		}
		if math.IsNaN(v) || v < 0 || v > 100 {
			errs = append(errs, FieldError{Field: prefix + "." + name, Message: "must be a percentage in [0, 100]"})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
