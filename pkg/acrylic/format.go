package acrylic

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// String renders the color in the space it was constructed from, e.g.
// "rgb(62, 244, 255)", "hsl(160, 100, 75)", "hex(#3EF4FF)" or
// "name(aquamarine)". Parse reads it back into an equal Color.
func (c *Color) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Format(c.space)
}

// Format renders the color in the given space using the String syntax.
// An unknown space renders as that space with an empty body.
func (c *Color) Format(space Space) string {
	if !space.valid() {
		return space.String() + "()"
	}
	var body string
	switch v := c.resolve(space).(type) {
	case RGB:
		body = fmt.Sprintf("%d, %d, %d", v.R, v.G, v.B)
	case RYB:
		body = fmt.Sprintf("%d, %d, %d", v.R, v.Y, v.B)
	case HSL:
		body = joinReals(v.H, v.S, v.L)
	case HSV:
		body = joinReals(v.H, v.S, v.V)
	case string:
		body = v
	}
	return space.String() + "(" + body + ")"
}

func joinReals(vals ...float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

var callPattern = regexp.MustCompile(`^\s*([A-Za-z]+)\s*\((.*)\)\s*$`)

// Parse reads a color from text. Besides the String form it accepts a bare
// hex code ("#3EF4FF", "3ef") or a bare color name ("light sea green").
//
// Inside the parentheses of a numeric space each channel may be a number,
// "random" (or -1), or a range "lo:hi" whose endpoints may themselves be
// random. "rgb(random)" randomizes every channel.
func Parse(s string) (*Color, error) {
	return ParseWith(defaultValidator, s)
}

// ParseWith is Parse drawing any random values from v.
func ParseWith(v *Validator, s string) (*Color, error) {
	m := callPattern.FindStringSubmatch(s)
	if m == nil {
		return parseBare(v, s)
	}

	space, err := ParseSpace(m[1])
	if err != nil {
		return nil, err
	}
	body := strings.TrimSpace(m[2])

	if space == SpaceHex || space == SpaceName {
		return NewWith(v, Input{id: space.String(), space: space, value: randomOr(body)})
	}

	if isRandomToken(body) {
		return NewWith(v, Input{id: space.String(), space: space, value: Random})
	}
	tokens := strings.Split(body, ",")
	channels := make([]any, len(tokens))
	for i, tok := range tokens {
		channels[i] = parseChannel(tok)
	}
	return NewWith(v, Input{id: space.String(), space: space, value: channels})
}

func parseBare(v *Validator, s string) (*Color, error) {
	if isRandomToken(s) {
		return NewWith(v, WithRGB(Random))
	}
	if c, err := NewWith(v, WithHex(s)); err == nil {
		return c, nil
	}
	c, err := NewWith(v, WithName(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither a hex code nor a color name", ErrInvalidName, s)
	}
	return c, nil
}

// parseChannel reads one channel token: a number, "random" (or -1), or a
// range "lo:hi". Numbers are passed on as strings and checked by the
// validator.
func parseChannel(tok string) any {
	tok = strings.TrimSpace(tok)
	if lo, hi, ok := strings.Cut(tok, ":"); ok {
		return Between(randomOr(strings.TrimSpace(lo)), randomOr(strings.TrimSpace(hi)))
	}
	return randomOr(tok)
}

func randomOr(tok string) any {
	if isRandomToken(tok) {
		return Random
	}
	return tok
}

func isRandomToken(tok string) bool {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "random", "-1", "?":
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (c *Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It only fills a zero
// Color; an already constructed one fails with ErrImmutable.
func (c *Color) UnmarshalText(text []byte) error {
	if c.built {
		return fmt.Errorf("%w: cannot overwrite %s", ErrImmutable, c)
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	c.slots = [spaceCount]atomic.Value{}
	c.space = parsed.space
	c.slots[c.space].Store(parsed.slots[parsed.space].Load())
	c.built = true
	return nil
}

// MarshalYAML implements yaml.Marshaler using the String form.
func (c *Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the rules of UnmarshalText.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: color must be a string: %v", ErrDatatype, err)
	}
	return c.UnmarshalText([]byte(s))
}
