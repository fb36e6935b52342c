package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	BracketColor ColorAttr = iota
	NameColor
	InsertColor
	DeleteColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[BracketColor] = color.RGB(128, 128, 160).SprintfFunc()
	colors.Map[NameColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[InsertColor] = color.GreenString
	colors.Map[DeleteColor] = color.RedString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
