package stylesheet

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	"github.com/alexisbeaulieu97/quill/internal/ui/sections"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	"github.com/alexisbeaulieu97/quill/internal/ui/theme"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is the compiled rule for one class. Media names a theme breakpoint;
// empty means the rule applies at every width. A rule may carry no
// declarations when its value is neutral (e.g. column_md_inherit).
type Rule struct {
	Class        style.Class
	Media        string
	Selector     string
	Declarations []Declaration
}

type ruleTable map[style.Class]Rule

func (t ruleTable) add(class style.Class, decls ...Declaration) {
	t[class] = Rule{Class: class, Declarations: decls}
}

func (t ruleTable) addMedia(media string, class style.Class, decls ...Declaration) {
	t[class] = Rule{Class: class, Media: media, Declarations: decls}
}

func (t ruleTable) addSelector(class style.Class, selector string, decls ...Declaration) {
	t[class] = Rule{Class: class, Selector: selector, Declarations: decls}
}

func d(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

func id(block, key, value string) style.Class {
	return style.Class(block + "_" + key + "_" + value)
}

// buildTable compiles declarations for every class the blocks below know
// about. Classes the registry produces but the table lacks are reported by
// Generate.
func buildTable(t theme.Theme) (ruleTable, error) {
	table := ruleTable{}
	builders := []func(ruleTable, theme.Theme) error{
		containerRules,
		rowRules,
		columnRules,
		boxRules,
		typographyRules,
		paragraphRules,
		linkRules,
		sectionRules,
	}
	for _, build := range builders {
		if err := build(table, t); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func lookup(scale theme.Scale, name, step string) (string, error) {
	v, ok := scale.Lookup(step)
	if !ok {
		return "", fmt.Errorf("theme %s scale has no step %q", name, step)
	}
	return v, nil
}

func containerRules(table ruleTable, t theme.Theme) error {
	b := components.BlockContainer
	table.add(style.Class(b),
		d("box-sizing", "border-box"),
		d("margin", "0 auto"),
		d("padding", "0 1rem"),
		d("width", "100%"),
	)
	table.add(id(b, "width", string(components.WidthFixed)), d("max-width", t.Container))
	table.add(id(b, "width", string(components.WidthFluid)), d("max-width", "none"))
	return nil
}

func rowRules(table ruleTable, t theme.Theme) error {
	b := components.BlockRow
	table.add(style.Class(b), d("display", "flex"), d("flex-direction", "row"))

	align := map[components.AlignItems]string{
		components.AlignItemsFlex:    "normal",
		components.AlignItemsStart:   "flex-start",
		components.AlignItemsEnd:     "flex-end",
		components.AlignItemsCenter:  "center",
		components.AlignItemsStretch: "stretch",
	}
	for k, v := range align {
		table.add(id(b, "alignItems", string(k)), d("align-items", v))
	}

	justify := map[components.Justify]string{
		components.JustifyStart:        "flex-start",
		components.JustifyEnd:          "flex-end",
		components.JustifyCenter:       "center",
		components.JustifySpaceBetween: "space-between",
		components.JustifySpaceAround:  "space-around",
	}
	for k, v := range justify {
		table.add(id(b, "justify", string(k)), d("justify-content", v))
	}

	for _, g := range components.Gutter("").Values() {
		v, err := lookup(t.Gutters, "gutter", g)
		if err != nil {
			return err
		}
		table.add(id(b, "paddings", g), d("gap", v))
	}

	table.add(id(b, "wrap", "yes"), d("flex-wrap", "wrap"))
	return nil
}

func columnRules(table ruleTable, t theme.Theme) error {
	b := components.BlockColumn
	table.add(style.Class(b), d("box-sizing", "border-box"), d("min-width", "0"))

	span := func(n int) []Declaration {
		pct := strconv.FormatFloat(float64(n)*100/float64(components.GridColumns), 'f', 4, 64) + "%"
		return []Declaration{d("flex", "0 0 "+pct), d("max-width", pct)}
	}
	auto := []Declaration{d("flex", "0 0 auto"), d("width", "auto"), d("max-width", "none")}

	table.add(id(b, "xs", string(components.SpanAuto)), auto...)
	for n := 1; n <= components.GridColumns; n++ {
		table.add(id(b, "xs", strconv.Itoa(n)), span(n)...)
	}

	for _, bp := range []string{"md", "lg"} {
		if _, ok := t.Breakpoint(bp); !ok {
			return fmt.Errorf("theme has no %s breakpoint", bp)
		}
		table.add(id(b, bp, string(components.SpanInherit)))
		table.addMedia(bp, id(b, bp, string(components.SpanAuto)), auto...)
		for n := 1; n <= components.GridColumns; n++ {
			table.addMedia(bp, id(b, bp, strconv.Itoa(n)), span(n)...)
		}
	}
	return nil
}

func toneBackground(t theme.Theme, tone components.Tone) []Declaration {
	switch tone {
	case components.TonePrimary:
		return []Declaration{d("background", t.Palette.Primary.Base), d("color", t.Palette.Primary.OnBase)}
	case components.ToneSecondary:
		return []Declaration{d("background", t.Palette.Secondary.Base), d("color", t.Palette.Secondary.OnBase)}
	default:
		return []Declaration{d("background", "transparent")}
	}
}

func toneBorder(t theme.Theme, tone components.Tone) []Declaration {
	switch tone {
	case components.TonePrimary:
		return []Declaration{d("border-bottom", t.BorderWidth+" solid "+t.Palette.Primary.Base)}
	case components.ToneSecondary:
		return []Declaration{d("border-bottom", t.BorderWidth+" solid "+t.Palette.Secondary.Muted)}
	default:
		return []Declaration{d("border-bottom", "0")}
	}
}

func boxRules(table ruleTable, t theme.Theme) error {
	b := components.BlockBox
	table.add(style.Class(b), d("box-sizing", "border-box"), d("width", "100%"))

	for _, step := range components.Spacing("").Values() {
		v, err := lookup(t.Spacing, "spacing", step)
		if err != nil {
			return err
		}
		table.add(id(b, "paddingTop", step), d("padding-top", v))
		table.add(id(b, "paddingBottom", step), d("padding-bottom", v))
	}

	for _, tone := range components.Tone("").Values() {
		table.add(id(b, "background", tone), toneBackground(t, components.Tone(tone))...)
		table.add(id(b, "borderBottom", tone), toneBorder(t, components.Tone(tone))...)
	}
	return nil
}

func fontSizes(table ruleTable, t theme.Theme, block string, steps []string) error {
	for _, step := range steps {
		v, err := lookup(t.FontSizes, "font size", step)
		if err != nil {
			return err
		}
		table.add(id(block, "font", step), d("font-size", v))
	}
	return nil
}

func typographyRules(table ruleTable, t theme.Theme) error {
	b := components.BlockTypography
	table.add(style.Class(b), d("line-height", t.LineHeight))
	if err := fontSizes(table, t, b, components.FontSize("").Values()); err != nil {
		return err
	}
	table.add(id(b, "color", string(components.TextColorDefault)), d("color", "inherit"))
	table.add(id(b, "color", string(components.TextColorPrimary)), d("color", t.Palette.Primary.Base))
	table.add(id(b, "color", string(components.TextColorSecondary)), d("color", t.Palette.Secondary.OnBase))
	table.add(id(b, "caps", "yes"), d("text-transform", "uppercase"), d("letter-spacing", "0.05em"))
	table.add(id(b, "bold", "yes"), d("font-weight", "700"))
	return nil
}

func paragraphRules(table ruleTable, t theme.Theme) error {
	b := components.BlockParagraph
	table.add(style.Class(b), d("margin", "0 0 1rem"), d("line-height", t.LineHeight))
	if err := fontSizes(table, t, b, []string{
		string(components.FontSizeS), string(components.FontSizeM), string(components.FontSizeL),
	}); err != nil {
		return err
	}
	table.add(id(b, "bold", "yes"), d("font-weight", "700"))
	return nil
}

func linkRules(table ruleTable, t theme.Theme) error {
	b := components.BlockLink
	table.add(style.Class(b), d("text-decoration", "none"))
	table.add(id(b, "type", string(components.LinkTypePrimary)), d("color", t.Palette.Primary.Base))
	table.add(id(b, "type", string(components.LinkTypeSecondary)), d("color", t.Palette.Text.Muted))
	return nil
}

func sectionRules(table ruleTable, t theme.Theme) error {
	table.add(sections.BlockPage,
		d("margin", "0"),
		d("font-family", t.FontFamily),
		d("color", t.Palette.Text.Base),
		d("background", t.Palette.Surface.Base),
	)
	table.add(sections.BlockPageMain, d("display", "block"), d("min-height", "60vh"))
	table.add(sections.BlockFooter, d("display", "block"))
	table.add(sections.BlockFooterLogo, d("display", "block"), d("height", "48px"))
	table.add(sections.BlockFooterSocialLink, d("color", t.Palette.Secondary.OnBase), d("margin-left", "0.75rem"))
	table.add(sections.BlockFooterSocialIcon, d("vertical-align", "middle"))
	table.add(sections.BlockHeader, d("display", "block"))
	table.add(sections.BlockHeaderLogo, d("height", "32px"), d("margin-right", "0.5rem"), d("vertical-align", "middle"))
	table.addSelector(sections.BlockHeaderNav, "."+sections.BlockHeaderNav+" > * + *", d("margin-left", "1rem"))
	table.add(sections.BlockBio, d("display", "block"))
	table.add(sections.BlockBioEmail, d("color", t.Palette.Primary.Base))
	return nil
}
