// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

// Overrides is a partial Config applied on top of a base theme for one
// funnel. Granularity is one level deep per category: a present field
// replaces the corresponding base value wholesale. In particular, supplying
// colors.background replaces the entire nested object — sub-keys the
// override omits come back as zero values, they are NOT merged from the
// base. Product has not confirmed whether that wholesale replacement is
// intended; until it does, Merge keeps the behavior exactly as shipped.
type Overrides struct {
	Colors     *ColorsOverride     `json:"colors,omitempty"`
	Typography *TypographyOverride `json:"typography,omitempty"`
	Spacing    *SpacingOverride    `json:"spacing,omitempty"`
	Animations *AnimationsOverride `json:"animations,omitempty"`
	Borders    *BordersOverride    `json:"borders,omitempty"`
	Shadows    *ShadowsOverride    `json:"shadows,omitempty"`
	Effects    *EffectsOverride    `json:"effects,omitempty"`
}

// ColorsOverride overrides direct children of the colors category.
type ColorsOverride struct {
	Primary    *string     `json:"primary,omitempty"`
	Secondary  *string     `json:"secondary,omitempty"`
	Accent     *string     `json:"accent,omitempty"`
	Background *Background `json:"background,omitempty"`
	Text       *TextColors `json:"text,omitempty"`
	Border     *string     `json:"border,omitempty"`
	Shadow     *string     `json:"shadow,omitempty"`
}

// TypographyOverride overrides direct children of the typography category.
type TypographyOverride struct {
	Fonts       *Fonts       `json:"fonts,omitempty"`
	Sizes       *TypeSizes   `json:"sizes,omitempty"`
	Weights     *Weights     `json:"weights,omitempty"`
	LineHeights *LineHeights `json:"lineHeights,omitempty"`
}

// SpacingOverride overrides direct children of the spacing category.
type SpacingOverride struct {
	Section *SizePair `json:"section,omitempty"`
	Element *SizePair `json:"element,omitempty"`
	Tight   *string   `json:"tight,omitempty"`
	Normal  *string   `json:"normal,omitempty"`
	Loose   *string   `json:"loose,omitempty"`
}

// AnimationsOverride overrides direct children of the animations category.
type AnimationsOverride struct {
	Entrances   *Entrances   `json:"entrances,omitempty"`
	Hover       *Hover       `json:"hover,omitempty"`
	Transitions *Transitions `json:"transitions,omitempty"`
}

// BordersOverride overrides direct children of the borders category.
type BordersOverride struct {
	Radius *Radii  `json:"radius,omitempty"`
	Width  *string `json:"width,omitempty"`
}

// ShadowsOverride overrides direct children of the shadows category.
type ShadowsOverride struct {
	None   *string `json:"none,omitempty"`
	Small  *string `json:"sm,omitempty"`
	Medium *string `json:"md,omitempty"`
	Large  *string `json:"lg,omitempty"`
	Glow   *string `json:"glow,omitempty"`
}

// EffectsOverride overrides direct children of the effects category.
type EffectsOverride struct {
	Blur    *string `json:"blur,omitempty"`
	Opacity *string `json:"opacity,omitempty"`
}

// Merge applies overrides on top of a base configuration and returns the
// result. The base is never mutated; repeated calls with identical inputs
// yield structurally identical output. A nil overrides pointer returns the
// base unchanged.
func Merge(base Config, overrides *Overrides) Config {
	out := base
	if overrides == nil {
		return out
	}

	if o := overrides.Colors; o != nil {
		setString(&out.Colors.Primary, o.Primary)
		setString(&out.Colors.Secondary, o.Secondary)
		setString(&out.Colors.Accent, o.Accent)
		if o.Background != nil {
			out.Colors.Background = *o.Background
		}
		if o.Text != nil {
			out.Colors.Text = *o.Text
		}
		setString(&out.Colors.Border, o.Border)
		setString(&out.Colors.Shadow, o.Shadow)
	}

	if o := overrides.Typography; o != nil {
		if o.Fonts != nil {
			out.Typography.Fonts = *o.Fonts
		}
		if o.Sizes != nil {
			out.Typography.Sizes = *o.Sizes
		}
		if o.Weights != nil {
			out.Typography.Weights = *o.Weights
		}
		if o.LineHeights != nil {
			out.Typography.LineHeights = *o.LineHeights
		}
	}

	if o := overrides.Spacing; o != nil {
		if o.Section != nil {
			out.Spacing.Section = *o.Section
		}
		if o.Element != nil {
			out.Spacing.Element = *o.Element
		}
		setString(&out.Spacing.Tight, o.Tight)
		setString(&out.Spacing.Normal, o.Normal)
		setString(&out.Spacing.Loose, o.Loose)
	}

	if o := overrides.Animations; o != nil {
		if o.Entrances != nil {
			out.Animations.Entrances = *o.Entrances
		}
		if o.Hover != nil {
			out.Animations.Hover = *o.Hover
		}
		if o.Transitions != nil {
			out.Animations.Transitions = *o.Transitions
		}
	}

	if o := overrides.Borders; o != nil {
		if o.Radius != nil {
			out.Borders.Radius = *o.Radius
		}
		setString(&out.Borders.Width, o.Width)
	}

	if o := overrides.Shadows; o != nil {
		setString(&out.Shadows.None, o.None)
		setString(&out.Shadows.Small, o.Small)
		setString(&out.Shadows.Medium, o.Medium)
		setString(&out.Shadows.Large, o.Large)
		setString(&out.Shadows.Glow, o.Glow)
	}

	if o := overrides.Effects; o != nil {
		setString(&out.Effects.Blur, o.Blur)
		setString(&out.Effects.Opacity, o.Opacity)
	}

	return out
}

// setString overwrites dst when the override pointer is present.
func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
