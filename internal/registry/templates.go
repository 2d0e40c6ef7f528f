// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package registry

// Built-in template ids.
const (
	TemplateTrigger = "trigger-template-1"
	TemplateVSL     = "vsl-template-1"
	TemplateWebinar = "webinar-template-1"
)

// Default returns a registry preloaded with the built-in template schemas.
// Hosts that ship their own templates can start from New and register those
// instead.
func Default() *Registry {
	r := New()
	// Registration of the built-in lists cannot fail (no duplicate ids).
	_ = r.Register(TemplateTrigger, triggerFields)
	_ = r.Register(TemplateVSL, vslFields)
	_ = r.Register(TemplateWebinar, webinarFields)
	return r
}

var triggerFields = []Field{
	{ID: "heading", Kind: FieldHeading, Label: "Headline", Placeholder: "Your attention-grabbing headline", Section: "hero"},
	{ID: "subheading", Kind: FieldText, Label: "Subheadline", Placeholder: "Your powerful subheadline...", Section: "hero"},
	{ID: "heroBody", Kind: FieldLongText, Label: "Hero copy", Placeholder: "Explain the one problem you solve and who you solve it for.", Section: "hero"},
	{ID: "ctaText", Kind: FieldText, Label: "Button text", Placeholder: "Book your free call", Section: "cta"},
	{ID: "benefitsHeading", Kind: FieldHeading, Label: "Benefits headline", Placeholder: "What you get", Section: "benefits"},
	{ID: "benefitsBody", Kind: FieldLongText, Label: "Benefits copy", Placeholder: "- Outcome one\n- Outcome two\n- Outcome three", Section: "benefits"},
	{ID: "proofHeading", Kind: FieldHeading, Label: "Proof headline", Placeholder: "Results from people like you", Section: "proof"},
	{ID: "footerText", Kind: FieldText, Label: "Footer", Placeholder: "All rights reserved.", Section: "footer"},
}

var vslFields = []Field{
	{ID: "heading", Kind: FieldHeading, Label: "Headline", Placeholder: "Watch this before you book a call", Section: "hero"},
	{ID: "subheading", Kind: FieldText, Label: "Subheadline", Placeholder: "The 7-minute video that answers every question", Section: "hero"},
	{ID: "videoCaption", Kind: FieldText, Label: "Video caption", Placeholder: "Turn your sound on", Section: "video"},
	{ID: "ctaText", Kind: FieldText, Label: "Button text", Placeholder: "Schedule my strategy session", Section: "cta"},
	{ID: "ctaSubtext", Kind: FieldText, Label: "Button subtext", Placeholder: "Limited spots each week", Section: "cta"},
	{ID: "footerText", Kind: FieldText, Label: "Footer", Placeholder: "All rights reserved.", Section: "footer"},
}

var webinarFields = []Field{
	{ID: "heading", Kind: FieldHeading, Label: "Headline", Placeholder: "Free live training", Section: "hero"},
	{ID: "subheading", Kind: FieldText, Label: "Subheadline", Placeholder: "How to get results without the usual grind", Section: "hero"},
	{ID: "dateLine", Kind: FieldText, Label: "Date line", Placeholder: "Thursday, 7pm CET", Section: "hero"},
	{ID: "agendaHeading", Kind: FieldHeading, Label: "Agenda headline", Placeholder: "What we will cover", Section: "agenda"},
	{ID: "agendaBody", Kind: FieldLongText, Label: "Agenda copy", Placeholder: "1. The framework\n2. The case studies\n3. Your next step", Section: "agenda"},
	{ID: "ctaText", Kind: FieldText, Label: "Button text", Placeholder: "Save my seat", Section: "cta"},
	{ID: "footerText", Kind: FieldText, Label: "Footer", Placeholder: "All rights reserved.", Section: "footer"},
}
