package markup

import (
	"testing"

	"github.com/ShotaGhoona/starup-hp/internal/property"
)

func TestRenderRun(t *testing.T) {
	cases := []struct {
		name string
		run  property.TextRun
		want string
	}{
		{"plain", property.TextRun{PlainText: "hi"}, "hi"},
		{"bold", property.TextRun{PlainText: "hi", Annotations: property.Annotations{Bold: true}}, "**hi**"},
		{"italic", property.TextRun{PlainText: "hi", Annotations: property.Annotations{Italic: true}}, "*hi*"},
		{"strike", property.TextRun{PlainText: "hi", Annotations: property.Annotations{Strikethrough: true}}, "~~hi~~"},
		{"code", property.TextRun{PlainText: "hi", Annotations: property.Annotations{Code: true}}, "`hi`"},
		{
			"all styles nest in fixed order",
			property.TextRun{PlainText: "hi", Annotations: property.Annotations{Bold: true, Italic: true, Strikethrough: true, Code: true}},
			"`~~***hi***~~`",
		},
		{"underline and color are ignored", property.TextRun{PlainText: "hi", Annotations: property.Annotations{Underline: true, Color: "red"}}, "hi"},
		{"styled link", link("click", "https://x.test", property.Annotations{Bold: true}), "[**click**](https://x.test)"},
		{"plain link", link("docs", "https://x.test/docs", property.Annotations{}), "[docs](https://x.test/docs)"},
		{"autolink", link("https://x.test", "https://x.test", property.Annotations{}), "<https://x.test>"},
		{"autolink drops styling", link(" https://x.test ", "https://x.test", property.Annotations{Bold: true, Italic: true}), "<https://x.test>"},
		{"blank href is not a link", link("hi", "  ", property.Annotations{Bold: true}), "**hi**"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderRun(tc.run); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRenderInlineConcatenatesRuns(t *testing.T) {
	runs := []property.TextRun{
		{PlainText: "Read "},
		link("the guide", "https://x.test/guide", property.Annotations{}),
		{PlainText: " now", Annotations: property.Annotations{Italic: true}},
	}
	want := "Read [the guide](https://x.test/guide)* now*"
	if got := RenderInline(runs); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if got := RenderInline(nil); got != "" {
		t.Fatalf("expected empty output for no runs, got %q", got)
	}
}
