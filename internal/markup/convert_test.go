package markup

import (
	"context"
	"strings"
	"testing"

	"github.com/ShotaGhoona/starup-hp/internal/property"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

func text(s string) []property.TextRun {
	return []property.TextRun{{PlainText: s}}
}

func node(kind NodeKind, s string) Node {
	return Node{Kind: kind, Text: text(s)}
}

func link(s, href string, a property.Annotations) property.TextRun {
	return property.TextRun{PlainText: s, Href: &href, Annotations: a}
}

type warnRecorder struct {
	warns []string
	args  [][]any
}

func (w *warnRecorder) Trace(string, ...any) {}
func (w *warnRecorder) Debug(string, ...any) {}
func (w *warnRecorder) Info(string, ...any)  {}
func (w *warnRecorder) Warn(msg string, args ...any) {
	w.warns = append(w.warns, msg)
	w.args = append(w.args, args)
}
func (w *warnRecorder) Error(string, ...any)                          {}
func (w *warnRecorder) Fatal(string, ...any)                          {}
func (w *warnRecorder) WithContext(context.Context) interfaces.Logger { return w }

func TestConvertEmptyInput(t *testing.T) {
	if got := Convert(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := Convert([]Node{}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestConvertEndToEndScenario(t *testing.T) {
	nodes := []Node{
		node(KindHeading2, "Intro"),
		node(KindParagraph, "Body"),
		{Kind: KindDivider},
		node(KindNumberedItem, "Step 1"),
		node(KindNumberedItem, "Step 2"),
	}

	want := "## Intro\n\nBody\n\n---\n\n1. Step 1\n1. Step 2\n"
	if got := Convert(nodes); got != want {
		t.Fatalf("unexpected markup\nwant: %q\ngot:  %q", want, got)
	}
}

func TestConvertGroupsListItems(t *testing.T) {
	nodes := []Node{
		node(KindBulletedItem, "A"),
		node(KindBulletedItem, "B"),
		node(KindParagraph, "C"),
	}
	want := "- A\n- B\n\nC\n"
	if got := Convert(nodes); got != want {
		t.Fatalf("unexpected markup\nwant: %q\ngot:  %q", want, got)
	}
}

func TestConvertMixedListKindsStayAdjacent(t *testing.T) {
	nodes := []Node{
		node(KindBulletedItem, "a"),
		node(KindNumberedItem, "b"),
		node(KindQuote, "q"),
		node(KindParagraph, "end"),
	}
	want := "- a\n1. b\n\n> q\n\nend\n"
	if got := Convert(nodes); got != want {
		t.Fatalf("unexpected markup\nwant: %q\ngot:  %q", want, got)
	}
}

func TestConvertPerNodeRendering(t *testing.T) {
	cases := []struct {
		name string
		node Node
		want string
	}{
		{"heading 1", node(KindHeading1, "Title"), "# Title\n"},
		{"heading 3", node(KindHeading3, "Small"), "### Small\n"},
		{"paragraph", node(KindParagraph, "Text"), "Text\n"},
		{"empty paragraph", Node{Kind: KindParagraph}, "\n"},
		{"bulleted", node(KindBulletedItem, "item"), "- item\n"},
		{"numbered", node(KindNumberedItem, "item"), "1. item\n"},
		{"quote", node(KindQuote, "said"), "> said\n"},
		{"divider", Node{Kind: KindDivider}, "---\n"},
		{"code", Node{Kind: KindCode, Code: &Code{Language: "go", Text: "fmt.Println(\"**x**\")"}}, "```go\nfmt.Println(\"**x**\")\n```\n"},
		{"code without language", Node{Kind: KindCode, Code: &Code{Text: "ls"}}, "```\nls\n```\n"},
		{"image", Node{Kind: KindImage, Image: &Image{URL: "https://img.test/a.png"}}, "![image](https://img.test/a.png)\n"},
		{"image without url", Node{Kind: KindImage, Image: &Image{}}, ""},
		{"image without payload", Node{Kind: KindImage}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Convert([]Node{tc.node}); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestConvertBlankParagraphsArePreserved(t *testing.T) {
	nodes := []Node{
		node(KindParagraph, "one"),
		{Kind: KindParagraph},
		node(KindParagraph, "two"),
	}
	want := "one\n\n\n\ntwo\n"
	if got := Convert(nodes); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestConvertUnsupportedNodeIsInertAndReported(t *testing.T) {
	logger := &warnRecorder{}
	c := NewConverter(logger)

	nodes := []Node{
		node(KindParagraph, "before"),
		{ID: "blk-1", Kind: "toggle"},
		node(KindParagraph, "after"),
	}
	got := c.Convert(nodes)
	want := "before\n\n<!-- unsupported block: toggle -->\nafter\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if len(logger.warns) != 1 || logger.warns[0] != "markup.node.unsupported" {
		t.Fatalf("expected one unsupported warning, got %v", logger.warns)
	}
	if args := logger.args[0]; len(args) != 4 || args[1] != "toggle" || args[3] != "blk-1" {
		t.Fatalf("unexpected warning args %v", args)
	}
}

func TestConvertPreservesOrder(t *testing.T) {
	var nodes []Node
	labels := []string{"first", "second", "third", "fourth"}
	for _, label := range labels {
		nodes = append(nodes, node(KindHeading1, label))
	}

	out := Convert(nodes)
	last := -1
	for _, label := range labels {
		idx := strings.Index(out, "# "+label)
		if idx <= last {
			t.Fatalf("expected %s after previous heading in %q", label, out)
		}
		last = idx
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	nodes := []Node{
		node(KindHeading1, "Title"),
		{Kind: KindParagraph, Text: []property.TextRun{
			{PlainText: "bold", Annotations: property.Annotations{Bold: true}},
			link("docs", "https://x.test/docs", property.Annotations{Italic: true}),
		}},
		node(KindBulletedItem, "a"),
	}
	first := Convert(nodes)
	for i := 0; i < 5; i++ {
		if again := Convert(nodes); again != first {
			t.Fatalf("non-deterministic output: %q vs %q", first, again)
		}
	}
}

func TestConvertHasNoTrailingBlankLine(t *testing.T) {
	got := Convert([]Node{node(KindParagraph, "only"), {Kind: KindDivider}})
	if got != "only\n\n---\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
