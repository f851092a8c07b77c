package enctable

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindCollisionsCleanTable(t *testing.T) {
	tokens, err := Load("testdata/encoding_table.csv", LayoutCompact)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := FindCollisions(tokens); len(got) != 0 {
		t.Fatalf("expected no collisions, got %+v", got)
	}
}

func TestFindCollisions(t *testing.T) {
	input := header +
		"gbk\tcp936, chinese\t936\tGBK\n" +
		"gb18030\tchinese, gb\t54936\tGB18030\n" +
		"big5\tgbk\t950\tBIG5\n" +
		"gbk\t\t936\tGBK\n"
	tokens, err := Parse(strings.NewReader(input), LayoutCompact)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Collision{
		{Alias: "gbk", Kind: CollisionDuplicateName, Names: []string{"gbk", "gbk"}, Lines: []int{2, 5}},
		{Alias: "chinese", Kind: CollisionDuplicateAlias, Names: []string{"gbk", "gb18030"}, Lines: []int{2, 3}},
		{Alias: "gbk", Kind: CollisionShadowsName, Names: []string{"big5", "gbk"}, Lines: []int{4, 2}},
	}
	got := FindCollisions(tokens)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("collisions mismatch (-want +got):\n%s", diff)
	}
	if got[1].Winner() != "gbk" {
		t.Fatalf("expected first definition to win, got %q", got[1].Winner())
	}
	if !strings.Contains(got[1].String(), `"gbk", "gb18030"`) {
		t.Fatalf("unexpected description %q", got[1].String())
	}
}

func TestFindCollisionsIgnoresSelfAlias(t *testing.T) {
	// An alias equal to its own canonical name is redundant, not ambiguous.
	tokens := []LanguageToken{{Name: "utf-8", Aliases: []string{"utf-8", "utf8"}, Line: 2}}
	if got := FindCollisions(tokens); len(got) != 0 {
		t.Fatalf("expected no collisions, got %+v", got)
	}
}
