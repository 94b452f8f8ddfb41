package block

import "testing"

func TestParseAttrs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Attrs
	}{
		{"empty string", "", Attrs{}},
		{"empty object", "{}", Attrs{}},
		{"level", `{"level":3}`, Attrs{"level": Int(3)}},
		{"mixed", `{"ordered":true,"url":"https://x"}`, Attrs{"ordered": Bool(true), "url": String("https://x")}},
		{"malformed degrades", `{"level":3`, Attrs{}},
		{"non-object degrades", `[1,2]`, Attrs{}},
		{"garbage degrades", `not json at all`, Attrs{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAttrs(tt.raw)
			if !got.Equal(tt.want) {
				t.Errorf("ParseAttrs(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAttrsJSONDeterministic(t *testing.T) {
	a := Attrs{
		"url": String("https://x/y.png"),
		"alt": String("cat"),
	}

	want := `{"alt":"cat","url":"https://x/y.png"}`
	for i := 0; i < 10; i++ {
		if got := a.JSON(); got != want {
			t.Fatalf("iteration %d: JSON() = %s, want %s", i, got, want)
		}
	}

	if (Attrs{}).JSON() != "{}" {
		t.Error("empty bag should serialize as {}")
	}
	if (Attrs)(nil).JSON() != "{}" {
		t.Error("nil bag should serialize as {}")
	}
}

func TestAttrsTypedAccessors(t *testing.T) {
	a := Attrs{
		"level":   Int(3),
		"ordered": Bool(true),
		"url":     String("https://x"),
		"ids":     Strings([]string{"a", "b"}),
		"mixed":   Array(String("keep"), Int(1), Bool(true)),
	}

	if a.Int("level", 2) != 3 {
		t.Error("Int should read level 3")
	}
	if a.Int("missing", 2) != 2 {
		t.Error("Int should default on missing key")
	}
	if a.Int("url", 2) != 2 {
		t.Error("Int should default on type mismatch")
	}
	if !a.Bool("ordered", false) {
		t.Error("Bool should read ordered")
	}
	if a.Str("url", "") != "https://x" {
		t.Error("Str should read url")
	}

	ids := a.StringSlice("ids")
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("StringSlice(ids) = %v", ids)
	}
	if mixed := a.StringSlice("mixed"); len(mixed) != 1 || mixed[0] != "keep" {
		t.Errorf("StringSlice should skip non-strings, got %v", mixed)
	}
	if a.StringSlice("missing") != nil {
		t.Error("StringSlice should be nil on missing key")
	}
}

func TestAttrsCloneIndependent(t *testing.T) {
	a := Attrs{"k": String("v")}
	c := a.Clone()
	c["k"] = String("changed")

	if a.Str("k", "") != "v" {
		t.Error("mutating clone must not affect original")
	}
}
