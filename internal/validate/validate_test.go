package validate

import "testing"

func TestEmail(t *testing.T) {
	good := []string{"a@b.co", "trader+tag@sbsoverseas.test", "  padded@example.com  "}
	for _, s := range good {
		if _, ok := Email(s); !ok {
			t.Errorf("Email(%q) rejected", s)
		}
	}
	bad := []string{"", "plain", "a@b", "a b@c.com", "<script>@x.com"}
	for _, s := range bad {
		if _, ok := Email(s); ok {
			t.Errorf("Email(%q) accepted", s)
		}
	}
}

func TestQ(t *testing.T) {
	if _, ok := Q("basmati 1121"); !ok {
		t.Error("plain query rejected")
	}
	for _, s := range []string{"", "   ", "<script>", "a;drop table"} {
		if _, ok := Q(s); ok {
			t.Errorf("Q(%q) accepted", s)
		}
	}
}

func TestID(t *testing.T) {
	if _, ok := ID("550e8400-e29b-41d4-a716-446655440000"); !ok {
		t.Error("uuid rejected")
	}
	if _, ok := ID("p_1"); !ok {
		t.Error("underscore id rejected")
	}
	for _, s := range []string{"", "../etc", "a b", "x'y"} {
		if _, ok := ID(s); ok {
			t.Errorf("ID(%q) accepted", s)
		}
	}
}

func TestSubmissionType(t *testing.T) {
	for _, s := range []string{"contact", "order"} {
		if _, ok := SubmissionType(s); !ok {
			t.Errorf("SubmissionType(%q) rejected", s)
		}
	}
	for _, s := range []string{"", "spam", "ORDER "} {
		if _, ok := SubmissionType(s); ok {
			t.Errorf("SubmissionType(%q) accepted", s)
		}
	}
}

func TestPassword(t *testing.T) {
	if !Password("Str0ngPass") {
		t.Error("valid password rejected")
	}
	for _, s := range []string{"short1A", "alllowercase1", "ALLUPPER1", "NoDigitsHere"} {
		if Password(s) {
			t.Errorf("Password(%q) accepted", s)
		}
	}
}

func TestRating(t *testing.T) {
	for n := 1; n <= 5; n++ {
		if !Rating(n) {
			t.Errorf("Rating(%d) rejected", n)
		}
	}
	for _, n := range []int{0, -1, 6} {
		if Rating(n) {
			t.Errorf("Rating(%d) accepted", n)
		}
	}
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"logo.png":            "logo.png",
		"../../etc/passwd":    "passwd",
		`..\..\evil file.png`: "evil-file.png",
		"weird  name!!.jpg":   "weird-name-.jpg",
	}
	for in, want := range cases {
		got, ok := FileName(in)
		if !ok {
			t.Errorf("FileName(%q) rejected", in)
			continue
		}
		if got != want {
			t.Errorf("FileName(%q) = %q, want %q", in, got, want)
		}
	}

	for _, s := range []string{"", "///", "..", "!!!"} {
		if got, ok := FileName(s); ok {
			t.Errorf("FileName(%q) accepted as %q", s, got)
		}
	}
}
