package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/dinefind/dinefind/internal/model"
)

func TestParseCategories(t *testing.T) {
	got := ParseCategories(" Thai , Asian ,, ")
	want := map[string]struct{}{"Thai": {}, "Asian": {}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseCategories: got %v want %v", got, want)
	}
	if n := len(ParseCategories("")); n != 0 {
		t.Fatalf("empty field should parse to empty set, got %d tokens", n)
	}
}

func TestCategoriesMissingRestaurant(t *testing.T) {
	svc := NewCategoryService(newFakeStore())
	got, err := svc.Categories(context.Background(), "no-such-business")
	if err != nil {
		t.Fatalf("missing restaurant must not fail: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty set, got %v", got)
	}
}

func TestBusinessIDsForCategoryPartialMatch(t *testing.T) {
	fs := newFakeStore()
	fs.restaurants["b1"] = &model.Restaurant{BusinessID: "b1", Categories: "Chinese, Szechuan"}
	fs.restaurants["b2"] = &model.Restaurant{BusinessID: "b2", Categories: "Italian"}
	svc := NewCategoryService(fs)
	ctx := context.Background()

	for _, q := range []string{"Chinese", "Sze"} {
		got, err := svc.BusinessIDsForCategory(ctx, q)
		if err != nil {
			t.Fatalf("BusinessIDsForCategory(%q): %v", q, err)
		}
		if _, ok := got["b1"]; !ok || len(got) != 1 {
			t.Fatalf("BusinessIDsForCategory(%q): got %v, want {b1}", q, got)
		}
	}
}
