package models

import (
	"reflect"
	"testing"
)

func TestFoodItemListRoundTrip(t *testing.T) {
	items := []string{"grilled chicken", "broccoli"}

	u := User{FoodItems: JoinFoodItems(items)}
	if got := u.FoodItemList(); !reflect.DeepEqual(got, items) {
		t.Fatalf("round trip = %v, want %v", got, items)
	}
}

func TestFoodItemListEmpty(t *testing.T) {
	u := User{}
	if got := u.FoodItemList(); len(got) != 0 {
		t.Fatalf("expected no items for empty field, got %v", got)
	}
}
