package sharedpath

import (
	"reflect"
	"testing"
)

func TestSplitPathParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "empty path", path: "", want: []string{}},
		{name: "single segment", path: "u-1", want: []string{"u-1"}},
		{name: "multiple segments", path: "u-1/delete/extra", want: []string{"u-1", "delete", "extra"}},
		{name: "ignores repeated slashes and surrounding spaces", path: " /u-1//delete/ ", want: []string{"u-1", "delete"}},
		{name: "trailing slash", path: "u-1/", want: []string{"u-1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := SplitPathParts(tc.path); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitPathParts(%q) = %#v, want %#v", tc.path, got, tc.want)
			}
		})
	}
}

func TestEntityRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		wantID     string
		wantAction string
		wantOK     bool
	}{
		{path: "/users/u-1", wantID: "u-1", wantOK: true},
		{path: "/users/u-1/delete", wantID: "u-1", wantAction: "delete", wantOK: true},
		{path: "/users/", wantOK: false},
		{path: "/users/u-1/delete/extra", wantOK: false},
		{path: "/wallets/w-1", wantOK: false},
	}
	for _, tc := range tests {
		id, action, ok := EntityRoute(tc.path, "/users/")
		if id != tc.wantID || action != tc.wantAction || ok != tc.wantOK {
			t.Fatalf("EntityRoute(%q) = (%q, %q, %v), want (%q, %q, %v)", tc.path, id, action, ok, tc.wantID, tc.wantAction, tc.wantOK)
		}
	}
}
