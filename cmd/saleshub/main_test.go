package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"saleshub"},
			want: []string{"saleshub"},
		},
		{
			name: "department ref first token",
			in:   []string{"saleshub", "dept-7"},
			want: []string{"saleshub", "departments", "show", "7"},
		},
		{
			name: "seller ref first token",
			in:   []string{"saleshub", "seller-12"},
			want: []string{"saleshub", "sellers", "show", "12"},
		},
		{
			name: "ref after value flag",
			in:   []string{"saleshub", "--dir", "./tmp-data", "dept-3"},
			want: []string{"saleshub", "--dir", "./tmp-data", "departments", "show", "3"},
		},
		{
			name: "ref after equals flag",
			in:   []string{"saleshub", "--format=table", "seller-1"},
			want: []string{"saleshub", "--format=table", "sellers", "show", "1"},
		},
		{
			name: "ref after bool flag",
			in:   []string{"saleshub", "--pretty", "dept-3"},
			want: []string{"saleshub", "--pretty", "departments", "show", "3"},
		},
		{
			name: "ref followed by flags",
			in:   []string{"saleshub", "dept-3", "--pretty"},
			want: []string{"saleshub", "departments", "show", "3", "--pretty"},
		},
		{
			name: "ref after double dash",
			in:   []string{"saleshub", "--dir", "./tmp-data", "--", "dept-3"},
			want: []string{"saleshub", "--dir", "./tmp-data", "--", "departments", "show", "3"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"saleshub", "departments", "show", "3"},
			want: []string{"saleshub", "departments", "show", "3"},
		},
		{
			name: "malformed ref not rewritten",
			in:   []string{"saleshub", "dept-x"},
			want: []string{"saleshub", "dept-x"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"saleshub", "wat"},
			want: []string{"saleshub", "wat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectLookupArgs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
