package xmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  homo   sapiens \n", want: "homo sapiens"},
		{in: "\t a\r\nb ", want: "a b"},
		{in: "single", want: "single"},
	} {
		t.Run(tc.in, func(t *testing.T) { assert.New(t).Equal(tc.want, CollapseWhitespace(tc.in)) })
	}
}

func TestReplaceWhitespace(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "a\tb", want: "a b"},
		{in: "a\r\nb", want: "a  b"},
		{in: "  a  b  ", want: "  a  b  "},
	} {
		t.Run(tc.in, func(t *testing.T) { assert.New(t).Equal(tc.want, ReplaceWhitespace(tc.in)) })
	}
}
