package command

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionArity(t *testing.T) {
	tests := []struct {
		kind  ConditionKind
		arity []int
	}{
		{CondEqual, []int{2}},
		{CondEqualX, []int{2}},
		{CondSmaller, []int{2}},
		{CondBigger, []int{2}},
		{CondSmallerEqual, []int{2}},
		{CondBiggerEqual, []int{2}},
		{CondExistFile, []int{1}},
		{CondExistDir, []int{1}},
		{CondExistSection, []int{2}},
		{CondExistRegSection, []int{2}},
		{CondExistRegSubKey, []int{2}},
		{CondExistRegKey, []int{3}},
		{CondExistRegValue, []int{3}},
		{CondExistRegMulti, []int{4}},
		{CondExistVar, []int{1}},
		{CondExistMacro, []int{1}},
		{CondWimExistIndex, []int{2}},
		{CondWimExistFile, []int{3}},
		{CondWimExistDir, []int{3}},
		{CondPing, []int{1}},
		{CondOnline, []int{0}},
		{CondQuestion, []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.arity, tt.kind.Arity())

			for n := 0; n <= 5; n++ {
				args := make([]string, n)
				build := func() { NewCondition(tt.kind, false, args...) }
				if slices.Contains(tt.arity, n) {
					assert.NotPanics(t, build, "%d args", n)
				} else {
					assert.Panics(t, build, "%d args", n)
				}
			}
		})
	}
}

func TestConditionNotConstructible(t *testing.T) {
	assert.Nil(t, CondNone.Arity())
	assert.Nil(t, CondLicense.Arity())
	assert.Panics(t, func() { NewCondition(CondNone, false) })
	assert.Panics(t, func() { NewCondition(CondLicense, false, "a", "b") })
	assert.Panics(t, func() { NewCondition(ConditionKind(99), false) })
}

func TestConditionString(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		want string
	}{
		{"comparison", NewCondition(CondEqual, false, "%A%", "1"), "%A%,Equal,1"},
		{"negated comparison", NewCondition(CondBiggerEqual, true, "%A%", "1"), "Not,%A%,BiggerEqual,1"},
		{"existence", NewCondition(CondExistFile, false, `C:\a.txt`), `ExistFile,C:\a.txt`},
		{"negated existence", NewCondition(CondExistVar, true, "%B%"), "Not,ExistVar,%B%"},
		{"reg multi", NewCondition(CondExistRegMulti, false, "HKLM", "Key", "Name", "Str"), "ExistRegMulti,HKLM,Key,Name,Str"},
		{"online", NewCondition(CondOnline, false), "Online"},
		{"question with timeout", NewCondition(CondQuestion, false, "Continue?", "10", "True"), "Question,Continue?,10,True"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.String())
		})
	}
}

func TestConditionAccessors(t *testing.T) {
	args := []string{"HKLM", "Key", "Name"}
	c := NewCondition(CondExistRegValue, true, args...)

	assert.Equal(t, CondExistRegValue, c.Kind())
	assert.True(t, c.Negated())
	assert.Equal(t, "Key", c.Arg(1))
	assert.Panics(t, func() { c.Arg(3) })

	// The condition owns its arguments.
	args[0] = "HKCU"
	got := c.Args()
	got[1] = "Other"
	if diff := cmp.Diff([]string{"HKLM", "Key", "Name"}, c.Args()); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConditionKind(t *testing.T) {
	for k := CondEqual; k <= CondQuestion; k++ {
		got, ok := ParseConditionKind(strings.ToUpper(k.String()))
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	for _, name := range []string{"None", "License", "Exists", ""} {
		_, ok := ParseConditionKind(name)
		assert.False(t, ok, name)
	}
}

func TestConditionIsComparison(t *testing.T) {
	comparisons := map[ConditionKind]bool{
		CondEqual: true, CondEqualX: true, CondSmaller: true,
		CondBigger: true, CondSmallerEqual: true, CondBiggerEqual: true,
	}
	for k := CondNone; k <= CondLicense; k++ {
		assert.Equal(t, comparisons[k], k.IsComparison(), k.String())
	}
}
