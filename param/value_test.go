// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindNull},
		{"string", "foo", KindScalar},
		{"int", 42, KindScalar},
		{"uint8", uint8(7), KindScalar},
		{"float", 1.5, KindScalar},
		{"bool", true, KindScalar},
		{"any slice", []any{1, "a"}, KindSequence},
		{"string slice", []string{"a", "b"}, KindSequence},
		{"array", [2]int{1, 2}, KindSequence},
		{"map", map[string]any{"a": 1}, KindMapping},
		{"typed map", map[string]int{"a": 1}, KindMapping},
		{"set", NewSet().Add("a", 1), KindMapping},
		{"func value", func() Value { return String("x") }, KindDeferred},
		{"func any", func() any { return 1 }, KindDeferred},
		{"func string", func() string { return "x" }, KindDeferred},
		{"value", Seq(), KindSequence},
		{"nil pointer", (*int)(nil), KindNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Of(tt.in).Kind())
		})
	}
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"null", Null(), ""},
		{"string", String("foo bar"), "foo bar"},
		{"int", Int(10), "10"},
		{"whole float", Float(3), "3"},
		{"float", Float(1.25), "1.25"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"sequence", Of([]any{1, "a", nil}), "1,a,"},
		{"mapping", Map(P("a", 1), P("b", "x")), "1,x"},
		{"deferred", Deferred(func() Value { return Int(5) }), "5"},
		{"nil deferred", Deferred(nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestValue_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, String("").Empty())
	assert.True(t, Bool(true).Empty())
	assert.True(t, Bool(false).Empty())
	assert.True(t, Deferred(func() Value { return String("") }).Empty())

	assert.False(t, String("0").Empty())
	assert.False(t, Int(0).Empty())
	assert.False(t, Null().Empty())
	assert.False(t, Seq().Empty())
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, Int(1).Equal(String("1")))
	assert.True(t, Null().Equal(Null()))
	assert.True(t, Of([]any{1, 2}).Equal(Of([]string{"1", "2"})))
	assert.True(t, Map(P("a", 1)).Equal(Map(P("a", "1"))))

	assert.False(t, Int(1).Equal(Int(2)))
	assert.False(t, Null().Equal(String("")))
	assert.False(t, Map(P("a", 1), P("b", 2)).Equal(Map(P("b", 2), P("a", 1))))
	assert.False(t, Seq(Int(1)).Equal(Int(1)))
}

func TestMap_RepeatedKeyKeepsFirstPosition(t *testing.T) {
	t.Parallel()

	m := Map(P("a", 1), P("b", 2), P("a", 3))

	require.Len(t, m.Pairs(), 2)
	assert.Equal(t, "a", m.Pairs()[0].Key)
	assert.Equal(t, "3", m.Pairs()[0].Value.String())
}

func TestOf_MapKeysSorted(t *testing.T) {
	t.Parallel()

	m := Of(map[string]any{"zeta": 1, "alpha": 2, "mid": 3})

	keys := make([]string, 0, 3)
	for _, p := range m.Pairs() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, keys)
}

func TestDeferred_InvokedOnEveryRender(t *testing.T) {
	t.Parallel()

	calls := 0
	v := Of(func() any {
		calls++
		return calls
	})

	assert.Equal(t, "1", v.String())
	assert.Equal(t, "2", v.String())
}
