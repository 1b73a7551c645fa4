// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/jgrep/internal/record"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testBuildWhereCase represents a single test case for TestBuildWhere.
type testBuildWhereCase struct {
	Name   string   `yaml:"name"`
	Clause string   `yaml:"clause"`
	WantOk bool     `yaml:"wantOk"`
	Want   []Filter `yaml:"want"`
}

// testWhereFilterCase represents a single test case for TestWhereFilter.
type testWhereFilterCase struct {
	Name   string `yaml:"name"`
	Line   string `yaml:"line"`
	Clause string `yaml:"clause"`
	Want   bool   `yaml:"want"`
}

// testKeyFilterCase represents a single test case for TestKeyFilter.
type testKeyFilterCase struct {
	Name    string `yaml:"name"`
	Line    string `yaml:"line"`
	Key     string `yaml:"key"`
	Pattern string `yaml:"pattern"`
	Want    bool   `yaml:"want"`
}

// testPredicateCase represents a single test case for TestPredicateAccept.
type testPredicateCase struct {
	Name    string `yaml:"name"`
	Line    string `yaml:"line"`
	Pattern string `yaml:"pattern"`
	Key     string `yaml:"key"`
	Where   string `yaml:"where"`
	Want    bool   `yaml:"want"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestBuildWhere(t *testing.T) {
	var tests []testBuildWhereCase
	require.NoError(t, loadTestData("build_where_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got, ok := BuildWhere(tt.Clause)
			assert.Equal(t, tt.WantOk, ok)
			if !tt.WantOk {
				assert.Nil(t, got)
				return
			}
			assert.Len(t, got, len(tt.Want))
			for i, filter := range tt.Want {
				assert.Equal(t, filter.Key, got[i].Key)
				assert.Equal(t, filter.Value, got[i].Value)
			}
		})
	}
}

func TestWhereFilter(t *testing.T) {
	var tests []testWhereFilterCase
	require.NoError(t, loadTestData("where_filter_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			rec, ok := record.Parse(tt.Line)
			assert.Equal(t, tt.Want, WhereFilter(rec, ok, tt.Clause))
		})
	}
}

func TestKeyFilter(t *testing.T) {
	var tests []testKeyFilterCase
	require.NoError(t, loadTestData("key_filter_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			rec, ok := record.Parse(tt.Line)
			assert.Equal(t, tt.Want, KeyFilter(rec, ok, tt.Key, tt.Pattern))
		})
	}
}

func TestPredicateAccept(t *testing.T) {
	var tests []testPredicateCase
	require.NoError(t, loadTestData("predicate_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			p := NewPredicate(tt.Pattern, tt.Key, tt.Where)
			assert.Equal(t, tt.Want, p.Accept(tt.Line))
		})
	}
}

func TestPatternMatch(t *testing.T) {
	assert.True(t, PatternMatch("anything", ""))
	assert.True(t, PatternMatch(`{"level":"ERROR"}`, "ERR"))
	assert.False(t, PatternMatch(`{"level":"ERROR"}`, "WARN"))
	assert.False(t, PatternMatch("(", "("), "invalid pattern fails closed")
}
