package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoValid(t *testing.T) {
	valid := Video{Hash: "h1", Name: "Cats", Author: "alice", CreationYear: 2020, Duration: 60}
	assert.True(t, valid.Valid())

	tests := map[string]func(v *Video){
		"blank hash":    func(v *Video) { v.Hash = " " },
		"no name":       func(v *Video) { v.Name = "" },
		"no author":     func(v *Video) { v.Author = "" },
		"before 1970":   func(v *Video) { v.CreationYear = 1969 },
		"zero duration": func(v *Video) { v.Duration = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			v := valid
			mutate(&v)
			assert.False(t, v.Valid())
		})
	}
}
